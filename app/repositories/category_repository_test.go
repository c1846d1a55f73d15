package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategory(name string, parentID *string, position int) *models.Category {
	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  parentID,
		Position:  position,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestCategoryCreateDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	category := newCategory("Parfum Pria", nil, 0)
	require.NoError(t, repo.Create(ctx, category))
	assert.Equal(t, "parfum-pria", category.Slug)
}

func TestCategoryCreateProbesOnCollision(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	first := newCategory("Parfum Pria", nil, 0)
	require.NoError(t, repo.Create(ctx, first))

	second := newCategory("Parfum Pria", nil, 1)
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "parfum-pria-1", second.Slug)

	third := newCategory("Parfum Pria", nil, 2)
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, "parfum-pria-2", third.Slug)
}

func TestCategorySoftDeletedSlugStaysTaken(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	first := newCategory("Parfum Pria", nil, 0)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newCategory("Parfum Pria", nil, 1)
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "parfum-pria-1", second.Slug)
}

func TestCategoryUpdateKeepsOwnSlug(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	category := newCategory("Parfum Pria", nil, 0)
	require.NoError(t, repo.Create(ctx, category))

	// Rename lalu kembali ke nama semula: slug lama boleh dipakai lagi
	// karena satu-satunya pemiliknya adalah record ini sendiri.
	category.Slug = ""
	category.Name = "Parfum Pria"
	category.Position = 3
	require.NoError(t, repo.Update(ctx, category))
	assert.Equal(t, "parfum-pria", category.Slug)
}

func TestCategoryRestore(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	category := newCategory("Parfum Pria", nil, 0)
	require.NoError(t, repo.Create(ctx, category))
	require.NoError(t, repo.Delete(ctx, category.ID))

	gone, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, repo.Restore(ctx, category.ID))
	back, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, "parfum-pria", back.Slug)
}

func TestCategoryGetTree(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	root := newCategory("Parfum", nil, 0)
	require.NoError(t, repo.Create(ctx, root))
	child := newCategory("Pria", &root.ID, 0)
	require.NoError(t, repo.Create(ctx, child))
	leaf := newCategory("Eau de Parfum", &child.ID, 0)
	require.NoError(t, repo.Create(ctx, leaf))

	deleted := newCategory("Arsip", &root.ID, 1)
	require.NoError(t, repo.Create(ctx, deleted))
	require.NoError(t, repo.Delete(ctx, deleted.ID))

	tree, err := repo.GetTree(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Parfum > Pria > Eau de Parfum", tree.FullPath(leaf.ID))
	assert.Equal(t, 2, tree.Depth(leaf.ID))
	assert.True(t, tree.IsAncestorOf(root.ID, leaf.ID))

	// Record soft-deleted tetap ada di arena agar traversal tidak putus,
	// tapi ditandai Deleted.
	node, ok := tree.Node(deleted.ID)
	require.True(t, ok)
	assert.True(t, node.Deleted)

	active := tree.ActiveChildren(root.ID)
	require.Len(t, active, 1)
	assert.Equal(t, child.ID, active[0].ID)
}

func TestCategoryGetActiveChildren(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	root := newCategory("Parfum", nil, 0)
	require.NoError(t, repo.Create(ctx, root))

	active := newCategory("Pria", &root.ID, 1)
	require.NoError(t, repo.Create(ctx, active))

	inactive := newCategory("Arsip", &root.ID, 0)
	inactive.IsActive = false
	require.NoError(t, repo.Create(ctx, inactive))

	children, err := repo.GetChildren(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, inactive.ID, children[0].ID)

	activeOnly, err := repo.GetActiveChildren(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)
}
