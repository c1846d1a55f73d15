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

func newAttribute(name string) *models.Attribute {
	return &models.Attribute{
		ID:        uuid.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newAttributeValue(attributeID, value string) *models.AttributeValue {
	return &models.AttributeValue{
		ID:          uuid.New().String(),
		AttributeID: attributeID,
		Value:       value,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// Slug value hanya unik per attribute: dua attribute berbeda boleh punya
// value dengan slug sama, tapi di dalam satu attribute harus diprobe.
func TestAttributeValueSlugScopedPerAttribute(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewAttributeRepository(db)
	ctx := context.Background()

	warna := newAttribute("Warna")
	require.NoError(t, repo.Create(ctx, warna))
	ukuran := newAttribute("Ukuran")
	require.NoError(t, repo.Create(ctx, ukuran))

	hitamWarna := newAttributeValue(warna.ID, "Hitam")
	require.NoError(t, repo.CreateValue(ctx, hitamWarna))
	assert.Equal(t, "hitam", hitamWarna.Slug)

	hitamUkuran := newAttributeValue(ukuran.ID, "Hitam")
	require.NoError(t, repo.CreateValue(ctx, hitamUkuran))
	assert.Equal(t, "hitam", hitamUkuran.Slug)

	hitamLagi := newAttributeValue(warna.ID, "Hitam")
	require.NoError(t, repo.CreateValue(ctx, hitamLagi))
	assert.Equal(t, "hitam-1", hitamLagi.Slug)
}

func TestAttributeGetByIDPreloadsValues(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewAttributeRepository(db)
	ctx := context.Background()

	attribute := newAttribute("Warna")
	require.NoError(t, repo.Create(ctx, attribute))

	second := newAttributeValue(attribute.ID, "Putih")
	second.Position = 1
	require.NoError(t, repo.CreateValue(ctx, second))
	first := newAttributeValue(attribute.ID, "Hitam")
	first.Position = 0
	require.NoError(t, repo.CreateValue(ctx, first))

	found, err := repo.GetByID(ctx, attribute.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Values, 2)
	assert.Equal(t, "Hitam", found.Values[0].Value)
	assert.Equal(t, "Putih", found.Values[1].Value)
}

func TestAttributeDeleteCascadesValues(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewAttributeRepository(db)
	ctx := context.Background()

	attribute := newAttribute("Warna")
	require.NoError(t, repo.Create(ctx, attribute))
	value := newAttributeValue(attribute.ID, "Hitam")
	require.NoError(t, repo.CreateValue(ctx, value))

	require.NoError(t, repo.Delete(ctx, attribute.ID))

	gone, err := repo.GetValueByID(ctx, value.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
