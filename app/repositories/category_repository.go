package repositories

import (
	"context"
	"fmt"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/utils/categorytree"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Category, int64, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	GetTree(ctx context.Context) (*categorytree.Tree, error)
	GetChildren(ctx context.Context, id string) ([]models.Category, error)
	GetActiveChildren(ctx context.Context, id string) ([]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	store := NewSlugStore(r.db, "categories")
	return persistSlugged(ctx, store, category.Name, "", &category.Slug, func() error {
		return r.db.WithContext(ctx).Create(category).Error
	})
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&category, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories, "id IN ?", ids).Error
	return categories, err
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("position, name").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Category{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("position, name").Limit(limit).Offset(offset).Find(&categories).Error
	return categories, total, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	store := NewSlugStore(r.db, "categories")
	return persistSlugged(ctx, store, category.Name, category.ID, &category.Slug, func() error {
		return r.db.WithContext(ctx).Save(category).Error
	})
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) Restore(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Unscoped().Model(&models.Category{}).
		Where("id = ?", id).Update("deleted_at", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to restore category %s: %w", id, res.Error)
	}
	return nil
}

// GetTree memuat seluruh kategori, termasuk yang di-soft-delete, ke dalam
// arena categorytree. Record terhapus ikut supaya rantai parent tidak putus.
func (r *categoryRepository) GetTree(ctx context.Context) (*categorytree.Tree, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Unscoped().Order("position, name").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for tree: %w", err)
	}

	nodes := make([]categorytree.Node, 0, len(categories))
	for _, c := range categories {
		parentID := ""
		if c.ParentID != nil {
			parentID = *c.ParentID
		}
		nodes = append(nodes, categorytree.Node{
			ID:       c.ID,
			Name:     c.Name,
			ParentID: parentID,
			Position: c.Position,
			IsActive: c.IsActive,
			Deleted:  c.DeletedAt.Valid,
		})
	}
	return categorytree.New(nodes), nil
}

func (r *categoryRepository) GetChildren(ctx context.Context, id string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("parent_id = ?", id).
		Order("position, name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetActiveChildren(ctx context.Context, id string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("parent_id = ? AND is_active = ?", id, true).
		Order("position, name").Find(&categories).Error
	return categories, err
}
