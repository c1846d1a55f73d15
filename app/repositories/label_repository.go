package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type LabelRepositoryImpl interface {
	Create(ctx context.Context, label *models.Label) error
	GetByID(ctx context.Context, id string) (*models.Label, error)
	GetBySlug(ctx context.Context, slug string) (*models.Label, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Label, int64, error)
	Update(ctx context.Context, label *models.Label) error
	Delete(ctx context.Context, id string) error
}

type labelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepositoryImpl {
	return &labelRepository{db: db}
}

func (r *labelRepository) Create(ctx context.Context, label *models.Label) error {
	store := NewSlugStore(r.db, "labels")
	return persistSlugged(ctx, store, label.Name, "", &label.Slug, func() error {
		return r.db.WithContext(ctx).Create(label).Error
	})
}

func (r *labelRepository) GetByID(ctx context.Context, id string) (*models.Label, error) {
	var label models.Label
	err := r.db.WithContext(ctx).First(&label, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &label, nil
}

func (r *labelRepository) GetBySlug(ctx context.Context, slug string) (*models.Label, error) {
	var label models.Label
	err := r.db.WithContext(ctx).First(&label, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &label, nil
}

func (r *labelRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Label, int64, error) {
	var items []models.Label
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Label{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *labelRepository) Update(ctx context.Context, label *models.Label) error {
	store := NewSlugStore(r.db, "labels")
	return persistSlugged(ctx, store, label.Name, label.ID, &label.Slug, func() error {
		return r.db.WithContext(ctx).Save(label).Error
	})
}

func (r *labelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Label{}, "id = ?", id).Error
}
