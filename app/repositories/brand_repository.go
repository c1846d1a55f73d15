package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type BrandRepositoryImpl interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Brand, int64, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id string) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	store := NewSlugStore(r.db, "brands")
	return persistSlugged(ctx, store, brand.Name, "", &brand.Slug, func() error {
		return r.db.WithContext(ctx).Create(brand).Error
	})
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Brand, int64, error) {
	var brands []models.Brand
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Brand{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name").Limit(limit).Offset(offset).Find(&brands).Error
	return brands, total, err
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	store := NewSlugStore(r.db, "brands")
	return persistSlugged(ctx, store, brand.Name, brand.ID, &brand.Slug, func() error {
		return r.db.WithContext(ctx).Save(brand).Error
	})
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id).Error
}
