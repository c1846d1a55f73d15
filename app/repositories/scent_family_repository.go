package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type ScentFamilyRepositoryImpl interface {
	Create(ctx context.Context, scentFamily *models.ScentFamily) error
	GetByID(ctx context.Context, id string) (*models.ScentFamily, error)
	GetBySlug(ctx context.Context, slug string) (*models.ScentFamily, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ScentFamily, int64, error)
	Update(ctx context.Context, scentFamily *models.ScentFamily) error
	Delete(ctx context.Context, id string) error
}

type scentFamilyRepository struct {
	db *gorm.DB
}

func NewScentFamilyRepository(db *gorm.DB) ScentFamilyRepositoryImpl {
	return &scentFamilyRepository{db: db}
}

func (r *scentFamilyRepository) Create(ctx context.Context, scentFamily *models.ScentFamily) error {
	store := NewSlugStore(r.db, "scent_families")
	return persistSlugged(ctx, store, scentFamily.Name, "", &scentFamily.Slug, func() error {
		return r.db.WithContext(ctx).Create(scentFamily).Error
	})
}

func (r *scentFamilyRepository) GetByID(ctx context.Context, id string) (*models.ScentFamily, error) {
	var scentFamily models.ScentFamily
	err := r.db.WithContext(ctx).First(&scentFamily, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &scentFamily, nil
}

func (r *scentFamilyRepository) GetBySlug(ctx context.Context, slug string) (*models.ScentFamily, error) {
	var scentFamily models.ScentFamily
	err := r.db.WithContext(ctx).First(&scentFamily, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &scentFamily, nil
}

func (r *scentFamilyRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ScentFamily, int64, error) {
	var items []models.ScentFamily
	var total int64

	q := r.db.WithContext(ctx).Model(&models.ScentFamily{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *scentFamilyRepository) Update(ctx context.Context, scentFamily *models.ScentFamily) error {
	store := NewSlugStore(r.db, "scent_families")
	return persistSlugged(ctx, store, scentFamily.Name, scentFamily.ID, &scentFamily.Slug, func() error {
		return r.db.WithContext(ctx).Save(scentFamily).Error
	})
}

func (r *scentFamilyRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ScentFamily{}, "id = ?", id).Error
}
