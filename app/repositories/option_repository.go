package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type OptionRepositoryImpl interface {
	Create(ctx context.Context, option *models.Option) error
	GetByID(ctx context.Context, id string) (*models.Option, error)
	GetBySlug(ctx context.Context, slug string) (*models.Option, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Option, int64, error)
	Update(ctx context.Context, option *models.Option) error
	Delete(ctx context.Context, id string) error
	ReplaceValues(ctx context.Context, optionID string, values []models.OptionValue) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepositoryImpl {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(ctx context.Context, option *models.Option) error {
	store := NewSlugStore(r.db, "options")
	return persistSlugged(ctx, store, option.Name, "", &option.Slug, func() error {
		return r.db.WithContext(ctx).Create(option).Error
	})
}

func (r *optionRepository) GetByID(ctx context.Context, id string) (*models.Option, error) {
	var option models.Option
	err := r.db.WithContext(ctx).Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Order("position, value")
	}).First(&option, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) GetBySlug(ctx context.Context, slug string) (*models.Option, error) {
	var option models.Option
	err := r.db.WithContext(ctx).Preload("Values").First(&option, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Option, int64, error) {
	var options []models.Option
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Option{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Values").Order("name").Limit(limit).Offset(offset).Find(&options).Error
	return options, total, err
}

func (r *optionRepository) Update(ctx context.Context, option *models.Option) error {
	store := NewSlugStore(r.db, "options")
	return persistSlugged(ctx, store, option.Name, option.ID, &option.Slug, func() error {
		return r.db.WithContext(ctx).Save(option).Error
	})
}

func (r *optionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OptionValue{}, "option_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Option{}, "id = ?", id).Error
	})
}

// ReplaceValues mengganti seluruh value milik satu option dalam satu transaksi.
func (r *optionRepository) ReplaceValues(ctx context.Context, optionID string, values []models.OptionValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.OptionValue{}, "option_id = ?", optionID).Error; err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
		return tx.Create(&values).Error
	})
}
