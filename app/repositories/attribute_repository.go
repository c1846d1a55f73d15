package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	Create(ctx context.Context, attribute *models.Attribute) error
	GetByID(ctx context.Context, id string) (*models.Attribute, error)
	GetBySlug(ctx context.Context, slug string) (*models.Attribute, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Attribute, int64, error)
	Update(ctx context.Context, attribute *models.Attribute) error
	Delete(ctx context.Context, id string) error

	CreateValue(ctx context.Context, value *models.AttributeValue) error
	GetValueByID(ctx context.Context, id string) (*models.AttributeValue, error)
	UpdateValue(ctx context.Context, value *models.AttributeValue) error
	DeleteValue(ctx context.Context, id string) error
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	store := NewSlugStore(r.db, "attributes")
	return persistSlugged(ctx, store, attribute.Name, "", &attribute.Slug, func() error {
		return r.db.WithContext(ctx).Create(attribute).Error
	})
}

func (r *attributeRepository) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Order("position, value")
	}).First(&attribute, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetBySlug(ctx context.Context, slug string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).Preload("Values").First(&attribute, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Attribute, int64, error) {
	var attributes []models.Attribute
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Attribute{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Values").Order("name").Limit(limit).Offset(offset).Find(&attributes).Error
	return attributes, total, err
}

func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	store := NewSlugStore(r.db, "attributes")
	return persistSlugged(ctx, store, attribute.Name, attribute.ID, &attribute.Slug, func() error {
		return r.db.WithContext(ctx).Save(attribute).Error
	})
}

func (r *attributeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AttributeValue{}, "attribute_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attribute{}, "id = ?", id).Error
	})
}

// CreateValue memakai scope slug per attribute: dua attribute berbeda boleh
// sama-sama punya value "hitam", tapi satu attribute tidak.
func (r *attributeRepository) CreateValue(ctx context.Context, value *models.AttributeValue) error {
	store := NewScopedSlugStore(r.db, "attribute_values", "attribute_id", value.AttributeID)
	return persistSlugged(ctx, store, value.Value, "", &value.Slug, func() error {
		return r.db.WithContext(ctx).Create(value).Error
	})
}

func (r *attributeRepository) GetValueByID(ctx context.Context, id string) (*models.AttributeValue, error) {
	var value models.AttributeValue
	err := r.db.WithContext(ctx).First(&value, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

func (r *attributeRepository) UpdateValue(ctx context.Context, value *models.AttributeValue) error {
	store := NewScopedSlugStore(r.db, "attribute_values", "attribute_id", value.AttributeID)
	return persistSlugged(ctx, store, value.Value, value.ID, &value.Slug, func() error {
		return r.db.WithContext(ctx).Save(value).Error
	})
}

func (r *attributeRepository) DeleteValue(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.AttributeValue{}, "id = ?", id).Error
}
