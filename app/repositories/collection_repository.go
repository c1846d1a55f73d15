package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type CollectionRepositoryImpl interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id string) (*models.Collection, error)
	GetBySlug(ctx context.Context, slug string) (*models.Collection, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Collection, int64, error)
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id string) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepositoryImpl {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	store := NewSlugStore(r.db, "collections")
	return persistSlugged(ctx, store, collection.Name, "", &collection.Slug, func() error {
		return r.db.WithContext(ctx).Create(collection).Error
	})
}

func (r *collectionRepository) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).First(&collection, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetBySlug(ctx context.Context, slug string) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).First(&collection, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Collection, int64, error) {
	var items []models.Collection
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Collection{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	store := NewSlugStore(r.db, "collections")
	return persistSlugged(ctx, store, collection.Name, collection.ID, &collection.Slug, func() error {
		return r.db.WithContext(ctx).Save(collection).Error
	})
}

func (r *collectionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Collection{}, "id = ?", id).Error
}
