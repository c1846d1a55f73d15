package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type TagRepositoryImpl interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Tag, int64, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id string) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepositoryImpl {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	store := NewSlugStore(r.db, "tags")
	return persistSlugged(ctx, store, tag.Name, "", &tag.Slug, func() error {
		return r.db.WithContext(ctx).Create(tag).Error
	})
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).First(&tag, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Tag, int64, error) {
	var items []models.Tag
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Tag{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	store := NewSlugStore(r.db, "tags")
	return persistSlugged(ctx, store, tag.Name, tag.ID, &tag.Slug, func() error {
		return r.db.WithContext(ctx).Save(tag).Error
	})
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id).Error
}
