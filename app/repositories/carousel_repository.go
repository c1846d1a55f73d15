package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type CarouselRepositoryImpl interface {
	Create(ctx context.Context, carousel *models.Carousel) error
	GetByID(ctx context.Context, id string) (*models.Carousel, error)
	GetAll(ctx context.Context) ([]models.Carousel, error)
	Update(ctx context.Context, carousel *models.Carousel) error
	Delete(ctx context.Context, id string) error
}

type carouselRepository struct {
	db *gorm.DB
}

func NewCarouselRepository(db *gorm.DB) CarouselRepositoryImpl {
	return &carouselRepository{db: db}
}

func (r *carouselRepository) Create(ctx context.Context, carousel *models.Carousel) error {
	return r.db.WithContext(ctx).Create(carousel).Error
}

func (r *carouselRepository) GetByID(ctx context.Context, id string) (*models.Carousel, error) {
	var carousel models.Carousel
	err := r.db.WithContext(ctx).First(&carousel, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &carousel, nil
}

func (r *carouselRepository) GetAll(ctx context.Context) ([]models.Carousel, error) {
	var carousels []models.Carousel
	err := r.db.WithContext(ctx).Order("position, title").Find(&carousels).Error
	if err != nil {
		return nil, err
	}
	return carousels, nil
}

func (r *carouselRepository) Update(ctx context.Context, carousel *models.Carousel) error {
	return r.db.WithContext(ctx).Save(carousel).Error
}

func (r *carouselRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Carousel{}, "id = ?", id).Error
}
