package repositories

import (
	"context"
	"errors"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/utils/slug"
	"gorm.io/gorm"
)

var ErrUsageLimitReached = errors.New("batas pemakaian diskon sudah tercapai")

type DiscountRepositoryImpl interface {
	Create(ctx context.Context, discount *models.Discount) error
	GetByID(ctx context.Context, id string) (*models.Discount, error)
	GetByCode(ctx context.Context, code string) (*models.Discount, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Discount, int64, error)
	Update(ctx context.Context, discount *models.Discount) error
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, id string) error
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepositoryImpl {
	return &discountRepository{db: db}
}

// Create menurunkan Code dari Name bila kosong, lalu mengulangi insert saat
// kode yang dialokasikan keburu dipakai request lain.
func (r *discountRepository) Create(ctx context.Context, discount *models.Discount) error {
	store := NewCodeStore(r.db, "discounts")
	generated := discount.Code == ""
	for attempt := 0; attempt < slugInsertAttempts; attempt++ {
		if generated {
			code, err := slug.AllocateCode(ctx, discount.Name, store, "")
			if err != nil {
				return err
			}
			discount.Code = code
		}
		err := r.db.WithContext(ctx).Create(discount).Error
		if err == nil {
			return nil
		}
		if !generated || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return ErrSlugExhausted
}

func (r *discountRepository) GetByID(ctx context.Context, id string) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) GetByCode(ctx context.Context, code string) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).First(&discount, "code = ?", code).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Discount, int64, error) {
	var discounts []models.Discount
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Discount{})
	if keyword != "" {
		q = q.Where("name LIKE ? OR code LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("start_date DESC").Limit(limit).Offset(offset).Find(&discounts).Error
	return discounts, total, err
}

func (r *discountRepository) Update(ctx context.Context, discount *models.Discount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *discountRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Discount{}, "id = ?", id).Error
}

// IncrementUsage menaikkan used_count secara atomik; UPDATE-nya sendiri yang
// menjaga batas pemakaian, bukan pembacaan sebelumnya.
func (r *discountRepository) IncrementUsage(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.Discount{}).
		Where("id = ?", id).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUsageLimitReached
	}
	return nil
}
