package repositories

import (
	"context"

	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

type FlashSaleRepositoryImpl interface {
	Create(ctx context.Context, sale *models.FlashSale) error
	GetByID(ctx context.Context, id string) (*models.FlashSale, error)
	GetBySlug(ctx context.Context, slug string) (*models.FlashSale, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.FlashSale, int64, error)
	Update(ctx context.Context, sale *models.FlashSale) error
	Delete(ctx context.Context, id string) error
	ReplaceProducts(ctx context.Context, saleID string, products []models.FlashSaleProduct) error
	GetProduct(ctx context.Context, saleID, productID string) (*models.FlashSaleProduct, error)
}

type flashSaleRepository struct {
	db *gorm.DB
}

func NewFlashSaleRepository(db *gorm.DB) FlashSaleRepositoryImpl {
	return &flashSaleRepository{db: db}
}

func (r *flashSaleRepository) Create(ctx context.Context, sale *models.FlashSale) error {
	store := NewSlugStore(r.db, "flash_sales")
	return persistSlugged(ctx, store, sale.Name, "", &sale.Slug, func() error {
		return r.db.WithContext(ctx).Create(sale).Error
	})
}

func (r *flashSaleRepository) GetByID(ctx context.Context, id string) (*models.FlashSale, error) {
	var sale models.FlashSale
	err := r.db.WithContext(ctx).Preload("Products.Product").First(&sale, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *flashSaleRepository) GetBySlug(ctx context.Context, slug string) (*models.FlashSale, error) {
	var sale models.FlashSale
	err := r.db.WithContext(ctx).Preload("Products.Product").First(&sale, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *flashSaleRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.FlashSale, int64, error) {
	var sales []models.FlashSale
	var total int64

	q := r.db.WithContext(ctx).Model(&models.FlashSale{})
	if keyword != "" {
		q = q.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Products").Order("start_date DESC").Limit(limit).Offset(offset).Find(&sales).Error
	return sales, total, err
}

func (r *flashSaleRepository) Update(ctx context.Context, sale *models.FlashSale) error {
	store := NewSlugStore(r.db, "flash_sales")
	return persistSlugged(ctx, store, sale.Name, sale.ID, &sale.Slug, func() error {
		return r.db.WithContext(ctx).Omit("Products").Save(sale).Error
	})
}

func (r *flashSaleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.FlashSaleProduct{}, "flash_sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FlashSale{}, "id = ?", id).Error
	})
}

// ReplaceProducts mengganti seluruh daftar produk (beserta override per
// produknya) milik satu flash sale dalam satu transaksi.
func (r *flashSaleRepository) ReplaceProducts(ctx context.Context, saleID string, products []models.FlashSaleProduct) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.FlashSaleProduct{}, "flash_sale_id = ?", saleID).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
}

func (r *flashSaleRepository) GetProduct(ctx context.Context, saleID, productID string) (*models.FlashSaleProduct, error) {
	var fsp models.FlashSaleProduct
	err := r.db.WithContext(ctx).
		First(&fsp, "flash_sale_id = ? AND product_id = ?", saleID, productID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &fsp, nil
}
