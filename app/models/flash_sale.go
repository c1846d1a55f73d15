package models

import (
	"time"

	"github.com/arunika/go-backoffice/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FlashSale struct {
	ID        string            `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string            `gorm:"size:100;not null"`
	Slug      string            `gorm:"size:100;not null;uniqueIndex"`
	Type      string            `gorm:"size:20;not null"`
	Value     decimal.Decimal   `gorm:"type:decimal(16,2);not null"`
	StartDate time.Time         `gorm:"not null;index"`
	EndDate   time.Time         `gorm:"not null;index"`
	IsActive  bool              `gorm:"not null;default:true"`
	Products  []FlashSaleProduct `gorm:"foreignKey:FlashSaleID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// FlashSaleProduct mengikat satu produk ke flash sale. Type/Value yang di-set
// di sini menimpa kind/value level sale khusus untuk produk tersebut.
type FlashSaleProduct struct {
	ID          string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FlashSaleID string           `gorm:"size:36;not null;uniqueIndex:idx_flash_sale_product"`
	ProductID   string           `gorm:"size:36;not null;uniqueIndex:idx_flash_sale_product"`
	Product     *Product         `gorm:"foreignKey:ProductID"`
	Type        *string          `gorm:"size:20"`
	Value       *decimal.Decimal `gorm:"type:decimal(16,2)"`
	StockLimit  *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (f *FlashSale) IsValid(now time.Time) bool {
	return calc.PromoValid(f.IsActive, f.StartDate, f.EndDate, nil, 0, now)
}

// Amount menghitung potongan untuk price. Override per-produk, bila ada dan
// terisi, menggantikan kind/value level sale.
func (f *FlashSale) Amount(price decimal.Decimal, override *FlashSaleProduct) decimal.Decimal {
	kind, value := f.Type, f.Value
	if override != nil && override.Type != nil && override.Value != nil {
		kind, value = *override.Type, *override.Value
	}
	return calc.PromoAmount(kind, value, price, nil, nil)
}
