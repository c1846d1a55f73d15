package models

import (
	"time"

	"github.com/arunika/go-backoffice/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Discount struct {
	ID                string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name              string           `gorm:"size:100;not null"`
	Code              string           `gorm:"size:50;not null;uniqueIndex"`
	Type              string           `gorm:"size:20;not null"`
	Value             decimal.Decimal  `gorm:"type:decimal(16,2);not null"`
	MinimumPurchase   *decimal.Decimal `gorm:"type:decimal(16,2)"`
	MaximumDiscount   *decimal.Decimal `gorm:"type:decimal(16,2)"`
	StartDate         time.Time        `gorm:"not null;index"`
	EndDate           time.Time        `gorm:"not null;index"`
	UsageLimit        *int
	UsageLimitPerUser *int
	UsedCount         int  `gorm:"not null;default:0"`
	IsActive          bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// IsValid memeriksa jendela waktu, flag aktif, dan batas total pemakaian.
// UsageLimitPerUser belum ditegakkan di mana pun; field-nya disimpan saja.
func (d *Discount) IsValid(now time.Time) bool {
	return calc.PromoValid(d.IsActive, d.StartDate, d.EndDate, d.UsageLimit, d.UsedCount, now)
}

// Amount menghitung potongan untuk price. Nol untuk kasus yang tidak berlaku.
func (d *Discount) Amount(price decimal.Decimal) decimal.Decimal {
	return calc.PromoAmount(d.Type, d.Value, price, d.MinimumPurchase, d.MaximumDiscount)
}
