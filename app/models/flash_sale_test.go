package models_test

import (
	"testing"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func saleFixture() *models.FlashSale {
	return &models.FlashSale{
		ID:        "fs-1",
		Name:      "Gajian Sale",
		Type:      "percentage",
		Value:     decimal.NewFromInt(20),
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   time.Now().Add(time.Hour),
		IsActive:  true,
	}
}

func TestFlashSaleAmountUsesSaleLevelSetting(t *testing.T) {
	sale := saleFixture()
	price := decimal.NewFromInt(100000)

	got := sale.Amount(price, nil)
	assert.True(t, decimal.NewFromInt(20000).Equal(got), "got %s", got)
}

func TestFlashSaleAmountPerProductOverride(t *testing.T) {
	sale := saleFixture()
	price := decimal.NewFromInt(100000)

	fixed := "fixed"
	value := decimal.NewFromInt(5000)
	override := &models.FlashSaleProduct{Type: &fixed, Value: &value}

	got := sale.Amount(price, override)
	assert.True(t, value.Equal(got), "got %s", got)
}

func TestFlashSaleAmountPartialOverrideIgnored(t *testing.T) {
	sale := saleFixture()
	price := decimal.NewFromInt(100000)

	// Type tanpa Value bukan override lengkap; setting level sale dipakai.
	fixed := "fixed"
	override := &models.FlashSaleProduct{Type: &fixed}

	got := sale.Amount(price, override)
	assert.True(t, decimal.NewFromInt(20000).Equal(got), "got %s", got)
}

func TestFlashSaleValidityWindow(t *testing.T) {
	sale := saleFixture()

	assert.True(t, sale.IsValid(time.Now()))
	assert.False(t, sale.IsValid(sale.EndDate.Add(time.Second)))
	assert.False(t, sale.IsValid(sale.StartDate.Add(-time.Second)))

	sale.IsActive = false
	assert.False(t, sale.IsValid(time.Now()))
}

func TestDiscountValidity(t *testing.T) {
	limit := 1
	discount := &models.Discount{
		Type:       "fixed",
		Value:      decimal.NewFromInt(10000),
		StartDate:  time.Now().Add(-time.Hour),
		EndDate:    time.Now().Add(time.Hour),
		UsageLimit: &limit,
		IsActive:   true,
	}

	assert.True(t, discount.IsValid(time.Now()))

	discount.UsedCount = 1
	assert.False(t, discount.IsValid(time.Now()))
}
