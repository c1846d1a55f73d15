package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlashSale(name string) *models.FlashSale {
	return &models.FlashSale{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      "percentage",
		Value:     decimal.NewFromInt(20),
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   time.Now().Add(time.Hour),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestFlashSaleReplaceProducts(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFlashSaleRepository(db)
	ctx := context.Background()

	sale := newFlashSale("Gajian Sale")
	require.NoError(t, repo.Create(ctx, sale))
	assert.Equal(t, "gajian-sale", sale.Slug)

	productA := &models.Product{ID: uuid.New().String(), Name: "A", Slug: "produk-a", Price: decimal.NewFromInt(100000), IsActive: true}
	productB := &models.Product{ID: uuid.New().String(), Name: "B", Slug: "produk-b", Price: decimal.NewFromInt(200000), IsActive: true}
	require.NoError(t, db.Create(productA).Error)
	require.NoError(t, db.Create(productB).Error)

	fixed := "fixed"
	value := decimal.NewFromInt(5000)
	entries := []models.FlashSaleProduct{
		{ID: uuid.New().String(), FlashSaleID: sale.ID, ProductID: productA.ID},
		{ID: uuid.New().String(), FlashSaleID: sale.ID, ProductID: productB.ID, Type: &fixed, Value: &value},
	}
	require.NoError(t, repo.ReplaceProducts(ctx, sale.ID, entries))

	loaded, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 2)

	// Penggantian berikutnya membuang daftar lama seluruhnya.
	require.NoError(t, repo.ReplaceProducts(ctx, sale.ID, entries[:1]))
	loaded, err = repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, productA.ID, loaded.Products[0].ProductID)
}

func TestFlashSaleGetProductOverride(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFlashSaleRepository(db)
	ctx := context.Background()

	sale := newFlashSale("Gajian Sale")
	require.NoError(t, repo.Create(ctx, sale))

	product := &models.Product{ID: uuid.New().String(), Name: "A", Slug: "produk-a", Price: decimal.NewFromInt(100000), IsActive: true}
	require.NoError(t, db.Create(product).Error)

	fixed := "fixed"
	value := decimal.NewFromInt(5000)
	require.NoError(t, repo.ReplaceProducts(ctx, sale.ID, []models.FlashSaleProduct{
		{ID: uuid.New().String(), FlashSaleID: sale.ID, ProductID: product.ID, Type: &fixed, Value: &value},
	}))

	entry, err := repo.GetProduct(ctx, sale.ID, product.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)

	got := sale.Amount(product.Price, entry)
	assert.True(t, value.Equal(got), "got %s", got)

	missing, err := repo.GetProduct(ctx, sale.ID, "tidak-ada")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
