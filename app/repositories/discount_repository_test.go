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

func newDiscount(name, code string) *models.Discount {
	return &models.Discount{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      code,
		Type:      "percentage",
		Value:     decimal.NewFromInt(10),
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   time.Now().Add(time.Hour),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestDiscountCreateDerivesCode(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewDiscountRepository(db)
	ctx := context.Background()

	discount := newDiscount("Lebaran Sale", "")
	require.NoError(t, repo.Create(ctx, discount))
	assert.Equal(t, "LEBARAN-SALE", discount.Code)

	second := newDiscount("Lebaran Sale", "")
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "LEBARAN-SALE-1", second.Code)
}

func TestDiscountCreateKeepsExplicitCode(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewDiscountRepository(db)
	ctx := context.Background()

	discount := newDiscount("Lebaran Sale", "HEMAT10")
	require.NoError(t, repo.Create(ctx, discount))
	assert.Equal(t, "HEMAT10", discount.Code)

	// Kode eksplisit yang bentrok dikembalikan sebagai error, bukan
	// diganti diam-diam.
	dup := newDiscount("Promo Lain", "HEMAT10")
	assert.Error(t, repo.Create(ctx, dup))
}

func TestDiscountGetByCode(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewDiscountRepository(db)
	ctx := context.Background()

	discount := newDiscount("Lebaran Sale", "HEMAT10")
	require.NoError(t, repo.Create(ctx, discount))

	found, err := repo.GetByCode(ctx, "HEMAT10")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, discount.ID, found.ID)

	missing, err := repo.GetByCode(ctx, "TIDAK-ADA")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDiscountIncrementUsage(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewDiscountRepository(db)
	ctx := context.Background()

	limit := 2
	discount := newDiscount("Lebaran Sale", "HEMAT10")
	discount.UsageLimit = &limit
	require.NoError(t, repo.Create(ctx, discount))

	require.NoError(t, repo.IncrementUsage(ctx, discount.ID))
	require.NoError(t, repo.IncrementUsage(ctx, discount.ID))

	err := repo.IncrementUsage(ctx, discount.ID)
	assert.ErrorIs(t, err, repositories.ErrUsageLimitReached)

	current, err := repo.GetByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.UsedCount)
}

func TestDiscountIncrementUsageUnlimited(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewDiscountRepository(db)
	ctx := context.Background()

	discount := newDiscount("Lebaran Sale", "HEMAT10")
	require.NoError(t, repo.Create(ctx, discount))

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.IncrementUsage(ctx, discount.ID))
	}

	current, err := repo.GetByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, current.UsedCount)
}
