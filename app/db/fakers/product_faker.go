package fakers

import (
	"math/rand"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/utils/slug"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFaker membuat produk contoh untuk pengembangan lokal; katalog asli
// datang dari layanan lain.
func ProductFaker(db *gorm.DB) *models.Product {
	name := faker.Word() + " " + faker.Word()
	id := uuid.New().String()

	return &models.Product{
		ID:          id,
		Name:        name,
		Slug:        slug.Generate(name) + "-" + id[:6],
		Description: faker.Sentence(),
		Sku:         "SKU-" + id[:8],
		Price:       decimal.NewFromInt(int64(rand.Intn(900)+100) * 1000),
		Stock:       rand.Intn(100),
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
