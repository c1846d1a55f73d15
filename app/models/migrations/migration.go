package migrations

import (
	"github.com/arunika/go-backoffice/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Customer{},
		&models.Brand{},
		&models.Category{},
		&models.Collection{},
		&models.Tag{},
		&models.ScentFamily{},
		&models.Attribute{},
		&models.AttributeValue{},
		&models.Option{},
		&models.OptionValue{},
		&models.Label{},
		&models.Product{},
		&models.Carousel{},
		&models.Discount{},
		&models.FlashSale{},
		&models.FlashSaleProduct{},
	)
}
