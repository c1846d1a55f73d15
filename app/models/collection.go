package models

import (
	"time"

	"gorm.io/gorm"
)

type Collection struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string    `gorm:"size:100;not null"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	Products    []Product `gorm:"many2many:collection_products;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
