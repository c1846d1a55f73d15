package models

import (
	"time"

	"gorm.io/gorm"
)

type Attribute struct {
	ID        string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string           `gorm:"size:100;not null"`
	Slug      string           `gorm:"size:100;not null;uniqueIndex"`
	IsActive  bool             `gorm:"not null;default:true"`
	Values    []AttributeValue `gorm:"foreignKey:AttributeID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Slug value hanya unik di dalam attribute induknya, bukan se-tabel.
type AttributeValue struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	AttributeID string `gorm:"size:36;not null;uniqueIndex:idx_attribute_value_slug"`
	Value       string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:100;not null;uniqueIndex:idx_attribute_value_slug"`
	Position    int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
