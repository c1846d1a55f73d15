package models

import (
	"time"

	"gorm.io/gorm"
)

type Option struct {
	ID        string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string        `gorm:"size:100;not null"`
	Slug      string        `gorm:"size:100;not null;uniqueIndex"`
	IsActive  bool          `gorm:"not null;default:true"`
	Values    []OptionValue `gorm:"foreignKey:OptionID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type OptionValue struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OptionID  string `gorm:"size:36;not null;index"`
	Value     string `gorm:"size:100;not null"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
