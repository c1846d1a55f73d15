package models

import (
	"time"

	"gorm.io/gorm"
)

type Label struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null"`
	Slug      string `gorm:"size:100;not null;uniqueIndex"`
	Color     string `gorm:"size:7;not null;default:'#000000'"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
