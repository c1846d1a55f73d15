package models

import (
	"time"

	"gorm.io/gorm"
)

type Carousel struct {
	ID        string     `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title     string     `gorm:"size:150;not null"`
	ImageURL  string     `gorm:"size:255;not null"`
	LinkURL   string     `gorm:"size:255"`
	Position  int        `gorm:"not null;default:0"`
	StartDate *time.Time `gorm:"index"`
	EndDate   *time.Time `gorm:"index"`
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
