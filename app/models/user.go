package models

import (
	"time"

	"gorm.io/gorm"
)

// User adalah staf back-office; pelanggan toko disimpan di Customer.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	Phone     string `gorm:"size:20"`
	Password  string `gorm:"size:255;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	Roles     []Role `gorm:"many2many:user_roles;"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

type Role struct {
	ID          string       `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string       `gorm:"size:50;not null;uniqueIndex"`
	Permissions []Permission `gorm:"many2many:role_permissions;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Permission struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	GroupName string `gorm:"size:50;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
)
