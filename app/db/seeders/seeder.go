package seeders

import (
	"log"
	"time"

	"github.com/arunika/go-backoffice/app/db/fakers"
	"github.com/arunika/go-backoffice/app/helpers"
	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/utils/slug"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// permissionGroups menentukan permission per grup resource; nama permission
// disusun "<aksi> <grup>".
var permissionGroups = map[string][]string{
	"categories":  {"view", "create", "update", "delete"},
	"brands":      {"view", "create", "update", "delete"},
	"attributes":  {"view", "create", "update", "delete"},
	"collections": {"view", "create", "update", "delete"},
	"promotions":  {"view", "create", "update", "delete"},
	"carousels":   {"view", "create", "update", "delete"},
	"customers":   {"view", "create", "update", "delete"},
	"users":       {"view", "create", "update", "delete"},
	"roles":       {"view", "create", "update", "delete"},
}

var baseCategories = []string{"Parfum Pria", "Parfum Wanita", "Unisex", "Body Mist"}

func seedPermissions(db *gorm.DB) ([]models.Permission, error) {
	var permissions []models.Permission
	for group, actions := range permissionGroups {
		for _, action := range actions {
			permission := models.Permission{
				ID:        uuid.New().String(),
				Name:      action + " " + group,
				GroupName: group,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := db.FirstOrCreate(&permission, "name = ?", permission.Name).Error; err != nil {
				return nil, err
			}
			permissions = append(permissions, permission)
		}
	}
	return permissions, nil
}

func seedRoles(db *gorm.DB, permissions []models.Permission) (*models.Role, error) {
	superAdmin := models.Role{
		ID:        uuid.New().String(),
		Name:      models.RoleSuperAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.FirstOrCreate(&superAdmin, "name = ?", superAdmin.Name).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&superAdmin).Association("Permissions").Replace(permissions); err != nil {
		return nil, err
	}

	for _, name := range []string{models.RoleAdmin, models.RoleStaff} {
		role := models.Role{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := db.FirstOrCreate(&role, "name = ?", role.Name).Error; err != nil {
			return nil, err
		}
	}
	return &superAdmin, nil
}

func seedAdminUser(db *gorm.DB, role *models.Role) error {
	admin := models.User{
		ID:        uuid.New().String(),
		FirstName: "Super",
		LastName:  "Admin",
		Email:     "admin@backoffice.local",
		Password:  helpers.HashPassword("password123"),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.FirstOrCreate(&admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}
	return db.Model(&admin).Association("Roles").Replace([]models.Role{*role})
}

func seedCategories(db *gorm.DB) error {
	for i, name := range baseCategories {
		category := models.Category{
			ID:        uuid.New().String(),
			Name:      name,
			Slug:      slug.Generate(name),
			Position:  i,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := db.FirstOrCreate(&category, "slug = ?", category.Slug).Error; err != nil {
			return err
		}
	}
	return nil
}

// DBSeed mengisi data awal: permission, role, user admin pertama, kategori
// dasar, lalu data contoh untuk pengembangan lokal.
func DBSeed(db *gorm.DB) error {
	permissions, err := seedPermissions(db)
	if err != nil {
		return err
	}

	superAdmin, err := seedRoles(db, permissions)
	if err != nil {
		return err
	}

	if err := seedAdminUser(db, superAdmin); err != nil {
		return err
	}

	if err := seedCategories(db); err != nil {
		return err
	}

	for i := 0; i < 10; i++ {
		if err := db.Create(fakers.CustomerFaker(db)).Error; err != nil {
			return err
		}
		if err := db.Create(fakers.ProductFaker(db)).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Seeding complete")
	return nil
}
