package repositories_test

import (
	"testing"

	"github.com/arunika/go-backoffice/app/models/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka sqlite in-memory dengan skema penuh. TranslateError
// diaktifkan supaya pelanggaran unique constraint terbaca sebagai
// gorm.ErrDuplicatedKey, sama seperti koneksi produksi.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}
