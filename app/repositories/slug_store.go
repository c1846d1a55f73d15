package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/arunika/go-backoffice/app/utils/slug"
	"gorm.io/gorm"
)

// Batas pengulangan insert saat dua request berebut slug yang sama.
// Probe-nya sendiri tidak terbatas; batas ini hanya untuk loop insert.
const slugInsertAttempts = 5

var ErrSlugExhausted = errors.New("kehabisan kandidat slug unik")

type gormSlugStore struct {
	db          *gorm.DB
	table       string
	column      string
	scopeColumn string
	scopeValue  string
}

// NewSlugStore membuat probe slug atas satu tabel penuh. Query lewat Table()
// sengaja tidak memakai scope soft-delete gorm: record terhapus tetap
// menempati slug-nya.
func NewSlugStore(db *gorm.DB, table string) slug.Store {
	return &gormSlugStore{db: db, table: table, column: "slug"}
}

// NewCodeStore seperti NewSlugStore tetapi mem-probe kolom code.
func NewCodeStore(db *gorm.DB, table string) slug.Store {
	return &gormSlugStore{db: db, table: table, column: "code"}
}

// NewScopedSlugStore membatasi probe ke record dengan scopeColumn =
// scopeValue, misalnya slug attribute value yang hanya unik per attribute.
func NewScopedSlugStore(db *gorm.DB, table, scopeColumn, scopeValue string) slug.Store {
	return &gormSlugStore{db: db, table: table, column: "slug", scopeColumn: scopeColumn, scopeValue: scopeValue}
}

func (s *gormSlugStore) SlugExists(ctx context.Context, slugVal string, excludeID string) (bool, error) {
	q := s.db.WithContext(ctx).Table(s.table).Where(s.column+" = ?", slugVal)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if s.scopeColumn != "" {
		q = q.Where(s.scopeColumn+" = ?", s.scopeValue)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to probe %s.%s: %w", s.table, s.column, err)
	}
	return count > 0, nil
}

// persistSlugged menjalankan pola "alokasikan slug, coba tulis, ulangi saat
// bentrok". Slug kosong berarti minta diturunkan dari name; slug yang diisi
// eksplisit dipakai apa adanya dan pelanggaran unique dikembalikan ke caller.
// Unique constraint di storage yang menjadi penjaga akhir terhadap race
// read-then-write antar request.
func persistSlugged(ctx context.Context, store slug.Store, name, excludeID string, slugPtr *string, persist func() error) error {
	generated := *slugPtr == ""
	for attempt := 0; attempt < slugInsertAttempts; attempt++ {
		if generated {
			s, err := slug.Allocate(ctx, name, store, excludeID)
			if err != nil {
				return err
			}
			*slugPtr = s
		}
		err := persist()
		if err == nil {
			return nil
		}
		if !generated || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		*slugPtr = ""
	}
	return ErrSlugExhausted
}
