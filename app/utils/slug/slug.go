package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Store memeriksa apakah sebuah slug sudah dipakai di dalam scope uniknya.
// Pemeriksaan harus mencakup record yang sudah di-soft-delete, karena slug
// milik record terhapus tetap menempati namespace sampai record di-purge.
type Store interface {
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
}

var nonAlnum = regexp.MustCompile("[^a-z0-9]+")

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate mengubah teks bebas menjadi slug: huruf kecil, tanda diakritik
// dibuang, dan karakter non-alfanumerik diringkas menjadi tanda hubung.
func Generate(s string) string {
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// Allocate menghasilkan slug unik untuk name di dalam scope milik store.
// Kandidat dasar diprobe dulu; kalau bentrok, suffix numerik -1, -2, ...
// dinaikkan sampai ketemu nilai kosong. excludeID dipakai saat update agar
// record tidak bentrok dengan slug miliknya sendiri.
//
// Probe membaca state tersimpan pada tiap iterasi, jadi dua alokasi yang
// berjalan bersamaan tetap bisa mengembalikan slug yang sama. Penulis record
// wajib menangkap pelanggaran unique constraint saat insert dan mengulang
// alokasi (lihat repositories.persistSlugged).
func Allocate(ctx context.Context, name string, store Store, excludeID string) (string, error) {
	base := Generate(name)
	if base == "" {
		base = "tanpa-nama"
	}
	return probe(ctx, base, store, excludeID)
}

// AllocateCode sama dengan Allocate tetapi untuk kode promosi (huruf besar).
// Store yang diberikan harus melakukan probe pada kolom code.
func AllocateCode(ctx context.Context, name string, store Store, excludeID string) (string, error) {
	base := strings.ToUpper(Generate(name))
	if base == "" {
		base = "PROMO"
	}
	return probe(ctx, base, store, excludeID)
}

func probe(ctx context.Context, base string, store Store, excludeID string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		exists, err := store.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("slug probe %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
