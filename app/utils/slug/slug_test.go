package slug_test

import (
	"context"
	"testing"

	"github.com/arunika/go-backoffice/app/utils/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore mensimulasikan tabel dengan kolom slug unik, termasuk baris yang
// sudah di-soft-delete (tetap menempati namespace).
type mapStore map[string]string

func (m mapStore) SlugExists(ctx context.Context, s string, excludeID string) (bool, error) {
	owner, ok := m[s]
	if !ok {
		return false, nil
	}
	if excludeID != "" && owner == excludeID {
		return false, nil
	}
	return true, nil
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"huruf besar dan spasi", "Parfum Pria", "parfum-pria"},
		{"diakritik dibuang", "Crème Brûlée & Café", "creme-brulee-cafe"},
		{"simbol diringkas", "EDP  --  50ml (tester)!", "edp-50ml-tester"},
		{"tanda hubung tepi dibuang", "  --promo--  ", "promo"},
		{"kosong tetap kosong", "???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Generate(tc.input))
		})
	}
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	t.Run("tanpa bentrok memakai kandidat dasar", func(t *testing.T) {
		got, err := slug.Allocate(ctx, "Parfum Pria", mapStore{}, "")
		require.NoError(t, err)
		assert.Equal(t, "parfum-pria", got)
	})

	t.Run("bentrok mendapat suffix berurutan", func(t *testing.T) {
		store := mapStore{"parfum-pria": "a", "parfum-pria-1": "b"}
		got, err := slug.Allocate(ctx, "Parfum Pria", store, "")
		require.NoError(t, err)
		assert.Equal(t, "parfum-pria-2", got)
	})

	t.Run("excludeID membiarkan record memakai slug miliknya", func(t *testing.T) {
		store := mapStore{"parfum-pria": "abc"}
		got, err := slug.Allocate(ctx, "Parfum Pria", store, "abc")
		require.NoError(t, err)
		assert.Equal(t, "parfum-pria", got)
	})

	t.Run("nama tanpa karakter valid memakai fallback", func(t *testing.T) {
		got, err := slug.Allocate(ctx, "???", mapStore{}, "")
		require.NoError(t, err)
		assert.Equal(t, "tanpa-nama", got)
	})
}

func TestAllocateCode(t *testing.T) {
	ctx := context.Background()

	t.Run("kode huruf besar", func(t *testing.T) {
		got, err := slug.AllocateCode(ctx, "Lebaran Sale", mapStore{}, "")
		require.NoError(t, err)
		assert.Equal(t, "LEBARAN-SALE", got)
	})

	t.Run("bentrok diprobe dengan kandidat huruf besar", func(t *testing.T) {
		store := mapStore{"LEBARAN-SALE": "a"}
		got, err := slug.AllocateCode(ctx, "Lebaran Sale", store, "")
		require.NoError(t, err)
		assert.Equal(t, "LEBARAN-SALE-1", got)
	})

	t.Run("nama kosong memakai fallback", func(t *testing.T) {
		got, err := slug.AllocateCode(ctx, "", mapStore{}, "")
		require.NoError(t, err)
		assert.Equal(t, "PROMO", got)
	})
}
