package calc_test

import (
	"testing"
	"time"

	"github.com/arunika/go-backoffice/app/utils/calc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(n int) *int {
	return &n
}

func TestPromoValid(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 7, 23, 59, 59, 0, time.UTC)

	cases := []struct {
		name       string
		active     bool
		now        time.Time
		usageLimit *int
		usedCount  int
		want       bool
	}{
		{"di dalam jendela", true, start.Add(24 * time.Hour), nil, 0, true},
		{"tepat di batas awal", true, start, nil, 0, true},
		{"tepat di batas akhir", true, end, nil, 0, true},
		{"satu detik sebelum mulai", true, start.Add(-time.Second), nil, 0, false},
		{"satu detik setelah berakhir", true, end.Add(time.Second), nil, 0, false},
		{"nonaktif", false, start.Add(time.Hour), nil, 0, false},
		{"kuota masih ada", true, start.Add(time.Hour), intPtr(10), 9, true},
		{"kuota habis", true, start.Add(time.Hour), intPtr(10), 10, false},
		{"tanpa kuota", true, start.Add(time.Hour), nil, 1000, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.PromoValid(tc.active, start, end, tc.usageLimit, tc.usedCount, tc.now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPromoAmount(t *testing.T) {
	cases := []struct {
		name        string
		kind        string
		value       string
		price       string
		minPurchase *decimal.Decimal
		maxDiscount *decimal.Decimal
		want        string
	}{
		{"persentase", calc.PromoTypePercentage, "10", "200000", nil, nil, "20000"},
		{"persentase kena clamp maksimum", calc.PromoTypePercentage, "10", "100", nil, decPtr("5"), "5"},
		{"nominal tetap", calc.PromoTypeFixed, "15000", "200000", nil, nil, "15000"},
		{"nominal melebihi harga", calc.PromoTypeFixed, "250000", "200000", nil, nil, "200000"},
		{"di bawah minimum pembelian", calc.PromoTypePercentage, "10", "40000", decPtr("50000"), nil, "0"},
		{"tepat di minimum pembelian", calc.PromoTypePercentage, "10", "50000", decPtr("50000"), nil, "5000"},
		{"harga nol", calc.PromoTypeFixed, "15000", "0", nil, nil, "0"},
		{"nilai negatif", calc.PromoTypeFixed, "-5000", "100000", nil, nil, "0"},
		{"kind tidak dikenal", "voucher", "10", "100000", nil, nil, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.PromoAmount(tc.kind, dec(tc.value), dec(tc.price), tc.minPurchase, tc.maxDiscount)
			assert.True(t, dec(tc.want).Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}
