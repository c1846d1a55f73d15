package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PromoTypePercentage = "percentage"
	PromoTypeFixed      = "fixed"
)

// PromoValid menentukan apakah sebuah promosi bisa dipakai pada waktu now.
// Satu detik saja di luar jendela [start, end], promosi tidak berlaku.
// usageLimit nil berarti tanpa batas pemakaian.
func PromoValid(active bool, start, end time.Time, usageLimit *int, usedCount int, now time.Time) bool {
	if !active {
		return false
	}
	if now.Before(start) || now.After(end) {
		return false
	}
	if usageLimit != nil && usedCount >= *usageLimit {
		return false
	}
	return true
}

// PromoAmount menghitung potongan harga untuk satu promosi. Kind percentage
// menghasilkan price*value/100, kind fixed menghasilkan value apa adanya.
// Hasil di-clamp ke maxDiscount bila di-set dan tidak pernah melebihi price.
// Bila price di bawah minPurchase, potongan nol berapapun nilainya.
// Kasus yang tidak berlaku selalu menghasilkan nol, bukan error; pemanggil
// yang perlu membedakan "tidak memenuhi syarat" harus memeriksa PromoValid.
func PromoAmount(kind string, value, price decimal.Decimal, minPurchase, maxDiscount *decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if minPurchase != nil && price.LessThan(*minPurchase) {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch kind {
	case PromoTypePercentage:
		amount = CalculateDiscount(price, value)
	case PromoTypeFixed:
		amount = value
	default:
		return decimal.Zero
	}

	if amount.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if maxDiscount != nil && amount.GreaterThan(*maxDiscount) {
		amount = *maxDiscount
	}
	if amount.GreaterThan(price) {
		amount = price
	}
	return amount
}
