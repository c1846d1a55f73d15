package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var idr = accounting.Accounting{Symbol: "Rp ", Precision: 0, Thousand: ".", Decimal: ","}

func Rupiah(amount decimal.Decimal) string {
	return idr.FormatMoneyDecimal(amount)
}
