package report

import "github.com/shopspring/decimal"

// Dollars renders minor units as a fixed two-place amount.
func Dollars(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// Amount is Dollars as a number, for the exported series.
func Amount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func Percent(r float64) string {
	return decimal.NewFromFloat(r * 100).StringFixed(1) + "%"
}
