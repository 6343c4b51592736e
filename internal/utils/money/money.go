package money

import "github.com/shopspring/decimal"

// Tolerance is the fixed monetary tolerance used for cross-checking derived
// values: two amounts are considered equal when they differ by at most one
// cent.
var Tolerance = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// Round2 rounds to the nearest cent, halves away from zero. Every monetary
// value on a receipt passes through this before being stored or compared.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// TaxFromNet computes the cent-rounded tax amount for a net amount at the
// given percentage rate.
func TaxFromNet(net decimal.Decimal, rate int) decimal.Decimal {
	return Round2(net.Mul(decimal.NewFromInt(int64(rate))).Div(hundred))
}

// WithinTolerance reports whether two amounts agree within Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
