// Package money holds the rounding rules shared by every monetary computation.
//
// Amounts are decimal.Decimal, not float64. Historical filings were produced
// by rounding binary floating point results at each step; here the same step
// sequence is reproduced on exact decimals, so a value such as 1150/1.15 is
// exactly 1000.00 instead of 999.9999999999999 rounded. Results can differ
// from the float pipeline by one cent on half-cent boundaries.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

const Places = 2

var (
	hundred = decimal.NewFromInt(100)
	maxInt  = decimal.NewFromInt(math.MaxInt64)

	// MaxAmount is the largest value a NUMERIC(14,2) column holds.
	MaxAmount = decimal.RequireFromString("999999999999.99")
)

// Round2 rounds half away from zero to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// IsCents reports whether d has no fractional part below one cent.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(Places))
}

// CreditScoreDelta returns floor(total / 100) for non-negative totals.
func CreditScoreDelta(total decimal.Decimal) int64 {
	if !total.IsPositive() {
		return 0
	}
	delta := total.Div(hundred).Floor()
	if delta.GreaterThan(maxInt) {
		return math.MaxInt64
	}
	return delta.IntPart()
}

// Fits reports whether d can be stored in a NUMERIC(14,2) column.
func Fits(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(MaxAmount)
}

// Format renders d with exactly two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
