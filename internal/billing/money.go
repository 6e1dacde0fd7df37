package billing

import (
	"math"

	"github.com/shopspring/decimal"
)

// currencyPlaces is the precision every aggregated amount is rounded to
const currencyPlaces = 2

// amount accumulates currency values in decimal so long sums don't drift
type amount struct {
	d decimal.Decimal
}

// add ignores NaN and infinities, which decimal cannot represent
func (a *amount) add(v float64) {
	a.d = a.d.Add(toDecimal(v))
}

// value returns the accumulated total rounded to currency precision
func (a amount) value() float64 {
	return a.d.Round(currencyPlaces).InexactFloat64()
}

// round2 rounds v half away from zero to currency precision. Non-finite
// values round to 0.
func round2(v float64) float64 {
	return toDecimal(v).Round(currencyPlaces).InexactFloat64()
}

// ratio returns num/den*100 rounded, or 0 when den is 0 or either side is not finite
func ratio(num, den float64) float64 {
	if den == 0 || !finite(num) || !finite(den) {
		return 0
	}
	return decimal.NewFromFloat(num).
		Div(decimal.NewFromFloat(den)).
		Mul(decimal.NewFromInt(100)).
		Round(currencyPlaces).
		InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

// twoPlaces reports whether v is finite and needs no more than two decimal
// places, the scale of every stored rate and amount.
func twoPlaces(v float64) bool {
	if !finite(v) {
		return false
	}
	d := decimal.NewFromFloat(v)
	return d.Equal(d.Round(2))
}

func toDecimal(v float64) decimal.Decimal {
	if !finite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
