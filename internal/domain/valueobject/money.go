// Package valueobject provides domain value objects and the exact-decimal
// arithmetic helpers used by all monetary aggregation.
package valueobject

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DivRound divides num by den and rounds the result to the given number of
// decimal places. When den is not positive the result is zero; division by
// zero is a business rule here, never an error or an infinity.
func DivRound(num, den decimal.Decimal, places int32) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den).Round(places)
}

// RatioPercent returns num/den expressed as a percentage, rounded to the
// given number of decimal places. Zero when den is not positive.
func RatioPercent(num, den decimal.Decimal, places int32) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred).Round(places)
}

// ChangeRate returns the period-over-period change of curr relative to prev
// as a whole percentage. The zero-previous cases follow the product policy:
// both zero yields 0, growth from zero yields a capped signal of 100.
func ChangeRate(curr, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if curr.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return curr.Sub(prev).Div(prev).Mul(hundred).Round(0)
}
