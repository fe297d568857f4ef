package tax

import (
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// SHARED BRACKET AND CAP MATH
// =============================================================================

// applyBrackets computes progressive tax over annualized income. Ranges are
// [min, max): income sitting exactly on a boundary is taxed entirely within
// the lower bracket, with no double counting.
func applyBrackets(income decimal.Decimal, brackets []jurisdiction.Bracket) decimal.Decimal {
	tax := decimal.Zero
	for _, b := range brackets {
		if income.LessThanOrEqual(b.Min) {
			break
		}
		upper := income
		if !b.Unbounded() && income.GreaterThan(b.Max) {
			upper = b.Max
		}
		tax = tax.Add(upper.Sub(b.Min).Mul(b.Rate))
	}
	return tax
}

// capByRoom truncates a contribution so that prior YTD plus this period
// never exceeds the annual maximum. Once the cap is reached the period
// contributes exactly zero; the crossing period contributes exactly the
// remaining room, never more.
func capByRoom(raw payroll.Money, priorYTD payroll.Money, annualMax decimal.Decimal) payroll.Money {
	room := payroll.Money{Value: annualMax}.Sub(priorYTD)
	if room.IsNegative() {
		room = payroll.Zero()
	}
	return raw.Min(room)
}

// floorZero clamps a negative amount to zero (non-refundable credits).
func floorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
