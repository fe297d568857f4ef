/*
lineitems.go - Voluntary deductions, contributions, and employer matches

PURPOSE:
  Applies user-defined line items to a period's gross pay and computes
  employer-side matching contributions.

RULES:
  - Percent items: amount = gross * percent / 100
  - Fixed items: amount taken verbatim
  - Pre-tax and post-tax subtotals are exposed separately because
    downstream reporting needs both views
  - Employer match: matchable = min(employee amount, gross * upTo/100),
    match = matchable * matchPercent/100. No contribution, no match -
    a match is never inferred or defaulted.
*/
package payroll

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// ComputedLineItem is a line item resolved to a concrete period amount.
type ComputedLineItem struct {
	Item   LineItem
	Amount Money
}

// ComputedMatch is an employer match resolved to a concrete period amount.
type ComputedMatch struct {
	Rule   EmployerMatchRule
	Amount Money
}

// LineItemResult holds all resolved line items and their subtotals for one
// period.
type LineItemResult struct {
	Items   []ComputedLineItem
	Matches []ComputedMatch

	Deductions    Money
	Contributions Money
	PreTax        Money
	PostTax       Money
	EmployerMatch Money
}

// ProcessLineItems resolves every line item against the period's gross pay
// and computes employer matches. Pure function; order of output follows
// input order.
func ProcessLineItems(gross Money, items []LineItem, rules []EmployerMatchRule) (LineItemResult, error) {
	result := LineItemResult{
		Deductions:    Zero(),
		Contributions: Zero(),
		PreTax:        Zero(),
		PostTax:       Zero(),
		EmployerMatch: Zero(),
	}

	for _, item := range items {
		if item.Amount.IsNegative() {
			return LineItemResult{}, &InvalidInputError{Field: "line_item:" + item.Name, Reason: "amount must not be negative"}
		}

		var amount Money
		if item.Mode == AmountPercentOfGross {
			amount = gross.Mul(item.Amount.Value).Div(oneHundred).Round()
		} else {
			amount = item.Amount.Round()
		}

		result.Items = append(result.Items, ComputedLineItem{Item: item, Amount: amount})

		if item.Kind == KindContribution {
			result.Contributions = result.Contributions.Add(amount)
		} else {
			result.Deductions = result.Deductions.Add(amount)
		}
		if item.PreTax {
			result.PreTax = result.PreTax.Add(amount)
		} else {
			result.PostTax = result.PostTax.Add(amount)
		}
	}

	for _, rule := range rules {
		amount := matchAmount(gross, rule, result.Items)
		result.Matches = append(result.Matches, ComputedMatch{Rule: rule, Amount: amount})
		result.EmployerMatch = result.EmployerMatch.Add(amount)
	}

	return result, nil
}

// matchAmount computes one employer match. The employee amount is the sum
// of contribution items whose name matches the rule target; zero employee
// contribution yields exactly zero match.
func matchAmount(gross Money, rule EmployerMatchRule, items []ComputedLineItem) Money {
	employee := Zero()
	for _, it := range items {
		if it.Item.Kind == KindContribution && it.Item.Name == rule.Target {
			employee = employee.Add(it.Amount)
		}
	}
	if employee.IsZero() {
		return Zero()
	}

	ceiling := gross.Mul(rule.MatchUpToPercent.Value).Div(oneHundred)
	matchable := employee.Min(ceiling)
	return matchable.Mul(rule.MatchPercent.Value).Div(oneHundred).Round()
}
