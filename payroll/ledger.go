/*
ledger.go - The assembled pay-period ledger entry

PURPOSE:
  LedgerEntry is the immutable output record per period, the sole contract
  with rendering/export collaborators (pay stubs, W-2s, summaries). It is
  created once per period and never mutated afterwards.

CRITICAL INVARIANTS:
  1. IMMUTABLE: entries are never modified after creation
  2. SELF-CONTAINED: every line carries current + YTD, so a renderer needs
     nothing beyond the entry itself
  3. CONSERVATION: gross = net + total withholding + deductions +
     contributions, exactly (all fields rounded once at computation)
  4. Entry i's YTD fields depend only on entries 0..i-1 plus entry i's own
     current-period values - replaying 0..i always reproduces entry i

Employer match amounts are employer-side money: reported on the entry but
excluded from the conservation identity.
*/
package payroll

import "github.com/shopspring/decimal"

// WithholdingEntry is one statutory withholding line with its YTD total.
type WithholdingEntry struct {
	Code   string
	Name   string
	Amount Money
	YTD    Money
}

// LineItemEntry is one voluntary deduction/contribution with its YTD total.
type LineItemEntry struct {
	Name   string
	Kind   LineItemKind
	PreTax bool
	Amount Money
	YTD    Money
}

// MatchEntry is one employer match line with its YTD total.
type MatchEntry struct {
	Target string
	Amount Money
	YTD    Money
}

// LedgerEntry is the computed, immutable record for one pay period.
type LedgerEntry struct {
	Index  int
	Period PayPeriod

	Hours         decimal.Decimal
	OvertimeHours decimal.Decimal

	// Gross components, current period.
	Regular    Money
	Overtime   Money
	Commission Money
	Tips       Money
	Gross      Money

	// Gross components, year to date.
	YTDRegular    Money
	YTDOvertime   Money
	YTDCommission Money
	YTDTips       Money
	YTDGross      Money

	Withholdings    []WithholdingEntry
	LineItems       []LineItemEntry
	EmployerMatches []MatchEntry

	// Period totals.
	TotalWithheld      Money
	TotalDeductions    Money
	TotalContributions Money
	PreTaxTotal        Money
	PostTaxTotal       Money
	EmployerMatchTotal Money
	NetPay             Money

	// YTD totals.
	YTDWithheld      Money
	YTDDeductions    Money
	YTDContributions Money
	YTDNet           Money
}

// ConservationGap returns gross - net - withholding - deductions -
// contributions. Zero for every well-formed entry; exposed so tests and
// downstream consumers can verify the identity.
func (e LedgerEntry) ConservationGap() Money {
	return e.Gross.
		Sub(e.NetPay).
		Sub(e.TotalWithheld).
		Sub(e.TotalDeductions).
		Sub(e.TotalContributions)
}
