/*
us.go - US withholding variant

PURPOSE:
  Computes per-period US statutory withholding: FICA (Social Security +
  Medicare), federal income tax, approximate state tax, and opt-in local
  tax.

RULES:
  - FICA: socialSecurity = gross * 6.2%, medicare = gross * 1.45%.
    No annual wage-base cap is applied to Social Security - the Canadian
    CPP/EI caps have no US counterpart here; preserved as observed.
  - Federal: annualize gross, subtract the filing-status standard
    deduction, run the progressive brackets, divide back by periods per
    year. Unknown/empty filing status falls back to a flat 22% of gross
    (documented fallback, not an error).
  - State: no-income-tax states yield 0. Allowance states reduce
    annualized income by allowances * $2,500 first. Everything else is a
    flat rate on annualized income.
  - Local: strictly opt-in; (state, city) lookup misses and disallowing
    states yield 0, never an error.
  - Contractors: every line is present and exactly zero.
*/
package tax

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
)

// US computes withholding for US jurisdictions.
type US struct {
	Table *jurisdiction.Table
}

func (u *US) Withhold(gross payroll.GrossResult, profile payroll.EmploymentProfile, prior payroll.YTDState) (payroll.WithholdingResult, error) {
	state, ok := u.Table.US.States[profile.Jurisdiction]
	if !ok {
		return payroll.WithholdingResult{}, &payroll.UnsupportedJurisdictionError{Code: profile.Jurisdiction}
	}

	lines := []payroll.WithholdingLine{
		{Code: CodeSocialSecurity, Name: "Social Security"},
		{Code: CodeMedicare, Name: "Medicare"},
		{Code: CodeFederalIncome, Name: "Federal Income Tax"},
		{Code: CodeStateIncome, Name: "State Income Tax"},
	}
	if profile.LocalTax {
		lines = append(lines, payroll.WithholdingLine{Code: CodeLocalIncome, Name: "Local Income Tax"})
	}
	for i := range lines {
		lines[i].Amount = payroll.Zero()
	}

	if profile.Classification == payroll.ClassContractor {
		return payroll.WithholdingResult{Lines: lines}, nil
	}

	lines[0].Amount = gross.Gross.Mul(u.Table.US.SocialSecurityRate).Round()
	lines[1].Amount = gross.Gross.Mul(u.Table.US.MedicareRate).Round()
	lines[2].Amount = u.federalTax(gross.Gross, profile)
	lines[3].Amount = u.stateTax(gross.Gross, profile, state)
	if profile.LocalTax {
		lines[4].Amount = u.localTax(gross.Gross, profile, state)
	}

	return payroll.WithholdingResult{Lines: lines}, nil
}

func (u *US) federalTax(gross payroll.Money, profile payroll.EmploymentProfile) payroll.Money {
	brackets, ok := u.Table.US.FederalBrackets[profile.FilingStatus]
	if !ok {
		// Documented fallback: flat rate on gross when the filing status
		// is unknown or empty.
		return gross.Mul(u.Table.US.DefaultFlatRate).Round()
	}

	periods := decimal.NewFromInt(int64(profile.Frequency.PeriodsPerYear()))
	annual := gross.Value.Mul(periods)
	taxable := floorZero(annual.Sub(u.Table.US.StandardDeductions[profile.FilingStatus]))
	annualTax := applyBrackets(taxable, brackets)
	return payroll.Money{Value: annualTax.Div(periods)}.Round()
}

func (u *US) stateTax(gross payroll.Money, profile payroll.EmploymentProfile, state jurisdiction.StateTax) payroll.Money {
	if state.NoIncomeTax {
		return payroll.Zero()
	}

	periods := decimal.NewFromInt(int64(profile.Frequency.PeriodsPerYear()))
	annual := gross.Value.Mul(periods)
	if state.UsesAllowances {
		reduction := u.Table.US.AllowanceAmount.Mul(decimal.NewFromInt(int64(profile.StateAllowances)))
		annual = floorZero(annual.Sub(reduction))
	}
	return payroll.Money{Value: annual.Mul(state.Rate).Div(periods)}.Round()
}

func (u *US) localTax(gross payroll.Money, profile payroll.EmploymentProfile, state jurisdiction.StateTax) payroll.Money {
	if !state.AllowsLocalTax {
		return payroll.Zero()
	}
	rate, ok := state.LocalRates[strings.ToLower(strings.TrimSpace(profile.City))]
	if !ok {
		return payroll.Zero()
	}
	return gross.Mul(rate).Round()
}
