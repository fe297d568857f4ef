/*
ca.go - Canadian withholding variant

PURPOSE:
  Computes per-period Canadian statutory withholding: CPP/QPP, EI (+ QPIP
  for Quebec), federal income tax, and provincial income tax.

RULES:
  - CPP/QPP: rate * max(0, gross - annualBasicExemption/periodsPerYear),
    with the rate and annual maximum varying Quebec-vs-rest. The
    contribution is capped against the prior YTD so the crossing period
    contributes exactly the remaining room and later periods contribute
    zero. These lines are marked Cumulative so the ledger reports true
    running sums.
  - EI: analogous capped premium; Quebec pays a reduced EI rate plus a
    separate QPIP line.
  - Federal/provincial tax: annualize gross, subtract the allowance
    reductions (federal $2,500/allowance, provincial $2,000/allowance) and
    the marital-status reduction, run the progressive brackets, subtract
    basicPersonalAmount * lowestBracketRate as a non-refundable credit
    (tax never goes negative), divide back by periods per year.
  - Contractors: every line is present and exactly zero.
*/
package tax

import (
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
)

// CA computes withholding for Canadian jurisdictions.
type CA struct {
	Table *jurisdiction.Table
}

func (c *CA) Withhold(gross payroll.GrossResult, profile payroll.EmploymentProfile, prior payroll.YTDState) (payroll.WithholdingResult, error) {
	province, ok := c.Table.CA.Provinces[profile.Jurisdiction]
	if !ok {
		return payroll.WithholdingResult{}, &payroll.UnsupportedJurisdictionError{Code: profile.Jurisdiction}
	}
	quebec := profile.Jurisdiction == "QC"

	pensionName := "CPP"
	if quebec {
		pensionName = "QPP"
	}

	lines := []payroll.WithholdingLine{
		{Code: CodeCPP, Name: pensionName, Cumulative: true},
		{Code: CodeEI, Name: "EI", Cumulative: true},
	}
	if quebec {
		lines = append(lines, payroll.WithholdingLine{Code: CodeQPIP, Name: "QPIP", Cumulative: true})
	}
	lines = append(lines,
		payroll.WithholdingLine{Code: CodeCAFederal, Name: "Federal Tax"},
		payroll.WithholdingLine{Code: CodeProvincial, Name: "Provincial Tax"},
	)
	for i := range lines {
		lines[i].Amount = payroll.Zero()
	}

	if profile.Classification == payroll.ClassContractor {
		return payroll.WithholdingResult{Lines: lines}, nil
	}

	for i := range lines {
		switch lines[i].Code {
		case CodeCPP:
			lines[i].Amount = c.pension(gross.Gross, profile, prior, quebec)
		case CodeEI:
			lines[i].Amount = c.employmentInsurance(gross.Gross, prior, quebec)
		case CodeQPIP:
			lines[i].Amount = c.parentalInsurance(gross.Gross, prior)
		case CodeCAFederal:
			lines[i].Amount = c.federalTax(gross.Gross, profile)
		case CodeProvincial:
			lines[i].Amount = c.provincialTax(gross.Gross, profile, province)
		}
	}

	return payroll.WithholdingResult{Lines: lines}, nil
}

// pension computes the CPP/QPP employee contribution with the periodic
// basic exemption and the annual YTD cap.
func (c *CA) pension(gross payroll.Money, profile payroll.EmploymentProfile, prior payroll.YTDState, quebec bool) payroll.Money {
	cfg := c.Table.CA.CPP
	rate, annualMax := cfg.Rate, cfg.MaxAnnualContribution
	if quebec {
		rate, annualMax = cfg.QuebecRate, cfg.QuebecMaxContribution
	}

	periods := decimal.NewFromInt(int64(profile.Frequency.PeriodsPerYear()))
	periodicExemption := cfg.BasicExemption.Div(periods)
	base := floorZero(gross.Value.Sub(periodicExemption))
	raw := payroll.Money{Value: base.Mul(rate)}.Round()

	return capByRoom(raw, prior.WithheldFor(CodeCPP), annualMax)
}

func (c *CA) employmentInsurance(gross payroll.Money, prior payroll.YTDState, quebec bool) payroll.Money {
	cfg := c.Table.CA.EI
	rate, annualMax := cfg.Rate, cfg.MaxAnnualPremium
	if quebec {
		rate, annualMax = cfg.QuebecRate, cfg.QuebecMaxPremium
	}

	raw := gross.Mul(rate).Round()
	return capByRoom(raw, prior.WithheldFor(CodeEI), annualMax)
}

func (c *CA) parentalInsurance(gross payroll.Money, prior payroll.YTDState) payroll.Money {
	cfg := c.Table.CA.QPIP
	raw := gross.Mul(cfg.Rate).Round()
	return capByRoom(raw, prior.WithheldFor(CodeQPIP), cfg.MaxAnnualPremium)
}

func (c *CA) federalTax(gross payroll.Money, profile payroll.EmploymentProfile) payroll.Money {
	ca := c.Table.CA
	allowance := ca.FederalAllowanceAmount.Mul(decimal.NewFromInt(int64(profile.FederalAllowances)))
	credit := maritalCredit(profile.MaritalStatus, ca.FederalMarriedCredit, ca.FederalSeparatedCredit)
	return c.progressiveTax(gross, profile, ca.FederalBrackets, ca.FederalBPA, allowance.Add(credit))
}

func (c *CA) provincialTax(gross payroll.Money, profile payroll.EmploymentProfile, province jurisdiction.ProvinceTax) payroll.Money {
	ca := c.Table.CA
	allowance := ca.ProvincialAllowanceAmount.Mul(decimal.NewFromInt(int64(profile.ProvincialAllowances)))
	credit := maritalCredit(profile.MaritalStatus, ca.ProvincialMarriedCredit, ca.ProvincialSeparatedCredit)
	return c.progressiveTax(gross, profile, province.Brackets, province.BasicPersonalAmount, allowance.Add(credit))
}

// progressiveTax annualizes, reduces income, runs the brackets, applies
// the basic-personal-amount credit at the lowest bracket rate, and
// de-annualizes. The credit is non-refundable: tax never goes negative.
func (c *CA) progressiveTax(gross payroll.Money, profile payroll.EmploymentProfile, brackets []jurisdiction.Bracket, bpa, incomeReduction decimal.Decimal) payroll.Money {
	periods := decimal.NewFromInt(int64(profile.Frequency.PeriodsPerYear()))
	annual := floorZero(gross.Value.Mul(periods).Sub(incomeReduction))

	annualTax := applyBrackets(annual, brackets)
	bpaCredit := bpa.Mul(brackets[0].Rate)
	annualTax = floorZero(annualTax.Sub(bpaCredit))

	return payroll.Money{Value: annualTax.Div(periods)}.Round()
}

// maritalCredit maps marital status to its income reduction: the married
// figure for married/common-law, the separated figure for
// separated/divorced/widowed, zero otherwise.
func maritalCredit(status payroll.MaritalStatus, married, separated decimal.Decimal) decimal.Decimal {
	switch status {
	case payroll.MaritalMarried, payroll.MaritalCommonLaw:
		return married
	case payroll.MaritalSeparated, payroll.MaritalDivorced, payroll.MaritalWidowed:
		return separated
	default:
		return decimal.Zero
	}
}
