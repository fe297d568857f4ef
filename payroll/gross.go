/*
gross.go - Gross pay derivation

PURPOSE:
  Computes the gross pay components for a single period from the employment
  profile and the period's input overrides.

RULES:
  Salary:  regular = annualSalary / periodsPerYear, overtime always 0.
  Hourly:  regular = rate * hours, overtime = rate * 1.5 * overtimeHours.
  Commission and tips are added verbatim, undiscounted by hours.
  Missing hours default to the frequency default (40 weekly / 80 biweekly).
  Negative rate, salary, hours, commission, or tips are rejected.
*/
package payroll

import "github.com/shopspring/decimal"

var overtimeMultiplier = decimal.NewFromFloat(1.5)

// GrossResult holds the gross components for one period. Each monetary
// field is rounded to two places exactly once.
type GrossResult struct {
	Hours         decimal.Decimal
	OvertimeHours decimal.Decimal

	Regular    Money
	Overtime   Money
	Commission Money
	Tips       Money
	Gross      Money
}

// GrossPay computes gross pay for one period.
func GrossPay(profile EmploymentProfile, in PeriodInput) (GrossResult, error) {
	hours := profile.Frequency.DefaultHours()
	if in.Hours != nil {
		hours = *in.Hours
	}
	overtime := decimal.Zero
	if in.OvertimeHours != nil {
		overtime = *in.OvertimeHours
	}

	if err := validateGrossInputs(profile, hours, overtime, in); err != nil {
		return GrossResult{}, err
	}

	var regular, overtimePay Money
	switch profile.PayType {
	case PaySalary:
		periods := decimal.NewFromInt(int64(profile.Frequency.PeriodsPerYear()))
		regular = profile.AnnualSalary.Div(periods).Round()
		overtimePay = Zero()
	default: // PayHourly
		regular = profile.HourlyRate.Mul(hours).Round()
		overtimePay = profile.HourlyRate.Mul(overtimeMultiplier).Mul(overtime).Round()
	}

	commission := in.Commission.Round()
	tips := in.Tips.Round()
	gross := regular.Add(overtimePay).Add(commission).Add(tips)

	return GrossResult{
		Hours:         hours,
		OvertimeHours: overtime,
		Regular:       regular,
		Overtime:      overtimePay,
		Commission:    commission,
		Tips:          tips,
		Gross:         gross,
	}, nil
}

func validateGrossInputs(profile EmploymentProfile, hours, overtime decimal.Decimal, in PeriodInput) error {
	if profile.PayType == PaySalary && profile.AnnualSalary.IsNegative() {
		return &InvalidInputError{Field: "annual_salary", Reason: "must not be negative"}
	}
	if profile.PayType == PayHourly && profile.HourlyRate.IsNegative() {
		return &InvalidInputError{Field: "hourly_rate", Reason: "must not be negative"}
	}
	if hours.IsNegative() {
		return &InvalidInputError{Field: "hours", Reason: "must not be negative"}
	}
	if overtime.IsNegative() {
		return &InvalidInputError{Field: "overtime_hours", Reason: "must not be negative"}
	}
	if in.Commission.IsNegative() {
		return &InvalidInputError{Field: "commission", Reason: "must not be negative"}
	}
	if in.Tips.IsNegative() {
		return &InvalidInputError{Field: "tips", Reason: "must not be negative"}
	}
	return nil
}
