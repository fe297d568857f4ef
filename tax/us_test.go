package tax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/tax"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func usProfile(state string) payroll.EmploymentProfile {
	return payroll.EmploymentProfile{
		Classification: payroll.ClassEmployee,
		PayType:        payroll.PayHourly,
		Frequency:      payroll.Biweekly,
		HourlyRate:     payroll.NewMoney(25),
		Jurisdiction:   state,
		FilingStatus:   payroll.FilingSingle,
	}
}

func grossResult(amount float64) payroll.GrossResult {
	g := payroll.NewMoney(amount).Round()
	return payroll.GrossResult{Regular: g, Gross: g}
}

func lineByCode(t *testing.T, result payroll.WithholdingResult, code string) payroll.WithholdingLine {
	t.Helper()
	for _, l := range result.Lines {
		if l.Code == code {
			return l
		}
	}
	t.Fatalf("no line with code %q", code)
	return payroll.WithholdingLine{}
}

func newCalculator() *tax.Calculator {
	return tax.New(jurisdiction.Default())
}

// =============================================================================
// US WITHHOLDING TESTS
// =============================================================================

func TestUSWithhold_Texas_HourlyBiweekly(t *testing.T) {
	// GIVEN: $2,000 biweekly gross, single filer in Texas
	// WHEN: Withholding
	// THEN: SS 6.2%, Medicare 1.45%, bracketed federal, zero state tax

	result, err := newCalculator().Withhold(grossResult(2000), usProfile("TX"), payroll.NewYTDState(2024))
	require.NoError(t, err)

	assert.Equal(t, "124.00", lineByCode(t, result, tax.CodeSocialSecurity).Amount.String())
	assert.Equal(t, "29.00", lineByCode(t, result, tax.CodeMedicare).Amount.String())
	// annual 52000 - 14600 standard deduction = 37400 taxable;
	// 1160 + 12% of 25800 = 4256/yr, 163.69 per period.
	assert.Equal(t, "163.69", lineByCode(t, result, tax.CodeFederalIncome).Amount.String())
	assert.Equal(t, "0.00", lineByCode(t, result, tax.CodeStateIncome).Amount.String())
}

func TestUSWithhold_FlatRateState(t *testing.T) {
	// GIVEN: $2,000 biweekly gross in Illinois (4.95% flat)
	// WHEN: Withholding
	// THEN: State tax = 52000 * 0.0495 / 26 = 99.00

	result, err := newCalculator().Withhold(grossResult(2000), usProfile("IL"), payroll.NewYTDState(2024))
	require.NoError(t, err)
	assert.Equal(t, "99.00", lineByCode(t, result, tax.CodeStateIncome).Amount.String())
}

func TestUSWithhold_AllowanceState_ReducesAnnualizedIncome(t *testing.T) {
	// GIVEN: New York with one state allowance
	// WHEN: Withholding on $2,000 biweekly gross
	// THEN: (52000 - 2500) * 0.0685 / 26 = 130.41

	profile := usProfile("NY")
	profile.StateAllowances = 1

	result, err := newCalculator().Withhold(grossResult(2000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	assert.Equal(t, "130.41", lineByCode(t, result, tax.CodeStateIncome).Amount.String())
}

func TestUSWithhold_UnknownFilingStatus_FlatRateFallback(t *testing.T) {
	// GIVEN: An empty filing status
	// WHEN: Withholding on $2,000 gross
	// THEN: Federal falls back to flat 22% of gross, no error

	profile := usProfile("TX")
	profile.FilingStatus = ""

	result, err := newCalculator().Withhold(grossResult(2000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	assert.Equal(t, "440.00", lineByCode(t, result, tax.CodeFederalIncome).Amount.String())
}

func TestUSWithhold_LocalTax_OptIn(t *testing.T) {
	// GIVEN: A New York City resident who opted into local tax
	// WHEN: Withholding on $2,000 gross
	// THEN: Local line = 2000 * 0.03078 = 61.56; city lookup is
	//       case-insensitive

	profile := usProfile("NY")
	profile.City = "  New York City "
	profile.LocalTax = true

	result, err := newCalculator().Withhold(grossResult(2000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	assert.Equal(t, "61.56", lineByCode(t, result, tax.CodeLocalIncome).Amount.String())
}

func TestUSWithhold_LocalTax_NotOptedIn_NoLine(t *testing.T) {
	// GIVEN: An NYC resident who did not opt in
	// WHEN: Withholding
	// THEN: No local line is emitted at all

	profile := usProfile("NY")
	profile.City = "New York City"

	result, err := newCalculator().Withhold(grossResult(2000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	for _, l := range result.Lines {
		assert.NotEqual(t, tax.CodeLocalIncome, l.Code)
	}
}

func TestUSWithhold_LocalTax_UnknownCity_Zero(t *testing.T) {
	// GIVEN: Opt-in with a city absent from the table
	// WHEN: Withholding
	// THEN: Local line present and exactly zero, never an error

	profile := usProfile("NY")
	profile.City = "Albany"
	profile.LocalTax = true

	result, err := newCalculator().Withhold(grossResult(2000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	assert.Equal(t, "0.00", lineByCode(t, result, tax.CodeLocalIncome).Amount.String())
}

func TestUSWithhold_Contractor_AllLinesZero(t *testing.T) {
	// GIVEN: A contractor classification
	// WHEN: Withholding
	// THEN: Every line is present and exactly zero

	profile := usProfile("TX")
	profile.Classification = payroll.ClassContractor

	result, err := newCalculator().Withhold(grossResult(5000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	require.NotEmpty(t, result.Lines)
	for _, l := range result.Lines {
		assert.True(t, l.Amount.IsZero(), "line %s = %s, want 0", l.Code, l.Amount)
	}
}

func TestUSWithhold_UnknownJurisdiction_Rejected(t *testing.T) {
	// GIVEN: A jurisdiction code absent from the table
	// WHEN: Withholding
	// THEN: UnsupportedJurisdictionError, never a silent zero-tax result

	_, err := newCalculator().Withhold(grossResult(2000), usProfile("ZZ"), payroll.NewYTDState(2024))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, payroll.ErrUnsupportedJurisdiction))
}

func TestUSWithhold_ZeroGross_AllZero(t *testing.T) {
	// GIVEN: A zero-gross period
	// WHEN: Withholding
	// THEN: Every line is zero

	result, err := newCalculator().Withhold(grossResult(0), usProfile("TX"), payroll.NewYTDState(2024))
	require.NoError(t, err)
	for _, l := range result.Lines {
		assert.True(t, l.Amount.IsZero(), "line %s = %s, want 0", l.Code, l.Amount)
	}
}
