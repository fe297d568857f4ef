package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/tax"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func caProfile(province string) payroll.EmploymentProfile {
	return payroll.EmploymentProfile{
		Classification: payroll.ClassEmployee,
		PayType:        payroll.PayHourly,
		Frequency:      payroll.Biweekly,
		HourlyRate:     payroll.NewMoney(30),
		Jurisdiction:   province,
		MaritalStatus:  payroll.MaritalSingle,
	}
}

// =============================================================================
// CANADIAN WITHHOLDING TESTS
// =============================================================================

func TestCAWithhold_Ontario_HourlyBiweekly(t *testing.T) {
	// GIVEN: $2,400 biweekly gross, single, Ontario
	// WHEN: Withholding
	// THEN: CPP on gross less the periodic exemption, EI on full gross,
	//       bracketed federal and provincial tax net of BPA credits

	result, err := newCalculator().Withhold(grossResult(2400), caProfile("ON"), payroll.NewYTDState(2024))
	require.NoError(t, err)

	// (2400 - 3500/26) * 0.0595 = 134.79
	assert.Equal(t, "134.79", lineByCode(t, result, tax.CodeCPP).Amount.String())
	// 2400 * 0.0164 = 39.36
	assert.Equal(t, "39.36", lineByCode(t, result, tax.CodeEI).Amount.String())
	// annual 62400: 8380.05 + 20.5% of 6533 = 9719.315, minus
	// 15705 * 15% BPA credit = 7363.565/yr -> 283.21 per period.
	assert.Equal(t, "283.21", lineByCode(t, result, tax.CodeCAFederal).Amount.String())
	// annual 62400: 2598.023 + 9.15% of 10954 = 3600.314, minus
	// 12399 * 5.05% BPA credit = 2974.1645/yr -> 114.39 per period.
	assert.Equal(t, "114.39", lineByCode(t, result, tax.CodeProvincial).Amount.String())
}

func TestCAWithhold_Ontario_NoQPIPLine(t *testing.T) {
	// GIVEN: A non-Quebec province
	// WHEN: Withholding
	// THEN: No QPIP line, pension line labeled CPP

	result, err := newCalculator().Withhold(grossResult(2400), caProfile("ON"), payroll.NewYTDState(2024))
	require.NoError(t, err)

	for _, l := range result.Lines {
		assert.NotEqual(t, tax.CodeQPIP, l.Code)
	}
	assert.Equal(t, "CPP", lineByCode(t, result, tax.CodeCPP).Name)
}

func TestCAWithhold_Quebec_QPPAndQPIP(t *testing.T) {
	// GIVEN: $2,400 biweekly gross in Quebec
	// WHEN: Withholding
	// THEN: QPP at the Quebec rate, reduced EI, and a QPIP line

	result, err := newCalculator().Withhold(grossResult(2400), caProfile("QC"), payroll.NewYTDState(2024))
	require.NoError(t, err)

	pension := lineByCode(t, result, tax.CodeCPP)
	assert.Equal(t, "QPP", pension.Name)
	// (2400 - 3500/26) * 0.064 = 144.98
	assert.Equal(t, "144.98", pension.Amount.String())
	// 2400 * 0.0132 = 31.68
	assert.Equal(t, "31.68", lineByCode(t, result, tax.CodeEI).Amount.String())
	// 2400 * 0.00494 = 11.86
	assert.Equal(t, "11.86", lineByCode(t, result, tax.CodeQPIP).Amount.String())
}

func TestCAWithhold_PensionAndEI_MarkedCumulative(t *testing.T) {
	// GIVEN: Any Canadian withholding
	// WHEN: Inspecting the capped lines
	// THEN: CPP and EI are cumulative (true running-sum YTD); income tax
	//       lines are not

	result, err := newCalculator().Withhold(grossResult(2400), caProfile("ON"), payroll.NewYTDState(2024))
	require.NoError(t, err)

	assert.True(t, lineByCode(t, result, tax.CodeCPP).Cumulative)
	assert.True(t, lineByCode(t, result, tax.CodeEI).Cumulative)
	assert.False(t, lineByCode(t, result, tax.CodeCAFederal).Cumulative)
	assert.False(t, lineByCode(t, result, tax.CodeProvincial).Cumulative)
}

func TestCAWithhold_CPPCap_CrossingPeriodGetsExactRoom(t *testing.T) {
	// GIVEN: Prior YTD CPP of 3581.40 against the 3867.50 annual max
	// WHEN: Withholding a period that would contribute 358.14 uncapped
	// THEN: The period contributes exactly the remaining 286.10

	prior := payroll.NewYTDState(2024)
	prior.Withheld[tax.CodeCPP] = payroll.NewMoney(3581.40)

	result, err := newCalculator().Withhold(grossResult(6153.85), caProfile("ON"), prior)
	require.NoError(t, err)
	assert.Equal(t, "286.10", lineByCode(t, result, tax.CodeCPP).Amount.String())
}

func TestCAWithhold_CPPCap_AfterCap_ExactlyZero(t *testing.T) {
	// GIVEN: Prior YTD CPP already at the annual max
	// WHEN: Withholding another period
	// THEN: The CPP line is exactly zero

	prior := payroll.NewYTDState(2024)
	prior.Withheld[tax.CodeCPP] = payroll.NewMoney(3867.50)

	result, err := newCalculator().Withhold(grossResult(6153.85), caProfile("ON"), prior)
	require.NoError(t, err)
	assert.True(t, lineByCode(t, result, tax.CodeCPP).Amount.IsZero())
}

func TestCAWithhold_EICap_Honored(t *testing.T) {
	// GIVEN: Prior YTD EI premiums just under the 1049.12 max
	// WHEN: Withholding
	// THEN: The period premium is truncated to the remaining room

	prior := payroll.NewYTDState(2024)
	prior.Withheld[tax.CodeEI] = payroll.NewMoney(1009.20)

	result, err := newCalculator().Withhold(grossResult(6153.85), caProfile("ON"), prior)
	require.NoError(t, err)
	// uncapped 6153.85 * 0.0164 = 100.92, room = 39.92
	assert.Equal(t, "39.92", lineByCode(t, result, tax.CodeEI).Amount.String())
}

func TestCAWithhold_MaritalStatus_ReducesIncomeTax(t *testing.T) {
	// GIVEN: Identical profiles differing only in marital status
	// WHEN: Withholding
	// THEN: The married profile owes less federal and provincial tax

	single := caProfile("ON")
	married := caProfile("ON")
	married.MaritalStatus = payroll.MaritalMarried

	rs, err := newCalculator().Withhold(grossResult(2400), single, payroll.NewYTDState(2024))
	require.NoError(t, err)
	rm, err := newCalculator().Withhold(grossResult(2400), married, payroll.NewYTDState(2024))
	require.NoError(t, err)

	assert.True(t, lineByCode(t, rm, tax.CodeCAFederal).Amount.LessThan(lineByCode(t, rs, tax.CodeCAFederal).Amount))
	assert.True(t, lineByCode(t, rm, tax.CodeProvincial).Amount.LessThan(lineByCode(t, rs, tax.CodeProvincial).Amount))
}

func TestCAWithhold_LowIncome_BPACreditFloorsAtZero(t *testing.T) {
	// GIVEN: Income low enough that the BPA credit exceeds the bracket tax
	// WHEN: Withholding
	// THEN: Income tax is exactly zero, never negative

	profile := caProfile("ON")
	result, err := newCalculator().Withhold(grossResult(400), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)

	// annual 10400 is below both the federal and Ontario BPA.
	assert.True(t, lineByCode(t, result, tax.CodeCAFederal).Amount.IsZero())
	assert.True(t, lineByCode(t, result, tax.CodeProvincial).Amount.IsZero())
}

func TestCAWithhold_Contractor_AllLinesZero(t *testing.T) {
	// GIVEN: A contractor in Ontario
	// WHEN: Withholding
	// THEN: Every line present and exactly zero

	profile := caProfile("ON")
	profile.Classification = payroll.ClassContractor

	result, err := newCalculator().Withhold(grossResult(5000), profile, payroll.NewYTDState(2024))
	require.NoError(t, err)
	require.NotEmpty(t, result.Lines)
	for _, l := range result.Lines {
		assert.True(t, l.Amount.IsZero(), "line %s = %s, want 0", l.Code, l.Amount)
	}
}
