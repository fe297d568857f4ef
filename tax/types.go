// Package tax implements the jurisdiction-family withholding calculators.
// It plugs into the payroll engine's Withholder interface: the engine knows
// nothing about tax rules, and this package knows nothing about scheduling
// or YTD accumulation beyond the prior-state snapshot it is handed.
package tax

import (
	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// WITHHOLDING LINE CODES
// =============================================================================

// Stable machine codes for withholding lines. The payroll package treats
// these opaquely; they key the YTD running sums, so they must not change
// between releases.
const (
	CodeSocialSecurity = "social_security"
	CodeMedicare       = "medicare"
	CodeFederalIncome  = "federal_income_tax"
	CodeStateIncome    = "state_income_tax"
	CodeLocalIncome    = "local_income_tax"

	CodeCPP        = "cpp"
	CodeEI         = "ei"
	CodeQPIP       = "qpip"
	CodeCAFederal  = "ca_federal_tax"
	CodeProvincial = "provincial_tax"
)

// =============================================================================
// FAMILY DISPATCH
// =============================================================================

// Calculator dispatches to the US or CA variant based on the profile's
// jurisdiction code. It is the standard Withholder wired into the engine.
type Calculator struct {
	table *jurisdiction.Table
	us    *US
	ca    *CA
}

// New builds a Calculator over a validated, read-only table.
func New(table *jurisdiction.Table) *Calculator {
	return &Calculator{
		table: table,
		us:    &US{Table: table},
		ca:    &CA{Table: table},
	}
}

// Withhold resolves the jurisdiction family and delegates. Unknown codes
// raise UnsupportedJurisdictionError before any computation.
func (c *Calculator) Withhold(gross payroll.GrossResult, profile payroll.EmploymentProfile, prior payroll.YTDState) (payroll.WithholdingResult, error) {
	family, err := c.table.Family(profile.Jurisdiction)
	if err != nil {
		return payroll.WithholdingResult{}, err
	}
	switch family {
	case jurisdiction.FamilyCA:
		return c.ca.Withhold(gross, profile, prior)
	default:
		return c.us.Withhold(gross, profile, prior)
	}
}

// Compile-time interface checks.
var (
	_ payroll.Withholder = (*Calculator)(nil)
	_ payroll.Withholder = (*US)(nil)
	_ payroll.Withholder = (*CA)(nil)
)
