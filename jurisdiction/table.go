/*
Package jurisdiction provides the static bracket/rate configuration the
withholding calculators consume.

PURPOSE:
  A Table bundles everything jurisdiction-specific: progressive bracket
  tables, FICA/CPP/EI/QPIP rates, wage bases, basic personal amounts, and
  state/province flat rates. It is pure data: loaded once per process,
  validated fail-fast, and never mutated afterwards. The computation code
  has no jurisdiction knowledge baked in - tax years redeploy by swapping
  the table, not the code.

KEY CONCEPTS:
  - Bracket: ordered, non-overlapping [Min, Max) range with a marginal rate;
    a zero Max marks the open-ended top bracket
  - Family: which calculator variant (US or CA) a jurisdiction code selects
  - Validation: malformed tables (non-monotonic ranges, missing rates) are
    rejected at load time with ConfigurationError, before any computation

SEE ALSO:
  - us.go, ca.go: Built-in table data (2024 tax year)
  - load.go: YAML override loading
  - tax package: The calculators consuming this data
*/
package jurisdiction

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// Family is the jurisdiction family a code belongs to. It selects the
// withholding calculator variant.
type Family string

const (
	FamilyUS Family = "US"
	FamilyCA Family = "CA"
)

// =============================================================================
// BRACKETS
// =============================================================================

// Bracket is one marginal tax bracket over annualized income. Ranges are
// [Min, Max): income exactly at a boundary is taxed entirely within the
// lower bracket up to that boundary. A zero Max means unbounded and is only
// legal on the final bracket.
type Bracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// Unbounded reports whether this is the open-ended top bracket.
func (b Bracket) Unbounded() bool { return b.Max.IsZero() }

func validateBrackets(section string, brackets []Bracket) error {
	if len(brackets) == 0 {
		return &payroll.ConfigurationError{Section: section, Detail: "no brackets defined"}
	}
	if !brackets[0].Min.IsZero() {
		return &payroll.ConfigurationError{Section: section, Detail: "first bracket must start at 0"}
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return &payroll.ConfigurationError{Section: section, Detail: fmt.Sprintf("bracket %d has negative rate", i)}
		}
		last := i == len(brackets)-1
		if b.Unbounded() {
			if !last {
				return &payroll.ConfigurationError{Section: section, Detail: fmt.Sprintf("bracket %d is unbounded but not last", i)}
			}
			continue
		}
		if !b.Max.GreaterThan(b.Min) {
			return &payroll.ConfigurationError{Section: section, Detail: fmt.Sprintf("bracket %d max not above min", i)}
		}
		if !last && !brackets[i+1].Min.Equal(b.Max) {
			return &payroll.ConfigurationError{Section: section, Detail: fmt.Sprintf("bracket %d..%d ranges not contiguous", i, i+1)}
		}
	}
	return nil
}

// =============================================================================
// US TABLE
// =============================================================================

// StateTax is one US state's approximate income tax treatment.
type StateTax struct {
	Name string

	// NoIncomeTax states contribute exactly zero state tax.
	NoIncomeTax bool

	// Rate is the flat/approximate rate applied to annualized income.
	Rate decimal.Decimal

	// UsesAllowances states reduce annualized income by
	// allowances * USTable.AllowanceAmount before applying Rate.
	UsesAllowances bool

	// AllowsLocalTax gates the opt-in local tax lookup.
	AllowsLocalTax bool

	// LocalRates maps lowercase city names to local rates applied to
	// period gross. Lookup misses yield zero, never an error.
	LocalRates map[string]decimal.Decimal
}

// USTable holds all US-side configuration.
type USTable struct {
	SocialSecurityRate decimal.Decimal
	MedicareRate       decimal.Decimal

	// DefaultFlatRate applies to gross when the filing status is unknown
	// or empty (documented fallback, 22%).
	DefaultFlatRate decimal.Decimal

	FederalBrackets    map[payroll.FilingStatus][]Bracket
	StandardDeductions map[payroll.FilingStatus]decimal.Decimal

	// AllowanceAmount is the per-allowance income reduction for states
	// that use allowances ($2,500).
	AllowanceAmount decimal.Decimal

	States map[string]StateTax
}

// =============================================================================
// CANADA TABLE
// =============================================================================

// ProvinceTax is one province/territory's progressive tax configuration.
type ProvinceTax struct {
	Name                string
	Brackets            []Bracket
	BasicPersonalAmount decimal.Decimal
}

// CPPConfig holds CPP/QPP employee contribution parameters.
type CPPConfig struct {
	Rate                  decimal.Decimal // rest of Canada
	QuebecRate            decimal.Decimal // QPP
	BasicExemption        decimal.Decimal // annual ($3,500)
	MaxAnnualContribution decimal.Decimal
	QuebecMaxContribution decimal.Decimal
}

// EIConfig holds EI employee premium parameters. Quebec pays a reduced EI
// rate and a separate QPIP premium.
type EIConfig struct {
	Rate             decimal.Decimal
	QuebecRate       decimal.Decimal
	MaxAnnualPremium decimal.Decimal
	QuebecMaxPremium decimal.Decimal
}

// QPIPConfig holds Quebec Parental Insurance Plan employee parameters.
type QPIPConfig struct {
	Rate             decimal.Decimal
	MaxAnnualPremium decimal.Decimal
}

// CATable holds all Canada-side configuration.
type CATable struct {
	FederalBrackets []Bracket
	FederalBPA      decimal.Decimal

	// Per-allowance income reductions ($2,500 federal, $2,000 provincial).
	FederalAllowanceAmount    decimal.Decimal
	ProvincialAllowanceAmount decimal.Decimal

	// Marital-status income reductions: married/common-law, then
	// separated/divorced/widowed. Single gets zero.
	FederalMarriedCredit      decimal.Decimal
	ProvincialMarriedCredit   decimal.Decimal
	FederalSeparatedCredit    decimal.Decimal
	ProvincialSeparatedCredit decimal.Decimal

	CPP  CPPConfig
	EI   EIConfig
	QPIP QPIPConfig

	Provinces map[string]ProvinceTax
}

// =============================================================================
// TABLE
// =============================================================================

// Table is the complete, versioned jurisdiction configuration.
type Table struct {
	// Version is the tax year the data describes.
	Version int

	US USTable
	CA CATable
}

// Family resolves a jurisdiction code to its family. Unknown codes raise
// UnsupportedJurisdictionError - never a silent zero-tax default.
func (t *Table) Family(code string) (Family, error) {
	if _, ok := t.US.States[code]; ok {
		return FamilyUS, nil
	}
	if _, ok := t.CA.Provinces[code]; ok {
		return FamilyCA, nil
	}
	return "", &payroll.UnsupportedJurisdictionError{Code: code}
}

// Codes returns all supported jurisdiction codes grouped by family.
func (t *Table) Codes() map[Family][]string {
	out := map[Family][]string{}
	for code := range t.US.States {
		out[FamilyUS] = append(out[FamilyUS], code)
	}
	for code := range t.CA.Provinces {
		out[FamilyCA] = append(out[FamilyCA], code)
	}
	return out
}

// Validate checks the whole table and fails fast with ConfigurationError.
// Called once at load; computation code may assume a validated table.
func (t *Table) Validate() error {
	for status, brackets := range t.US.FederalBrackets {
		if err := validateBrackets("us.federal_brackets."+string(status), brackets); err != nil {
			return err
		}
		if _, ok := t.US.StandardDeductions[status]; !ok {
			return &payroll.ConfigurationError{
				Section: "us.standard_deductions",
				Detail:  fmt.Sprintf("missing standard deduction for %q", status),
			}
		}
	}
	if t.US.SocialSecurityRate.IsNegative() || t.US.MedicareRate.IsNegative() {
		return &payroll.ConfigurationError{Section: "us.fica", Detail: "negative rate"}
	}
	for code, st := range t.US.States {
		if !st.NoIncomeTax && st.Rate.IsNegative() {
			return &payroll.ConfigurationError{Section: "us.states." + code, Detail: "negative rate"}
		}
	}

	if err := validateBrackets("ca.federal_brackets", t.CA.FederalBrackets); err != nil {
		return err
	}
	for code, prov := range t.CA.Provinces {
		if err := validateBrackets("ca.provinces."+code, prov.Brackets); err != nil {
			return err
		}
		if prov.BasicPersonalAmount.IsNegative() {
			return &payroll.ConfigurationError{Section: "ca.provinces." + code, Detail: "negative basic personal amount"}
		}
	}
	if t.CA.CPP.Rate.IsNegative() || t.CA.EI.Rate.IsNegative() || t.CA.QPIP.Rate.IsNegative() {
		return &payroll.ConfigurationError{Section: "ca.rates", Detail: "negative rate"}
	}
	if t.CA.CPP.MaxAnnualContribution.IsZero() {
		return &payroll.ConfigurationError{Section: "ca.cpp", Detail: "missing annual max contribution"}
	}
	if t.CA.EI.MaxAnnualPremium.IsZero() {
		return &payroll.ConfigurationError{Section: "ca.ei", Detail: "missing annual max premium"}
	}
	return nil
}
