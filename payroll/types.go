/*
Package payroll provides the core payroll computation engine.

PURPOSE:
  This package contains the jurisdiction-agnostic types and algorithms for
  turning an employment configuration into an ordered sequence of pay-period
  ledger entries: period scheduling, gross-pay derivation, deduction and
  contribution processing, and the year-to-date accumulation fold.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A fixed-precision dollar amount (decimal-backed, never float)
  - EmploymentProfile: Who is being paid and how (immutable per run)
  - LineItem: A voluntary deduction or contribution
  - EmployerMatchRule: Employer-side matching with rate/ceiling caps
  - PeriodInput: Per-period overrides (hours, commission, explicit dates)

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point drift
  2. Purity: Every component except the YTD fold is a pure function
  3. Immutability: Ledger entries are created once and never mutated
  4. Rounding: Round half-up to 2 places, applied once per computed field

SEE ALSO:
  - schedule.go: Pay-period scheduling
  - gross.go: Gross-pay derivation
  - lineitems.go: Deductions, contributions, employer matches
  - accumulate.go: The YTD left-fold
  - engine.go: The full pipeline
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Fixed-precision dollar amount
// =============================================================================

// Money is a dollar amount backed by decimal.Decimal.
// All monetary math in the engine goes through this type; float64 never
// touches a computed field.
type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money      { return Money{Value: decimal.NewFromFloat(value)} }
func NewMoneyFromInt(value int64) Money { return Money{Value: decimal.NewFromInt(value)} }
func Zero() Money                       { return Money{Value: decimal.Zero} }

// MustParseMoney parses a decimal string, panicking on malformed input.
// Intended for static table data and tests, not user input.
func MustParseMoney(s string) Money {
	return Money{Value: decimal.RequireFromString(s)}
}

func (m Money) Add(b Money) Money                { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money                { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money      { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money      { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                       { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool                 { return m.Value.IsNegative() }
func (m Money) IsZero() bool                     { return m.Value.IsZero() }
func (m Money) IsPositive() bool                 { return m.Value.IsPositive() }
func (m Money) GreaterThan(b Money) bool         { return m.Value.GreaterThan(b.Value) }
func (m Money) GreaterThanOrEqual(b Money) bool  { return m.Value.GreaterThanOrEqual(b.Value) }
func (m Money) LessThan(b Money) bool            { return m.Value.LessThan(b.Value) }
func (m Money) Equal(b Money) bool               { return m.Value.Equal(b.Value) }
func (m Money) Min(b Money) Money {
	if m.LessThan(b) {
		return m
	}
	return b
}

func (m Money) Max(b Money) Money {
	if m.GreaterThan(b) {
		return m
	}
	return b
}

// Round applies the engine-wide rounding rule: half-up to 2 decimal places.
// Each computed field is rounded exactly once, at the point it is produced.
func (m Money) Round() Money { return Money{Value: m.Value.Round(2)} }

// MulScalar multiplies by an integer count (used for YTD projection).
func (m Money) MulScalar(n int) Money {
	return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))}
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string { return m.Value.StringFixed(2) }

// MarshalJSON serializes as a fixed two-place decimal string, the wire
// contract with rendering/export collaborators.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Value.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.Value = d
	return nil
}

// =============================================================================
// EMPLOYMENT CONFIGURATION
// =============================================================================

// Classification separates employees (statutory withholding applies) from
// contractors (all statutory withholding is zero).
type Classification string

const (
	ClassEmployee   Classification = "employee"
	ClassContractor Classification = "contractor"
)

type PayType string

const (
	PayHourly PayType = "hourly"
	PaySalary PayType = "salary"
)

// Frequency is the pay cadence. Period length and periods-per-year are
// derived from it, never configured independently.
type Frequency string

const (
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
)

// PeriodDays returns the period length in days (7 or 14).
func (f Frequency) PeriodDays() int {
	if f == Weekly {
		return 7
	}
	return 14
}

// PeriodsPerYear returns 52 for weekly, 26 for biweekly.
func (f Frequency) PeriodsPerYear() int {
	if f == Weekly {
		return 52
	}
	return 26
}

// DefaultHours is the assumed regular hours for a period when the caller
// supplies none: 40 for weekly, 80 for biweekly.
func (f Frequency) DefaultHours() decimal.Decimal {
	if f == Weekly {
		return decimal.NewFromInt(40)
	}
	return decimal.NewFromInt(80)
}

// FilingStatus is the US federal filing status. An empty or unknown status
// falls back to a documented flat-rate withholding (see tax package).
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarried         FilingStatus = "married"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// MaritalStatus is the Canadian marital status used for the federal and
// provincial non-refundable marital credits.
type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "single"
	MaritalMarried   MaritalStatus = "married"
	MaritalCommonLaw MaritalStatus = "common_law"
	MaritalSeparated MaritalStatus = "separated"
	MaritalDivorced  MaritalStatus = "divorced"
	MaritalWidowed   MaritalStatus = "widowed"
)

// EmploymentProfile is the full employment configuration for one worker.
// It is immutable once a computation run starts; the engine never writes
// to it.
type EmploymentProfile struct {
	Classification Classification
	PayType        PayType
	Frequency      Frequency

	// Pay basis. HourlyRate applies when PayType == PayHourly,
	// AnnualSalary when PayType == PaySalary.
	HourlyRate   Money
	AnnualSalary Money

	// Jurisdiction is the state or province code (e.g. "TX", "ON").
	// The jurisdiction table decides which family (US/CA) it belongs to.
	Jurisdiction string

	// City enables local tax lookup when LocalTax is true. Local tax is
	// strictly opt-in.
	City     string
	LocalTax bool

	HireDate Date

	// US-side configuration.
	FilingStatus    FilingStatus
	StateAllowances int

	// Canada-side configuration.
	MaritalStatus        MaritalStatus
	FederalAllowances    int
	ProvincialAllowances int

	// PayDay is the weekday pay dates land on (first occurrence on or
	// after each period end). Defaults to Friday when unset.
	PayDay *time.Weekday
}

// PayWeekday returns the configured pay weekday, defaulting to Friday.
func (p EmploymentProfile) PayWeekday() time.Weekday {
	if p.PayDay != nil {
		return *p.PayDay
	}
	return time.Friday
}

// =============================================================================
// LINE ITEMS - Voluntary deductions and contributions
// =============================================================================

type LineItemKind string

const (
	KindDeduction    LineItemKind = "deduction"
	KindContribution LineItemKind = "contribution"
)

type AmountMode string

const (
	AmountFixed          AmountMode = "fixed"
	AmountPercentOfGross AmountMode = "percent_of_gross"
)

// LineItem is a user-defined deduction or contribution applied every period.
// Percent amounts are expressed as percentages (5 means 5% of gross).
type LineItem struct {
	Name   string
	Kind   LineItemKind
	Mode   AmountMode
	Amount Money
	PreTax bool
}

// EmployerMatchRule computes an employer-side contribution matching an
// employee contribution line item (matched by name). The matchable amount
// is capped by the lesser of the employee's actual contribution and
// gross * MatchUpToPercent/100.
type EmployerMatchRule struct {
	Target           string // LineItem.Name of the matched contribution
	MatchUpToPercent Money  // ceiling, as percent of gross
	MatchPercent     Money  // match rate, as percent of matchable amount
}

// =============================================================================
// PER-PERIOD INPUT OVERRIDES
// =============================================================================

// PeriodInput carries the caller's per-period overrides, aligned by period
// index. Nil pointer fields mean "use the default": frequency default hours,
// zero overtime/commission/tips, scheduler-computed dates.
type PeriodInput struct {
	Hours         *decimal.Decimal
	OvertimeHours *decimal.Decimal
	Commission    Money
	Tips          Money

	StartDate *Date
	EndDate   *Date
	PayDate   *Date
}
