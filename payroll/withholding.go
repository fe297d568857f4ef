package payroll

// =============================================================================
// WITHHOLDING - Interface between the engine and jurisdiction calculators
// =============================================================================

// Withholder computes statutory withholding for one period. Implementations
// live in the tax package (one per jurisdiction family); the engine has NO
// knowledge of specific tax rules.
//
// The prior YTD state is passed so wage-base caps (CPP/EI/QPIP) can
// truncate a contribution to exactly the remaining annual room.
type Withholder interface {
	// Withhold returns the statutory withholding lines for the period.
	// Contractors receive all-zero lines, never an error.
	Withhold(gross GrossResult, profile EmploymentProfile, prior YTDState) (WithholdingResult, error)
}

// WithholdingLine is one statutory withholding amount for the period.
type WithholdingLine struct {
	// Code is a stable machine identifier (e.g. "social_security", "cpp").
	// The engine treats codes opaquely; they key the YTD running sums.
	Code string

	// Name is the human-readable label for pay stubs.
	Name string

	Amount Money

	// Cumulative marks lines whose YTD must be the running sum of actual
	// per-period amounts (wage-base-capped contributions) instead of the
	// constant-per-period projection used for everything else.
	Cumulative bool
}

// WithholdingResult is the ordered set of withholding lines for a period.
// Order is stable so ledger entries replay byte-identically.
type WithholdingResult struct {
	Lines []WithholdingLine
}

// Total sums all withholding lines.
func (r WithholdingResult) Total() Money {
	total := Zero()
	for _, l := range r.Lines {
		total = total.Add(l.Amount)
	}
	return total
}
