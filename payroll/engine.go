/*
engine.go - The full computation pipeline

PURPOSE:
  Wires the pure components into the per-employee pipeline:

    Schedule -> for each period in order:
      GrossPay -> Withhold -> ProcessLineItems -> Accumulate

  Periods for one employee MUST run in order (the YTD fold is a hard
  sequential dependency). Parallelism is only safe across independent
  employees; RunBatch exploits that with one goroutine per run spec over a
  shared read-only jurisdiction table.

CONTRACT:
  Run either raises precisely (invalid input, unsupported jurisdiction) or
  returns a fully-populated ledger. There is no partial output, no retry,
  no silent default beyond the two documented fallbacks (filing status,
  local-tax opt-in) inside the withholding calculators.
*/
package payroll

import "sync"

// RunSpec is the complete input for one employee's computation run.
// Immutable once Run starts.
type RunSpec struct {
	Profile EmploymentProfile

	StartDate Date
	EndDate   Date

	// Periods carries per-period overrides aligned by index; shorter than
	// the schedule is fine (missing entries mean all defaults).
	Periods []PeriodInput

	LineItems  []LineItem
	MatchRules []EmployerMatchRule
}

// Engine runs the payroll pipeline. The Withholder is the only pluggable
// part; everything else is fixed pure computation.
type Engine struct {
	Withholder Withholder
}

func NewEngine(w Withholder) *Engine {
	return &Engine{Withholder: w}
}

// Run computes the ordered ledger for one employee.
func (e *Engine) Run(spec RunSpec) ([]LedgerEntry, error) {
	periods, err := Schedule(spec.StartDate, spec.EndDate, spec.Profile.Frequency, spec.Profile.PayWeekday())
	if err != nil {
		return nil, err
	}
	periods = applyDateOverrides(periods, spec.Periods)

	entries := make([]LedgerEntry, 0, len(periods))
	state := NewYTDState(periods[0].EndDate.Year())

	for i, period := range periods {
		var input PeriodInput
		if i < len(spec.Periods) {
			input = spec.Periods[i]
		}

		// YTD window resets at the calendar year of the period's end date.
		if period.EndDate.Year() != state.Year {
			state = NewYTDState(period.EndDate.Year())
		}

		gross, err := GrossPay(spec.Profile, input)
		if err != nil {
			return nil, err
		}

		withholding, err := e.Withholder.Withhold(gross, spec.Profile, state)
		if err != nil {
			return nil, err
		}

		items, err := ProcessLineItems(gross.Gross, spec.LineItems, spec.MatchRules)
		if err != nil {
			return nil, err
		}

		var entry LedgerEntry
		entry, state = Accumulate(state, spec.Profile, period, gross, withholding, items)
		entries = append(entries, entry)
	}

	return entries, nil
}

// BatchResult pairs one run's output with its input index.
type BatchResult struct {
	Index   int
	Entries []LedgerEntry
	Err     error
}

// RunBatch computes independent runs concurrently, one goroutine per spec.
// Safe because runs share no mutable state: the jurisdiction table behind
// the Withholder is read-only after load. Results are returned in input
// order.
func (e *Engine) RunBatch(specs []RunSpec) []BatchResult {
	results := make([]BatchResult, len(specs))
	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec RunSpec) {
			defer wg.Done()
			entries, err := e.Run(spec)
			results[i] = BatchResult{Index: i, Entries: entries, Err: err}
		}(i, spec)
	}
	wg.Wait()
	return results
}
