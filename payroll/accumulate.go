/*
accumulate.go - The year-to-date accumulation fold

PURPOSE:
  Folds each period's results into running YTD totals. This is the only
  component with a sequential-state dependency: entry i is a pure function
  of the state after entries 0..i-1 plus entry i's own period values.

THE FOLD:
  state_0 = NewYTDState(year)
  entry_i, state_i = Accumulate(state_{i-1}, ...)

  No mutable closures, no in-place updates: Accumulate returns a fresh
  state, so intermediate states are inspectable and runs replay
  byte-identically.

YTD METHODS:
  Constant-per-period lines (regular pay, fixed deductions, flat taxes) use
  the projection YTD = currentAmount * periodsElapsedInYear, where
  periodsElapsed is anchored to max(hireDate, Jan 1 of the period-end
  year). This matches observed upstream behavior and assumes constant
  amounts within the year.

  Variable lines (commission, tips) and wage-base-capped contributions
  (CPP/EI/QPIP) use true running sums of actual per-period amounts - the
  cap logic already produces period-correct values, and multiplying a
  capped amount would overstate the year.

YEAR BOUNDARIES:
  The YTD window resets when a period's end date crosses into a new
  calendar year. The engine swaps in a fresh state before computing the
  first period of the new year.
*/
package payroll

// =============================================================================
// YTD STATE - Carried only inside the accumulation loop
// =============================================================================

// YTDState is the running state threaded through the fold. It is not
// persisted anywhere: it is reconstructable at any index by replaying
// periods 0..i.
type YTDState struct {
	Year int

	Gross      Money
	Regular    Money
	Overtime   Money
	Commission Money
	Tips       Money

	// Withheld holds running sums of actual per-period withholding,
	// keyed by line code. Needed by wage-base cap logic.
	Withheld map[string]Money

	// Items holds running sums of actual line-item amounts, keyed by name.
	Items map[string]Money

	// Matches holds running sums of employer matches, keyed by target.
	Matches map[string]Money

	Deductions    Money
	Contributions Money
	WithheldTotal Money
}

// NewYTDState returns the zero state for a calendar year.
func NewYTDState(year int) YTDState {
	return YTDState{
		Year:          year,
		Gross:         Zero(),
		Regular:       Zero(),
		Overtime:      Zero(),
		Commission:    Zero(),
		Tips:          Zero(),
		Withheld:      map[string]Money{},
		Items:         map[string]Money{},
		Matches:       map[string]Money{},
		Deductions:    Zero(),
		Contributions: Zero(),
		WithheldTotal: Zero(),
	}
}

// WithheldFor returns the running YTD withholding for a line code.
func (s YTDState) WithheldFor(code string) Money {
	if v, ok := s.Withheld[code]; ok {
		return v
	}
	return Zero()
}

// clone copies the state so the fold never aliases maps between steps.
func (s YTDState) clone() YTDState {
	out := s
	out.Withheld = make(map[string]Money, len(s.Withheld))
	for k, v := range s.Withheld {
		out.Withheld[k] = v
	}
	out.Items = make(map[string]Money, len(s.Items))
	for k, v := range s.Items {
		out.Items[k] = v
	}
	out.Matches = make(map[string]Money, len(s.Matches))
	for k, v := range s.Matches {
		out.Matches[k] = v
	}
	return out
}

// =============================================================================
// PERIODS ELAPSED - The projection multiplier
// =============================================================================

// periodsElapsedInYear returns how many periods have elapsed in the
// period-end calendar year, anchored to the hire date when it falls inside
// that year. An absent hire date anchors to the period's own start date,
// treating the run as starting fresh.
func periodsElapsedInYear(hireDate Date, period PayPeriod, periodDays int) int {
	hire := hireDate
	if hire.IsZero() {
		hire = period.StartDate
	}
	anchor := LaterOf(hire, StartOfYear(period.EndDate.Year()))
	days := DaysBetween(anchor, period.EndDate)
	n := (days + periodDays - 1) / periodDays
	if n < 1 {
		n = 1
	}
	return n
}

// =============================================================================
// THE FOLD STEP
// =============================================================================

// Accumulate assembles the ledger entry for one period and returns the
// successor YTD state. Strict left-fold: the inputs are never mutated.
func Accumulate(
	state YTDState,
	profile EmploymentProfile,
	period PayPeriod,
	gross GrossResult,
	withholding WithholdingResult,
	items LineItemResult,
) (LedgerEntry, YTDState) {

	elapsed := periodsElapsedInYear(profile.HireDate, period, profile.Frequency.PeriodDays())

	// Gross components: projection for the constant ones, running sums for
	// the variable ones.
	ytdRegular := gross.Regular.MulScalar(elapsed)
	ytdOvertime := gross.Overtime.MulScalar(elapsed)
	ytdCommission := state.Commission.Add(gross.Commission)
	ytdTips := state.Tips.Add(gross.Tips)
	ytdGross := ytdRegular.Add(ytdOvertime).Add(ytdCommission).Add(ytdTips)

	// Withholding lines.
	withholdings := make([]WithholdingEntry, len(withholding.Lines))
	ytdWithheld := Zero()
	for i, line := range withholding.Lines {
		var ytd Money
		if line.Cumulative {
			ytd = state.WithheldFor(line.Code).Add(line.Amount)
		} else {
			ytd = line.Amount.MulScalar(elapsed)
		}
		withholdings[i] = WithholdingEntry{
			Code:   line.Code,
			Name:   line.Name,
			Amount: line.Amount,
			YTD:    ytd,
		}
		ytdWithheld = ytdWithheld.Add(ytd)
	}
	totalWithheld := withholding.Total()

	// Line items.
	lineEntries := make([]LineItemEntry, len(items.Items))
	for i, it := range items.Items {
		lineEntries[i] = LineItemEntry{
			Name:   it.Item.Name,
			Kind:   it.Item.Kind,
			PreTax: it.Item.PreTax,
			Amount: it.Amount,
			YTD:    it.Amount.MulScalar(elapsed),
		}
	}

	// Employer matches.
	matchEntries := make([]MatchEntry, len(items.Matches))
	for i, m := range items.Matches {
		matchEntries[i] = MatchEntry{
			Target: m.Rule.Target,
			Amount: m.Amount,
			YTD:    m.Amount.MulScalar(elapsed),
		}
	}

	ytdDeductions := items.Deductions.MulScalar(elapsed)
	ytdContributions := items.Contributions.MulScalar(elapsed)

	net := gross.Gross.
		Sub(totalWithheld).
		Sub(items.Deductions).
		Sub(items.Contributions)

	entry := LedgerEntry{
		Index:  period.Index,
		Period: period,

		Hours:         gross.Hours,
		OvertimeHours: gross.OvertimeHours,

		Regular:    gross.Regular,
		Overtime:   gross.Overtime,
		Commission: gross.Commission,
		Tips:       gross.Tips,
		Gross:      gross.Gross,

		YTDRegular:    ytdRegular,
		YTDOvertime:   ytdOvertime,
		YTDCommission: ytdCommission,
		YTDTips:       ytdTips,
		YTDGross:      ytdGross,

		Withholdings:    withholdings,
		LineItems:       lineEntries,
		EmployerMatches: matchEntries,

		TotalWithheld:      totalWithheld,
		TotalDeductions:    items.Deductions,
		TotalContributions: items.Contributions,
		PreTaxTotal:        items.PreTax,
		PostTaxTotal:       items.PostTax,
		EmployerMatchTotal: items.EmployerMatch,
		NetPay:             net,

		YTDWithheld:      ytdWithheld,
		YTDDeductions:    ytdDeductions,
		YTDContributions: ytdContributions,
		YTDNet:           ytdGross.Sub(ytdWithheld).Sub(ytdDeductions).Sub(ytdContributions),
	}

	next := state.clone()
	next.Gross = next.Gross.Add(gross.Gross)
	next.Regular = next.Regular.Add(gross.Regular)
	next.Overtime = next.Overtime.Add(gross.Overtime)
	next.Commission = ytdCommission
	next.Tips = ytdTips
	for _, line := range withholding.Lines {
		next.Withheld[line.Code] = next.WithheldFor(line.Code).Add(line.Amount)
	}
	for _, it := range items.Items {
		prev, ok := next.Items[it.Item.Name]
		if !ok {
			prev = Zero()
		}
		next.Items[it.Item.Name] = prev.Add(it.Amount)
	}
	for _, m := range items.Matches {
		prev, ok := next.Matches[m.Rule.Target]
		if !ok {
			prev = Zero()
		}
		next.Matches[m.Rule.Target] = prev.Add(m.Amount)
	}
	next.Deductions = next.Deductions.Add(items.Deductions)
	next.Contributions = next.Contributions.Add(items.Contributions)
	next.WithheldTotal = next.WithheldTotal.Add(totalWithheld)

	return entry, next
}
