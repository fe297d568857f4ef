package payroll

import "time"

// =============================================================================
// PAY PERIOD - Ordered, contiguous, non-overlapping
// =============================================================================

// PayPeriod is one scheduled pay period. EndDate is always
// StartDate + periodDays - 1; PayDate is the first occurrence of the
// configured pay weekday on or after EndDate.
type PayPeriod struct {
	Index     int
	StartDate Date
	EndDate   Date
	PayDate   Date
}

// =============================================================================
// PERIOD SCHEDULER
// =============================================================================

// Schedule derives the ordered list of pay periods covering [start, end].
//
// The number of periods is ceil(daysBetween(start, end) / periodDays), with
// a minimum of one. Periods always run their full 7/14 days: the final
// period is NOT truncated to the requested end date, even when that
// overshoots the range. This preserves observed upstream behavior; callers
// that need exact truncation must post-process.
func Schedule(start, end Date, freq Frequency, payDay time.Weekday) ([]PayPeriod, error) {
	if end.Before(start) {
		return nil, &InvalidDateRangeError{Start: start, End: end}
	}

	periodDays := freq.PeriodDays()
	span := DaysBetween(start, end)
	count := (span + periodDays - 1) / periodDays
	if count < 1 {
		count = 1
	}

	periods := make([]PayPeriod, count)
	for i := 0; i < count; i++ {
		ps := start.AddDays(i * periodDays)
		pe := ps.AddDays(periodDays - 1)
		periods[i] = PayPeriod{
			Index:     i,
			StartDate: ps,
			EndDate:   pe,
			PayDate:   NextWeekdayOnOrAfter(pe, payDay),
		}
	}
	return periods, nil
}

// applyDateOverrides replaces scheduler-computed dates with caller-supplied
// explicit dates for the matching index. Overridden dates are taken as-is;
// the scheduler does not re-derive pay dates from an overridden end date.
func applyDateOverrides(periods []PayPeriod, inputs []PeriodInput) []PayPeriod {
	out := make([]PayPeriod, len(periods))
	copy(out, periods)
	for i := range out {
		if i >= len(inputs) {
			break
		}
		in := inputs[i]
		if in.StartDate != nil {
			out[i].StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			out[i].EndDate = *in.EndDate
		}
		if in.PayDate != nil {
			out[i].PayDate = *in.PayDate
		}
	}
	return out
}
