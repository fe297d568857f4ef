package payroll_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// SCHEDULING TESTS
// =============================================================================

func TestSchedule_Biweekly_QuarterSpan(t *testing.T) {
	// GIVEN: A biweekly cadence over Jan 1 - Mar 31 (90 days)
	// WHEN: Building the schedule
	// THEN: ceil(90/14) = 7 full 14-day periods, contiguous and ordered

	start := payroll.NewDate(2024, time.January, 1)
	end := payroll.NewDate(2024, time.March, 31)

	periods, err := payroll.Schedule(start, end, payroll.Biweekly, time.Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != 7 {
		t.Fatalf("expected 7 periods, got %d", len(periods))
	}

	for i, p := range periods {
		if p.Index != i {
			t.Errorf("period %d has index %d", i, p.Index)
		}
		if got := payroll.DaysBetween(p.StartDate, p.EndDate); got != 13 {
			t.Errorf("period %d spans %d days, want 13", i, got)
		}
		if i > 0 {
			prev := periods[i-1]
			if !p.StartDate.Equal(prev.EndDate.AddDays(1)) {
				t.Errorf("period %d not contiguous with period %d", i, i-1)
			}
		}
	}
}

func TestSchedule_FinalPeriodRunsFull_NotTruncated(t *testing.T) {
	// GIVEN: A range whose final period overshoots the requested end date
	// WHEN: Building the schedule
	// THEN: The final period still spans the full 14 days

	start := payroll.NewDate(2024, time.January, 1)
	end := payroll.NewDate(2024, time.March, 31)

	periods, err := payroll.Schedule(start, end, payroll.Biweekly, time.Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := periods[len(periods)-1]
	wantEnd := payroll.NewDate(2024, time.April, 7)
	if !last.EndDate.Equal(wantEnd) {
		t.Errorf("final period end = %s, want %s (full period, no truncation)", last.EndDate, wantEnd)
	}
	if last.EndDate.BeforeOrEqual(end) {
		t.Errorf("expected final period to overshoot the requested end date")
	}
}

func TestSchedule_Weekly_PeriodCount(t *testing.T) {
	// GIVEN: A weekly cadence over Jan 1 - Jan 31 (30 days)
	// WHEN: Building the schedule
	// THEN: ceil(30/7) = 5 periods of 7 days each

	start := payroll.NewDate(2024, time.January, 1)
	end := payroll.NewDate(2024, time.January, 31)

	periods, err := payroll.Schedule(start, end, payroll.Weekly, time.Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != 5 {
		t.Fatalf("expected 5 periods, got %d", len(periods))
	}
	for i, p := range periods {
		if got := payroll.DaysBetween(p.StartDate, p.EndDate); got != 6 {
			t.Errorf("period %d spans %d days, want 6", i, got)
		}
	}
}

func TestSchedule_PayDate_FirstPayWeekdayOnOrAfterPeriodEnd(t *testing.T) {
	// GIVEN: Period ending Sunday Jan 14, 2024 and a Friday pay day
	// WHEN: Building the schedule
	// THEN: The pay date is the following Friday, Jan 19

	start := payroll.NewDate(2024, time.January, 1)
	end := payroll.NewDate(2024, time.January, 14)

	periods, err := payroll.Schedule(start, end, payroll.Biweekly, time.Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := payroll.NewDate(2024, time.January, 19)
	if !periods[0].PayDate.Equal(want) {
		t.Errorf("pay date = %s, want %s", periods[0].PayDate, want)
	}
	if periods[0].PayDate.Weekday() != time.Friday {
		t.Errorf("pay date lands on %s, want Friday", periods[0].PayDate.Weekday())
	}
}

func TestSchedule_PayDate_PeriodEndOnPayWeekday(t *testing.T) {
	// GIVEN: A period ending exactly on the configured pay weekday
	// WHEN: Building the schedule
	// THEN: The pay date is the period end itself, not a week later

	// Jan 1 2024 is a Monday; a 7-day period ends Sunday Jan 7.
	start := payroll.NewDate(2024, time.January, 1)
	end := payroll.NewDate(2024, time.January, 7)

	periods, err := payroll.Schedule(start, end, payroll.Weekly, time.Sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !periods[0].PayDate.Equal(periods[0].EndDate) {
		t.Errorf("pay date = %s, want period end %s", periods[0].PayDate, periods[0].EndDate)
	}
}

func TestSchedule_SameDayRange_YieldsOnePeriod(t *testing.T) {
	// GIVEN: start == end
	// WHEN: Building the schedule
	// THEN: Exactly one full period

	day := payroll.NewDate(2024, time.June, 3)
	periods, err := payroll.Schedule(day, day, payroll.Weekly, time.Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(periods))
	}
}

func TestSchedule_EndBeforeStart_Rejected(t *testing.T) {
	// GIVEN: end precedes start
	// WHEN: Building the schedule
	// THEN: InvalidDateRangeError

	start := payroll.NewDate(2024, time.March, 1)
	end := payroll.NewDate(2024, time.February, 1)

	_, err := payroll.Schedule(start, end, payroll.Biweekly, time.Friday)
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	var rangeErr *payroll.InvalidDateRangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected InvalidDateRangeError, got %T", err)
	}
}
