/*
dto.go - Request/response data structures for the HTTP API

PURPOSE:
  Maps JSON wire types to engine types. Floats only exist here, at the
  boundary: they are validated (no NaN/Inf) and converted to decimal-backed
  Money before any computation. Responses serialize LedgerEntry directly -
  every monetary field renders as a fixed two-place decimal string.
*/
package api

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// REQUEST DTOS
// =============================================================================

type ProfileDTO struct {
	Classification string  `json:"classification"`
	PayType        string  `json:"pay_type"`
	Frequency      string  `json:"frequency"`
	HourlyRate     float64 `json:"hourly_rate,omitempty"`
	AnnualSalary   float64 `json:"annual_salary,omitempty"`

	Jurisdiction string `json:"jurisdiction"`
	City         string `json:"city,omitempty"`
	LocalTax     bool   `json:"local_tax,omitempty"`

	HireDate string `json:"hire_date,omitempty"`
	PayDay   string `json:"pay_day,omitempty"`

	FilingStatus    string `json:"filing_status,omitempty"`
	StateAllowances int    `json:"state_allowances,omitempty"`

	MaritalStatus        string `json:"marital_status,omitempty"`
	FederalAllowances    int    `json:"federal_allowances,omitempty"`
	ProvincialAllowances int    `json:"provincial_allowances,omitempty"`
}

type PeriodDTO struct {
	Hours         *float64 `json:"hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Commission    float64  `json:"commission,omitempty"`
	Tips          float64  `json:"tips,omitempty"`

	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	PayDate   string `json:"pay_date,omitempty"`
}

type LineItemDTO struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Mode   string  `json:"mode"`
	Amount float64 `json:"amount"`
	PreTax bool    `json:"pre_tax"`
}

type MatchRuleDTO struct {
	Target           string  `json:"target"`
	MatchUpToPercent float64 `json:"match_up_to_percent"`
	MatchPercent     float64 `json:"match_percent"`
}

type ComputeRequest struct {
	Profile    ProfileDTO     `json:"profile"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Periods    []PeriodDTO    `json:"periods,omitempty"`
	LineItems  []LineItemDTO  `json:"line_items,omitempty"`
	MatchRules []MatchRuleDTO `json:"match_rules,omitempty"`

	// Save persists the run for later retrieval.
	Save bool `json:"save,omitempty"`
}

// =============================================================================
// RESPONSE DTOS
// =============================================================================

type ComputeResponse struct {
	RunID        string                `json:"run_id,omitempty"`
	Jurisdiction string                `json:"jurisdiction"`
	TableVersion int                   `json:"table_version"`
	Entries      []payroll.LedgerEntry `json:"entries"`
}

type JurisdictionsResponse struct {
	TableVersion int                 `json:"table_version"`
	Families     map[string][]string `json:"families"`
}

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// CONVERSION
// =============================================================================

func checkedMoney(field string, v float64) (payroll.Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return payroll.Money{}, &payroll.InvalidInputError{Field: field, Reason: "must be a finite number"}
	}
	return payroll.NewMoney(v), nil
}

func checkedHours(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, &payroll.InvalidInputError{Field: field, Reason: "must be a finite number"}
	}
	return decimal.NewFromFloat(v), nil
}

func parseDate(field, s string) (payroll.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return payroll.Date{}, &payroll.InvalidInputError{Field: field, Reason: "must be YYYY-MM-DD"}
	}
	return payroll.DateOf(t), nil
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

func (p ProfileDTO) toProfile() (payroll.EmploymentProfile, error) {
	rate, err := checkedMoney("hourly_rate", p.HourlyRate)
	if err != nil {
		return payroll.EmploymentProfile{}, err
	}
	salary, err := checkedMoney("annual_salary", p.AnnualSalary)
	if err != nil {
		return payroll.EmploymentProfile{}, err
	}

	profile := payroll.EmploymentProfile{
		Classification: payroll.Classification(p.Classification),
		PayType:        payroll.PayType(p.PayType),
		Frequency:      payroll.Frequency(p.Frequency),
		HourlyRate:     rate,
		AnnualSalary:   salary,

		Jurisdiction: p.Jurisdiction,
		City:         p.City,
		LocalTax:     p.LocalTax,

		FilingStatus:    payroll.FilingStatus(p.FilingStatus),
		StateAllowances: p.StateAllowances,

		MaritalStatus:        payroll.MaritalStatus(p.MaritalStatus),
		FederalAllowances:    p.FederalAllowances,
		ProvincialAllowances: p.ProvincialAllowances,
	}

	if p.HireDate != "" {
		profile.HireDate, err = parseDate("hire_date", p.HireDate)
		if err != nil {
			return payroll.EmploymentProfile{}, err
		}
	}
	if p.PayDay != "" {
		wd, ok := weekdays[p.PayDay]
		if !ok {
			return payroll.EmploymentProfile{}, &payroll.InvalidInputError{Field: "pay_day", Reason: "unknown weekday"}
		}
		profile.PayDay = &wd
	}

	switch profile.Frequency {
	case payroll.Weekly, payroll.Biweekly:
	default:
		return payroll.EmploymentProfile{}, &payroll.InvalidInputError{Field: "frequency", Reason: "must be weekly or biweekly"}
	}

	return profile, nil
}

func (r ComputeRequest) toRunSpec() (payroll.RunSpec, error) {
	profile, err := r.Profile.toProfile()
	if err != nil {
		return payroll.RunSpec{}, err
	}

	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return payroll.RunSpec{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return payroll.RunSpec{}, err
	}

	spec := payroll.RunSpec{
		Profile:   profile,
		StartDate: start,
		EndDate:   end,
	}

	for i, pd := range r.Periods {
		input := payroll.PeriodInput{}
		if pd.Hours != nil {
			h, err := checkedHours("hours", *pd.Hours)
			if err != nil {
				return payroll.RunSpec{}, err
			}
			input.Hours = &h
		}
		if pd.OvertimeHours != nil {
			h, err := checkedHours("overtime_hours", *pd.OvertimeHours)
			if err != nil {
				return payroll.RunSpec{}, err
			}
			input.OvertimeHours = &h
		}
		if input.Commission, err = checkedMoney("commission", pd.Commission); err != nil {
			return payroll.RunSpec{}, err
		}
		if input.Tips, err = checkedMoney("tips", pd.Tips); err != nil {
			return payroll.RunSpec{}, err
		}
		if pd.StartDate != "" {
			d, err := parseDate(fmt.Sprintf("periods[%d].start_date", i), pd.StartDate)
			if err != nil {
				return payroll.RunSpec{}, err
			}
			input.StartDate = &d
		}
		if pd.EndDate != "" {
			d, err := parseDate(fmt.Sprintf("periods[%d].end_date", i), pd.EndDate)
			if err != nil {
				return payroll.RunSpec{}, err
			}
			input.EndDate = &d
		}
		if pd.PayDate != "" {
			d, err := parseDate(fmt.Sprintf("periods[%d].pay_date", i), pd.PayDate)
			if err != nil {
				return payroll.RunSpec{}, err
			}
			input.PayDate = &d
		}
		spec.Periods = append(spec.Periods, input)
	}

	for _, li := range r.LineItems {
		amount, err := checkedMoney("line_item:"+li.Name, li.Amount)
		if err != nil {
			return payroll.RunSpec{}, err
		}
		spec.LineItems = append(spec.LineItems, payroll.LineItem{
			Name:   li.Name,
			Kind:   payroll.LineItemKind(li.Kind),
			Mode:   payroll.AmountMode(li.Mode),
			Amount: amount,
			PreTax: li.PreTax,
		})
	}

	for _, mr := range r.MatchRules {
		upTo, err := checkedMoney("match_up_to_percent", mr.MatchUpToPercent)
		if err != nil {
			return payroll.RunSpec{}, err
		}
		pct, err := checkedMoney("match_percent", mr.MatchPercent)
		if err != nil {
			return payroll.RunSpec{}, err
		}
		spec.MatchRules = append(spec.MatchRules, payroll.EmployerMatchRule{
			Target:           mr.Target,
			MatchUpToPercent: upTo,
			MatchPercent:     pct,
		})
	}

	return spec, nil
}
