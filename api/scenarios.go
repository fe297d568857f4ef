/*
scenarios.go - Canned employment configurations for demos and smoke tests

PURPOSE:
  Provides pre-built configurations exercising the engine's main paths: a
  no-income-tax US state, a Canadian province, a Quebec profile (QPP +
  reduced EI + QPIP), and a salary high enough to cross the CPP annual
  maximum mid-year. Unlike stored runs, scenarios are computed on demand
  and never persisted.

USAGE VIA API:
  GET  /api/scenarios
  POST /api/scenarios/compute  {"id": "ca-cpp-cap"}
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "us-hourly-tx",
		Name:        "US Hourly, Texas",
		Description: "Biweekly hourly employee in a no-income-tax state",
	},
	{
		ID:          "us-salary-ny",
		Name:        "US Salary, New York City",
		Description: "Weekly salaried employee with state allowances and local tax",
	},
	{
		ID:          "ca-hourly-on",
		Name:        "Canadian Hourly, Ontario",
		Description: "Biweekly hourly employee with CPP and EI",
	},
	{
		ID:          "ca-salary-qc",
		Name:        "Canadian Salary, Quebec",
		Description: "QPP, reduced EI, and QPIP lines",
	},
	{
		ID:          "ca-cpp-cap",
		Name:        "CPP Annual Maximum",
		Description: "Salary high enough to cross the CPP cap mid-year",
	},
}

var scenarioRequests = map[string]ComputeRequest{
	"us-hourly-tx": {
		Profile: ProfileDTO{
			Classification: "employee", PayType: "hourly", Frequency: "biweekly",
			HourlyRate: 25, Jurisdiction: "TX", FilingStatus: "single",
			HireDate: "2024-01-01",
		},
		StartDate: "2024-01-01", EndDate: "2024-03-31",
	},
	"us-salary-ny": {
		Profile: ProfileDTO{
			Classification: "employee", PayType: "salary", Frequency: "weekly",
			AnnualSalary: 95000, Jurisdiction: "NY", FilingStatus: "single",
			StateAllowances: 1, City: "New York City", LocalTax: true,
			HireDate: "2024-01-01",
		},
		StartDate: "2024-01-01", EndDate: "2024-03-31",
	},
	"ca-hourly-on": {
		Profile: ProfileDTO{
			Classification: "employee", PayType: "hourly", Frequency: "biweekly",
			HourlyRate: 30, Jurisdiction: "ON", MaritalStatus: "single",
			HireDate: "2024-01-01",
		},
		StartDate: "2024-01-01", EndDate: "2024-03-31",
	},
	"ca-salary-qc": {
		Profile: ProfileDTO{
			Classification: "employee", PayType: "salary", Frequency: "biweekly",
			AnnualSalary: 78000, Jurisdiction: "QC", MaritalStatus: "married",
			HireDate: "2024-01-01",
		},
		StartDate: "2024-01-01", EndDate: "2024-03-31",
	},
	"ca-cpp-cap": {
		Profile: ProfileDTO{
			Classification: "employee", PayType: "salary", Frequency: "biweekly",
			AnnualSalary: 160000, Jurisdiction: "ON", MaritalStatus: "single",
			HireDate: "2024-01-01",
		},
		StartDate: "2024-01-01", EndDate: "2024-12-31",
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, scenarios)
}

// ComputeScenario runs a canned scenario by ID.
func (h *Handler) ComputeScenario(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("malformed JSON body"))
		return
	}

	req, ok := scenarioRequests[body.ID]
	if !ok {
		h.writeError(w, http.StatusNotFound, errors.New("unknown scenario: "+body.ID))
		return
	}

	spec, err := req.toRunSpec()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	entries, err := h.Engine.Run(spec)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ComputeResponse{
		Jurisdiction: spec.Profile.Jurisdiction,
		TableVersion: h.Table.Version,
		Entries:      entries,
	})
}
