/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the computation engine via REST. Handles HTTP request/response
  and JSON mapping, then delegates to the engine; no tax or scheduling
  logic lives here.

ENDPOINTS:
  Runs:
    POST   /api/runs/compute     Compute a ledger (optionally persist)
    GET    /api/runs             List persisted runs
    GET    /api/runs/{id}        Fetch a persisted run

  Reference:
    GET    /api/jurisdictions    Supported jurisdiction codes by family

  Scenarios:
    GET    /api/scenarios        List demo scenarios
    POST   /api/scenarios/compute Compute a canned scenario

ERROR HANDLING:
  - 400: invalid input, invalid date range, unsupported jurisdiction
  - 404: run not found
  - 500: storage failures, configuration defects

SEE ALSO:
  - dto.go: Wire types and conversion
  - scenarios.go: Canned employment configurations
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers. The table is read-only
// after construction and shared by every request.
type Handler struct {
	Engine *payroll.Engine
	Table  *jurisdiction.Table
	Runs   store.RunStore
	Logger *zap.Logger
}

// NewHandler wires the engine, table, and run store together.
func NewHandler(engine *payroll.Engine, table *jurisdiction.Table, runs store.RunStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Engine: engine, Table: table, Runs: runs, Logger: logger}
}

// =============================================================================
// RUN HANDLERS
// =============================================================================

// ComputeRun computes the full ledger for one employment configuration.
func (h *Handler) ComputeRun(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("malformed JSON body"))
		return
	}

	spec, err := req.toRunSpec()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	entries, err := h.Engine.Run(spec)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	resp := ComputeResponse{
		Jurisdiction: spec.Profile.Jurisdiction,
		TableVersion: h.Table.Version,
		Entries:      entries,
	}

	if req.Save {
		run := store.Run{
			ID:           uuid.NewString(),
			CreatedAt:    time.Now().UTC(),
			Jurisdiction: spec.Profile.Jurisdiction,
			TableVersion: h.Table.Version,
			Profile:      spec.Profile,
			Entries:      entries,
		}
		if err := h.Runs.Save(r.Context(), run); err != nil {
			h.Logger.Error("saving run", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, errors.New("failed to persist run"))
			return
		}
		resp.RunID = run.ID
		h.Logger.Info("run persisted",
			zap.String("run_id", run.ID),
			zap.String("jurisdiction", run.Jurisdiction),
			zap.Int("periods", len(entries)),
		)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ListRuns returns summaries of persisted runs, newest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Runs.List(r.Context())
	if err != nil {
		h.Logger.Error("listing runs", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("failed to list runs"))
		return
	}
	h.writeJSON(w, http.StatusOK, summaries)
}

// GetRun returns one persisted run with its full ledger.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := h.Runs.Get(r.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		h.Logger.Error("fetching run", zap.String("run_id", id), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("failed to fetch run"))
		return
	}
	h.writeJSON(w, http.StatusOK, run)
}

// =============================================================================
// REFERENCE HANDLERS
// =============================================================================

// ListJurisdictions returns the supported codes grouped by family.
func (h *Handler) ListJurisdictions(w http.ResponseWriter, r *http.Request) {
	families := map[string][]string{}
	for family, codes := range h.Table.Codes() {
		families[string(family)] = codes
	}
	h.writeJSON(w, http.StatusOK, JurisdictionsResponse{
		TableVersion: h.Table.Version,
		Families:     families,
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("encoding response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// writeComputeError maps engine errors to HTTP statuses.
func (h *Handler) writeComputeError(w http.ResponseWriter, err error) {
	if payroll.IsClientError(err) {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.Logger.Error("computation failed", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, err)
}
