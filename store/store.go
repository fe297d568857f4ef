// Package store defines persistence for computed payroll runs.
//
// A Run is the immutable result of one engine computation: the employment
// profile it was computed from, the table version it consumed, and the full
// ordered ledger. Runs are write-once - there is no update operation, by
// design. A corrected run is a new run.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is one persisted computation result.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Jurisdiction string
	TableVersion int

	Profile payroll.EmploymentProfile
	Entries []payroll.LedgerEntry
}

// Summary is the listing view of a run, without the ledger payload.
type Summary struct {
	ID           string
	CreatedAt    time.Time
	Jurisdiction string
	TableVersion int
	PeriodCount  int
	Gross        payroll.Money // final-period YTD gross
	Net          payroll.Money // final-period YTD net
}

// Summarize derives the listing view from a full run.
func Summarize(r Run) Summary {
	s := Summary{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		Jurisdiction: r.Jurisdiction,
		TableVersion: r.TableVersion,
		PeriodCount:  len(r.Entries),
		Gross:        payroll.Zero(),
		Net:          payroll.Zero(),
	}
	if len(r.Entries) > 0 {
		last := r.Entries[len(r.Entries)-1]
		s.Gross = last.YTDGross
		s.Net = last.YTDNet
	}
	return s
}

// RunStore persists computed runs.
//
// INVARIANTS:
//   - Write-once: Save never overwrites an existing ID
//   - Immutable: a stored run's entries are never modified
type RunStore interface {
	// Save persists a run. Fails if the ID already exists.
	Save(ctx context.Context, run Run) error

	// Get returns a run by ID, or ErrRunNotFound.
	Get(ctx context.Context, id string) (Run, error)

	// List returns summaries of all runs, newest first.
	List(ctx context.Context) ([]Summary, error)
}
