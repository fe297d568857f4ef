/*
Package sqlite provides a SQLite-backed RunStore.

PURPOSE:
  Persists computed payroll runs for later retrieval by rendering/export
  collaborators. The ledger payload is stored as a JSON document: entries
  are immutable once computed, so there is nothing to query inside them -
  the row exists to be fetched whole.

WRITE-ONCE ENFORCEMENT:
  - INSERT only; a duplicate run ID fails on the primary key
  - No UPDATE or DELETE statements exist in this package

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so concurrent readers
  don't block the single writer.

USAGE:
  st, err := sqlite.New("./data/payroll.db")
  if err != nil { log.Fatal(err) }
  defer st.Close()

SEE ALSO:
  - store/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store"
)

// Store implements store.RunStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite run store. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Computed payroll runs (write-once)
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		jurisdiction TEXT NOT NULL,
		table_version INTEGER NOT NULL,
		period_count INTEGER NOT NULL,
		ytd_gross TEXT NOT NULL,
		ytd_net TEXT NOT NULL,
		profile_json TEXT NOT NULL,
		entries_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_jurisdiction ON runs(jurisdiction);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Save(ctx context.Context, run store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profileJSON, err := json.Marshal(run.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	entriesJSON, err := json.Marshal(run.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	summary := store.Summarize(run)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, jurisdiction, table_version,
			period_count, ytd_gross, ytd_net, profile_json, entries_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339),
		run.Jurisdiction,
		run.TableVersion,
		summary.PeriodCount,
		summary.Gross.String(),
		summary.Net.String(),
		string(profileJSON),
		string(entriesJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, jurisdiction, table_version, profile_json, entries_json
		FROM runs WHERE id = ?`, id)

	var run store.Run
	var createdAt, profileJSON, entriesJSON string
	err := row.Scan(&run.ID, &createdAt, &run.Jurisdiction, &run.TableVersion, &profileJSON, &entriesJSON)
	if err == sql.ErrNoRows {
		return store.Run{}, store.ErrRunNotFound
	}
	if err != nil {
		return store.Run{}, fmt.Errorf("scan run: %w", err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(profileJSON), &run.Profile); err != nil {
		return store.Run{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := json.Unmarshal([]byte(entriesJSON), &run.Entries); err != nil {
		return store.Run{}, fmt.Errorf("unmarshal entries: %w", err)
	}
	return run, nil
}

func (s *Store) List(ctx context.Context) ([]store.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, jurisdiction, table_version, period_count, ytd_gross, ytd_net
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []store.Summary
	for rows.Next() {
		var sum store.Summary
		var createdAt, gross, net string
		if err := rows.Scan(&sum.ID, &createdAt, &sum.Jurisdiction, &sum.TableVersion, &sum.PeriodCount, &gross, &net); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		sum.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		sum.Gross = payroll.MustParseMoney(gross)
		sum.Net = payroll.MustParseMoney(net)
		out = append(out, sum)
	}
	return out, rows.Err()
}

var _ store.RunStore = (*Store)(nil)
