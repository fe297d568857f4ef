// Package memory provides an in-memory RunStore for testing and dev.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/warp/payroll-engine/store"
)

type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run
}

func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

func (s *Store) Save(_ context.Context, run store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; exists {
		return fmt.Errorf("run %s already exists", run.ID)
	}
	s.runs[run.ID] = run
	return nil
}

func (s *Store) Get(_ context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return store.Run{}, store.ErrRunNotFound
	}
	return run, nil
}

func (s *Store) List(_ context.Context) ([]store.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.Summary, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, store.Summarize(run))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var _ store.RunStore = (*Store)(nil)
