package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	runs    map[string]domain.Run
	changes map[string]map[changeKey]domain.Change
}

type changeKey struct {
	noteID int64
	field  string
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		runs:    make(map[string]domain.Run),
		changes: make(map[string]map[changeKey]domain.Change),
	}
}

// SaveRun stores or updates a run.
func (s *HistoryStore) SaveRun(_ context.Context, run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.runs[run.ID]; ok {
		run.StartedAt = existing.StartedAt
	}
	s.runs[run.ID] = run
	return nil
}

// SaveChanges stores the changes of a run.
// Every change must belong to a saved run; otherwise nothing is stored.
func (s *HistoryStore) SaveChanges(_ context.Context, changes []domain.Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range changes {
		if _, ok := s.runs[c.RunID]; !ok {
			return domain.ErrNotFound
		}
	}

	for _, c := range changes {
		byNote, ok := s.changes[c.RunID]
		if !ok {
			byNote = make(map[changeKey]domain.Change)
			s.changes[c.RunID] = byNote
		}
		byNote[changeKey{noteID: c.NoteID, field: c.Field}] = c
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *HistoryStore) GetRun(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// ListRuns returns all runs, newest first.
func (s *HistoryStore) ListRuns(_ context.Context) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].StartedAt.After(runs[j].StartedAt)
		}
		return runs[i].ID < runs[j].ID
	})
	return runs, nil
}

// GetChanges returns the changes of a run ordered by note ID.
func (s *HistoryStore) GetChanges(_ context.Context, runID string) ([]domain.Change, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byNote := s.changes[runID]
	changes := make([]domain.Change, 0, len(byNote))
	for _, c := range byNote {
		changes = append(changes, c)
	}
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].NoteID != changes[j].NoteID {
			return changes[i].NoteID < changes[j].NoteID
		}
		return changes[i].Field < changes[j].Field
	})
	return changes, nil
}
