package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
	"github.com/custodia-labs/ankiform/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads the run journal and reverts runs.
type HistoryService struct {
	client driven.NoteClient
	store  driven.HistoryStore
}

// NewHistoryService creates a new history service.
// A nil store makes every method return domain.ErrHistoryDisabled.
func NewHistoryService(client driven.NoteClient, store driven.HistoryStore) *HistoryService {
	return &HistoryService{
		client: client,
		store:  store,
	}
}

// ListRuns returns recorded runs, newest first.
func (s *HistoryService) ListRuns(ctx context.Context) ([]domain.Run, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	runs, err := s.store.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Show returns a run and its changes.
func (s *HistoryService) Show(ctx context.Context, runID string) (*domain.Run, []domain.Change, error) {
	if s.store == nil {
		return nil, nil, domain.ErrHistoryDisabled
	}
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	changes, err := s.store.GetChanges(ctx, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("get changes for run %s: %w", runID, err)
	}
	return run, changes, nil
}

// Restore puts the recorded "before" values back into the notes of a run
// and submits them in one pass, with the same fail-fast behaviour as a
// reform. Notes edited since the run are restored anyway, with a warning.
func (s *HistoryService) Restore(ctx context.Context, runID string) (int, error) {
	run, changes, err := s.Show(ctx, runID)
	if err != nil {
		return 0, err
	}
	if run.DryRun {
		return 0, fmt.Errorf("%w: run %s was a dry run", domain.ErrInvalidInput, runID)
	}
	if len(changes) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(changes))
	seen := make(map[int64]bool, len(changes))
	for _, c := range changes {
		if !seen[c.NoteID] {
			seen[c.NoteID] = true
			ids = append(ids, c.NoteID)
		}
	}

	notes, err := s.client.NotesInfo(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("fetch notes: %w", err)
	}

	byID := make(map[int64]int, len(notes))
	for i, n := range notes {
		if n.NoteID != 0 {
			byID[n.NoteID] = i
		}
	}

	for _, c := range changes {
		i, ok := byID[c.NoteID]
		if !ok {
			return 0, fmt.Errorf("%w: note %d no longer exists", domain.ErrNotFound, c.NoteID)
		}
		note := &notes[i]
		current, ok := note.Field(c.Field)
		if !ok {
			return 0, fmt.Errorf("%w: note %d has no field %q", domain.ErrNotFound, c.NoteID, c.Field)
		}
		if current != c.After {
			logger.Warn("Note %d was edited after run %s; restoring anyway", c.NoteID, runID)
		}
		note.SetField(c.Field, c.Before)
	}

	restored := make([]domain.Note, 0, len(ids))
	for _, id := range ids {
		restored = append(restored, notes[byID[id]])
	}

	if err := s.client.UpdateNotes(ctx, restored); err != nil {
		return 0, fmt.Errorf("restore run %s: %w", runID, err)
	}
	logger.Info("Restored %d notes from run %s", len(restored), runID)
	return len(restored), nil
}
