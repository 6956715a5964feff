package driven

import (
	"context"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// HistoryStore persists reform runs and the field changes they made.
type HistoryStore interface {
	// SaveRun stores or updates a run.
	SaveRun(ctx context.Context, run domain.Run) error

	// SaveChanges stores the changes of a run.
	SaveChanges(ctx context.Context, changes []domain.Change) error

	// GetRun retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, id string) (*domain.Run, error)

	// ListRuns returns all runs, newest first.
	ListRuns(ctx context.Context) ([]domain.Run, error)

	// GetChanges returns the changes of a run ordered by note ID.
	GetChanges(ctx context.Context, runID string) ([]domain.Change, error)
}
