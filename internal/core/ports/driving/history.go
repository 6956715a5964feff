package driving

import (
	"context"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// HistoryService lists recorded runs and reverts them.
type HistoryService interface {
	// ListRuns returns recorded runs, newest first.
	ListRuns(ctx context.Context) ([]domain.Run, error)

	// Show returns a run and its changes.
	Show(ctx context.Context, runID string) (*domain.Run, []domain.Change, error)

	// Restore writes the recorded "before" values back to the notes of a run.
	// Returns the number of notes updated.
	Restore(ctx context.Context, runID string) (int, error)
}
