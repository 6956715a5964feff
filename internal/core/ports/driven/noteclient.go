package driven

import (
	"context"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// NoteClient talks to the note service.
// Every returned error wraps one of domain.ErrConnection, domain.ErrTimeout,
// domain.ErrProtocol or domain.ErrApplication.
type NoteClient interface {
	// GetNotes returns the full details of every note matching query.
	GetNotes(ctx context.Context, query string) ([]domain.Note, error)

	// NotesInfo returns the full details of the given notes.
	NotesInfo(ctx context.Context, ids []int64) ([]domain.Note, error)

	// UpdateNotes writes every field of each note back, in order.
	// The first failure aborts the remaining updates.
	UpdateNotes(ctx context.Context, notes []domain.Note) error

	// Version returns the API version reported by the service.
	Version(ctx context.Context) (int, error)
}
