package driving

import (
	"context"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// ReformService formats a field across a set of notes and writes it back.
type ReformService interface {
	// Reform fetches the notes, formats the field and submits the batch.
	// Notes lacking the field are skipped and reported, not treated as errors.
	Reform(ctx context.Context, opts domain.ReformOptions) (*domain.ReformReport, error)
}

// FormatService formats arbitrary text with the configured formatters.
type FormatService interface {
	// Format returns the formatted text.
	Format(text string) string

	// Formatters returns the names of the formatters applied, in order.
	Formatters() []string
}

// NoteService exposes read-only access to the note service.
type NoteService interface {
	// Ping returns the note service API version.
	Ping(ctx context.Context) (int, error)
}
