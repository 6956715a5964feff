package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService checks the note service connection.
type NoteService struct {
	client driven.NoteClient
}

// NewNoteService creates a new note service.
func NewNoteService(client driven.NoteClient) *NoteService {
	return &NoteService{client: client}
}

// Ping returns the API version reported by the note service.
func (s *NoteService) Ping(ctx context.Context) (int, error) {
	version, err := s.client.Version(ctx)
	if err != nil {
		return 0, fmt.Errorf("ping: %w", err)
	}
	return version, nil
}
