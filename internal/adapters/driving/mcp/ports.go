package mcp

import (
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Format formats arbitrary text.
	Format driving.FormatService

	// Reform runs the note pipeline. The reform_notes tool is only
	// registered when set.
	Reform driving.ReformService

	// History exposes recorded runs as resources. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Format == nil {
		return ErrMissingFormatService
	}
	return nil
}
