package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// FormatInput is the input schema for the format_text tool.
type FormatInput struct {
	Text string `json:"text" jsonschema:"the card text to format, may contain HTML line breaks and sound tags"`
}

// FormatOutput is the output schema for the format_text tool.
type FormatOutput struct {
	Formatted  string   `json:"formatted"`
	Formatters []string `json:"formatters"`
}

// ReformInput is the input schema for the reform_notes tool.
type ReformInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Anki search query selecting the notes (default from settings)"`
	Field  string `json:"field,omitempty" jsonschema:"name of the field to format (default from settings)"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"report the changes without updating any note"`
}

// ReformOutput is the output schema for the reform_notes tool.
type ReformOutput struct {
	RunID     string         `json:"run_id,omitempty"`
	Total     int            `json:"total"`
	Formatted int            `json:"formatted"`
	Changed   int            `json:"changed"`
	Skipped   []int64        `json:"skipped,omitempty"`
	Updated   int            `json:"updated"`
	DryRun    bool           `json:"dry_run"`
	Changes   []ChangeOutput `json:"changes,omitempty"`
}

// ChangeOutput is a single field rewrite.
type ChangeOutput struct {
	NoteID int64  `json:"note_id"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_text",
		Description: "Clean up flashcard text: strip line-break markup and add spaces after sentence punctuation",
	}, s.handleFormat)

	if s.ports.Reform != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "reform_notes",
			Description: "Format one field of every Anki note matching a query and write the notes back",
		}, s.handleReform)
	}
}

// handleFormat handles the format_text tool invocation.
func (s *Server) handleFormat(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FormatInput,
) (*mcp.CallToolResult, FormatOutput, error) {
	return nil, FormatOutput{
		Formatted:  s.ports.Format.Format(input.Text),
		Formatters: s.ports.Format.Formatters(),
	}, nil
}

// handleReform handles the reform_notes tool invocation.
func (s *Server) handleReform(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReformInput,
) (*mcp.CallToolResult, ReformOutput, error) {
	report, err := s.ports.Reform.Reform(ctx, domain.ReformOptions{
		Query:  input.Query,
		Field:  input.Field,
		DryRun: input.DryRun,
	})
	if err != nil {
		return nil, ReformOutput{}, err
	}

	output := ReformOutput{
		RunID:     report.RunID,
		Total:     report.Total,
		Formatted: report.Formatted,
		Changed:   report.Changed(),
		Skipped:   report.Skipped,
		Updated:   report.Updated,
		DryRun:    report.DryRun,
		Changes:   make([]ChangeOutput, len(report.Changes)),
	}
	for i, c := range report.Changes {
		output.Changes[i] = ChangeOutput{
			NoteID: c.NoteID,
			Before: c.Before,
			After:  c.After,
		}
	}

	return nil, output, nil
}
