package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ankiform resources.
	uriScheme = "ankiform://"
)

// registerResources registers the run history resources when a history
// service is available.
func (s *Server) registerResources() {
	if s.ports.History == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recorded reform runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run-changes",
		Description: "Field changes made by a specific run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleRunsResource lists recorded runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runs, err := s.ports.History.ListRuns(ctx)
	if errors.Is(err, domain.ErrHistoryDisabled) {
		return jsonResult(req.Params.URI, []struct{}{})
	}
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	type runInfo struct {
		ID        string `json:"id"`
		StartedAt string `json:"started_at"`
		Query     string `json:"query"`
		Field     string `json:"field"`
		Notes     int    `json:"notes"`
		Changed   int    `json:"changed"`
		DryRun    bool   `json:"dry_run"`
	}

	infos := make([]runInfo, len(runs))
	for i, r := range runs {
		infos[i] = runInfo{
			ID:        r.ID,
			StartedAt: r.StartedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Query:     r.Query,
			Field:     r.Field,
			Notes:     r.NoteCount,
			Changed:   r.ChangedCount,
			DryRun:    r.DryRun,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleRunResource returns the changes of one run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	_, changes, err := s.ports.History.Show(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrHistoryDisabled) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	out := make([]ChangeOutput, len(changes))
	for i, c := range changes {
		out[i] = ChangeOutput{NoteID: c.NoteID, Before: c.Before, After: c.After}
	}
	return jsonResult(req.Params.URI, out)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like ankiform://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
