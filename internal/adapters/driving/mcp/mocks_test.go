package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

// mockFormatService is a mock implementation of driving.FormatService.
type mockFormatService struct{}

func (m *mockFormatService) Format(text string) string { return strings.TrimSpace(text) }
func (m *mockFormatService) Formatters() []string      { return []string{"trim"} }

// mockReformService is a mock implementation of driving.ReformService.
type mockReformService struct {
	report *domain.ReformReport
	err    error
	opts   domain.ReformOptions
}

func (m *mockReformService) Reform(_ context.Context, opts domain.ReformOptions) (*domain.ReformReport, error) {
	m.opts = opts
	return m.report, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs    []domain.Run
	changes []domain.Change
	err     error
}

func (m *mockHistoryService) ListRuns(_ context.Context) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Show(_ context.Context, runID string) (*domain.Run, []domain.Change, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].ID == runID {
			return &m.runs[i], m.changes, nil
		}
	}
	return nil, nil, domain.ErrNotFound
}

func (m *mockHistoryService) Restore(_ context.Context, _ string) (int, error) {
	return 0, m.err
}
