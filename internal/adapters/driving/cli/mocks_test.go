package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

type mockReformService struct {
	report *domain.ReformReport
	err    error
	opts   domain.ReformOptions
}

func (m *mockReformService) Reform(_ context.Context, opts domain.ReformOptions) (*domain.ReformReport, error) {
	m.opts = opts
	return m.report, m.err
}

type mockFormatService struct{}

func (m *mockFormatService) Format(text string) string { return strings.ToUpper(strings.TrimSpace(text)) }
func (m *mockFormatService) Formatters() []string      { return []string{"upper"} }

type mockNoteService struct {
	version int
	err     error
}

func (m *mockNoteService) Ping(_ context.Context) (int, error) { return m.version, m.err }

type mockHistoryService struct {
	runs     []domain.Run
	changes  []domain.Change
	restored int
	err      error
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
	return m.restored, m.err
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears flag values that persist between Execute calls.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = reformCmd.Flags().Set("query", "")
		_ = reformCmd.Flags().Set("field", "")
		_ = reformCmd.Flags().Set("dry-run", "false")
	})
}
