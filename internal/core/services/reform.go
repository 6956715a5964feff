package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
	"github.com/custodia-labs/ankiform/internal/logger"
)

// Ensure ReformService implements the interface.
var _ driving.ReformService = (*ReformService)(nil)

// ReformService runs the fetch, format and write-back pipeline.
type ReformService struct {
	client    driven.NoteClient
	formatter driven.TextFormatter
	history   driven.HistoryStore
	defaults  domain.ReformSettings
	now       func() time.Time
}

// NewReformService creates a new reform service.
// history is optional; when nil, runs are not recorded.
func NewReformService(
	client driven.NoteClient,
	formatter driven.TextFormatter,
	history driven.HistoryStore,
	defaults domain.ReformSettings,
) *ReformService {
	if defaults.Query == "" {
		defaults.Query = domain.DefaultQuery
	}
	if defaults.Field == "" {
		defaults.Field = domain.DefaultField
	}
	return &ReformService{
		client:    client,
		formatter: formatter,
		history:   history,
		defaults:  defaults,
		now:       time.Now,
	}
}

// Reform fetches the notes matching the query, formats the field of each
// and submits the whole batch in one pass.
//
// Notes lacking the field are logged and skipped but still submitted,
// unchanged. The run is recorded before any update is sent, so if the
// update fails part way through the returned report still carries the
// RunID needed to restore.
func (s *ReformService) Reform(ctx context.Context, opts domain.ReformOptions) (*domain.ReformReport, error) {
	query := opts.Query
	if query == "" {
		query = s.defaults.Query
	}
	field := opts.Field
	if field == "" {
		field = s.defaults.Field
	}

	logger.Section("Reform")
	logger.Info("Query: %s, field: %s, formatter: %s", query, field, s.formatter.Name())

	started := s.now()
	notes, err := s.client.GetNotes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch notes: %w", err)
	}

	report := &domain.ReformReport{
		Total:  len(notes),
		DryRun: opts.DryRun,
	}
	// Unrecorded runs have no ID.
	if s.history != nil {
		report.RunID = uuid.New().String()
	}

	for i := range notes {
		note := &notes[i]
		before, ok := note.Field(field)
		if !ok {
			logger.Warn("Field '%s' not found in note %d", field, note.NoteID)
			report.Skipped = append(report.Skipped, note.NoteID)
			continue
		}

		after := s.formatter.Format(before)
		note.SetField(field, after)
		report.Formatted++

		if after != before {
			report.Changes = append(report.Changes, domain.Change{
				RunID:  report.RunID,
				NoteID: note.NoteID,
				Field:  field,
				Before: before,
				After:  after,
			})
		}
	}

	if err := s.record(ctx, report, query, field, started); err != nil {
		return nil, err
	}

	if opts.DryRun {
		logger.Info("Dry run: %d of %d notes would change", report.Changed(), report.Total)
		return report, nil
	}

	if err := s.client.UpdateNotes(ctx, notes); err != nil {
		return report, fmt.Errorf("update notes: %w", err)
	}
	report.Updated = len(notes)

	logger.Info("Updated %d notes, %d changed, %d skipped",
		report.Updated, report.Changed(), len(report.Skipped))
	return report, nil
}

// record saves the run and its changes. A nil history store records nothing.
func (s *ReformService) record(
	ctx context.Context,
	report *domain.ReformReport,
	query, field string,
	started time.Time,
) error {
	if s.history == nil {
		return nil
	}

	run := domain.Run{
		ID:           report.RunID,
		Query:        query,
		Field:        field,
		DryRun:       report.DryRun,
		NoteCount:    report.Total,
		ChangedCount: report.Changed(),
		StartedAt:    started,
	}
	if err := s.history.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if err := s.history.SaveChanges(ctx, report.Changes); err != nil {
		return fmt.Errorf("record changes: %w", err)
	}
	logger.Debug("Recorded run %s with %d changes", run.ID, len(report.Changes))
	return nil
}
