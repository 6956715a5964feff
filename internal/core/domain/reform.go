package domain

// ReformOptions controls a single reform run.
// Empty fields fall back to the configured defaults.
type ReformOptions struct {
	// Query selects the notes to reform.
	Query string

	// Field is the name of the field to format.
	Field string

	// DryRun formats and records but does not send updates.
	DryRun bool
}

// ReformReport summarises a reform run.
type ReformReport struct {
	// RunID identifies the recorded run. Empty when history is disabled.
	RunID string

	// Total is the number of notes returned by the query.
	Total int

	// Formatted is the number of notes that had the field.
	Formatted int

	// Skipped lists notes that lack the field.
	Skipped []int64

	// Updated is the number of notes submitted for update.
	Updated int

	// DryRun mirrors the option used for the run.
	DryRun bool

	// Changes lists the field values that differ after formatting.
	Changes []Change
}

// Changed returns the number of notes whose value changed.
func (r *ReformReport) Changed() int {
	return len(r.Changes)
}
