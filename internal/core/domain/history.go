package domain

import "time"

// Run records one reform invocation.
type Run struct {
	// ID is a UUID assigned when the run starts.
	ID string

	// Query is the note search query used.
	Query string

	// Field is the note field that was formatted.
	Field string

	// DryRun is true when no updates were sent.
	DryRun bool

	// NoteCount is the number of notes returned by the query.
	NoteCount int

	// ChangedCount is the number of notes whose field value changed.
	ChangedCount int

	// StartedAt is when the run started.
	StartedAt time.Time
}

// Change is a single field rewrite within a run.
type Change struct {
	RunID  string
	NoteID int64
	Field  string
	Before string
	After  string
}
