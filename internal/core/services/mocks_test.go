package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
)

// mockNoteClient implements driven.NoteClient over an in-memory note set.
type mockNoteClient struct {
	mu sync.Mutex

	notes      []domain.Note
	getErr     error
	infoErr    error
	updateErr  error
	versionErr error

	queries []string
	updated [][]domain.Note
}

var _ driven.NoteClient = (*mockNoteClient)(nil)

func (m *mockNoteClient) GetNotes(_ context.Context, query string) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if m.getErr != nil {
		return nil, m.getErr
	}
	return cloneNotes(m.notes), nil
}

func (m *mockNoteClient) NotesInfo(_ context.Context, ids []int64) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	result := make([]domain.Note, 0, len(ids))
	for _, id := range ids {
		found := domain.Note{}
		for _, n := range m.notes {
			if n.NoteID == id {
				found = cloneNotes([]domain.Note{n})[0]
			}
		}
		result = append(result, found)
	}
	return result, nil
}

func (m *mockNoteClient) UpdateNotes(_ context.Context, notes []domain.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated = append(m.updated, cloneNotes(notes))
	if m.updateErr != nil {
		return m.updateErr
	}
	for _, u := range notes {
		for i := range m.notes {
			if m.notes[i].NoteID == u.NoteID {
				m.notes[i] = cloneNotes([]domain.Note{u})[0]
			}
		}
	}
	return nil
}

func (m *mockNoteClient) Version(_ context.Context) (int, error) {
	if m.versionErr != nil {
		return 0, m.versionErr
	}
	return domain.DefaultAPIVersion, nil
}

func (m *mockNoteClient) field(id int64, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].NoteID == id {
			v, _ := m.notes[i].Field(name)
			return v
		}
	}
	return ""
}

func cloneNotes(notes []domain.Note) []domain.Note {
	out := make([]domain.Note, len(notes))
	for i, n := range notes {
		out[i] = n
		if n.Fields != nil {
			out[i].Fields = make(map[string]domain.FieldValue, len(n.Fields))
			for k, v := range n.Fields {
				out[i].Fields[k] = v
			}
		}
	}
	return out
}

func textNote(id int64, field, value string) domain.Note {
	return domain.Note{
		NoteID:    id,
		ModelName: "Basic",
		Fields: map[string]domain.FieldValue{
			field:  {Value: value, Order: 0},
			"Back": {Value: "back", Order: 1},
		},
	}
}

// upperFormatter upper-cases text.
type upperFormatter struct{}

func (upperFormatter) Name() string              { return "upper" }
func (upperFormatter) Format(text string) string { return strings.ToUpper(text) }

// suffixFormatter appends a fixed suffix.
type suffixFormatter struct{ suffix string }

func (f suffixFormatter) Name() string              { return "suffix" }
func (f suffixFormatter) Format(text string) string { return text + f.suffix }

// failingHistory returns err from every write.
type failingHistory struct {
	driven.HistoryStore
	err error
}

func (f failingHistory) SaveRun(context.Context, domain.Run) error { return f.err }
