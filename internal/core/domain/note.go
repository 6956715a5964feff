package domain

// FieldValue is the value of a single note field.
type FieldValue struct {
	// Value is the field content, usually HTML.
	Value string `json:"value"`

	// Order is the field's position in the note type. Ignored by ankiform.
	Order int `json:"order"`
}

// Note is a flashcard record as returned by the note service.
// Notes are transient: fetched, mutated in place and discarded after update.
type Note struct {
	// NoteID identifies the note. Zero means the identifier was missing.
	NoteID int64 `json:"noteId"`

	// ModelName is the note type name.
	ModelName string `json:"modelName,omitempty"`

	// Tags are the note's tags.
	Tags []string `json:"tags,omitempty"`

	// Fields maps field name to value.
	Fields map[string]FieldValue `json:"fields"`

	// Cards lists the card IDs generated from this note.
	Cards []int64 `json:"cards,omitempty"`

	// Mod is the last modification time in seconds since the epoch.
	Mod int64 `json:"mod,omitempty"`
}

// Field returns the value of the named field and whether it exists.
func (n *Note) Field(name string) (string, bool) {
	if n.Fields == nil {
		return "", false
	}
	f, ok := n.Fields[name]
	return f.Value, ok
}

// SetField overwrites the value of an existing field, keeping its metadata.
// Returns false if the field does not exist.
func (n *Note) SetField(name, value string) bool {
	f, ok := n.Fields[name]
	if !ok {
		return false
	}
	f.Value = value
	n.Fields[name] = f
	return true
}

// FlatFields returns a mapping of field name to current string value,
// the shape expected by field updates.
func (n *Note) FlatFields() map[string]string {
	flat := make(map[string]string, len(n.Fields))
	for name, f := range n.Fields {
		flat[name] = f.Value
	}
	return flat
}
