package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNote() Note {
	return Note{
		NoteID: 1502098034045,
		Fields: map[string]FieldValue{
			"Text":  {Value: "<div>Hello</div>", Order: 0},
			"Extra": {Value: "notes", Order: 1},
		},
	}
}

func TestNote_Field(t *testing.T) {
	n := sampleNote()

	v, ok := n.Field("Text")
	assert.True(t, ok)
	assert.Equal(t, "<div>Hello</div>", v)

	_, ok = n.Field("Missing")
	assert.False(t, ok)

	var empty Note
	_, ok = empty.Field("Text")
	assert.False(t, ok)
}

func TestNote_SetField(t *testing.T) {
	n := sampleNote()

	assert.True(t, n.SetField("Extra", "changed"))
	assert.Equal(t, "changed", n.Fields["Extra"].Value)
	assert.Equal(t, 1, n.Fields["Extra"].Order)

	assert.False(t, n.SetField("Missing", "x"))
	assert.NotContains(t, n.Fields, "Missing")
}

func TestNote_FlatFields(t *testing.T) {
	n := sampleNote()

	assert.Equal(t, map[string]string{
		"Text":  "<div>Hello</div>",
		"Extra": "notes",
	}, n.FlatFields())
}

func TestNote_DecodeNotesInfo(t *testing.T) {
	payload := `{
		"noteId": 1502298033753,
		"modelName": "Basic",
		"tags": ["tag", "another_tag"],
		"fields": {
			"Front": {"value": "front content", "order": 0},
			"Back": {"value": "back content", "order": 1}
		},
		"cards": [1498938915662],
		"mod": 1718377864
	}`

	var n Note
	require.NoError(t, json.Unmarshal([]byte(payload), &n))

	assert.Equal(t, int64(1502298033753), n.NoteID)
	assert.Equal(t, "Basic", n.ModelName)
	assert.Equal(t, []string{"tag", "another_tag"}, n.Tags)
	assert.Equal(t, "back content", n.Fields["Back"].Value)
	assert.Equal(t, []int64{1498938915662}, n.Cards)
}

func TestNote_DecodeMissingID(t *testing.T) {
	var n Note
	require.NoError(t, json.Unmarshal([]byte(`{"fields": {}}`), &n))

	assert.Zero(t, n.NoteID)
}

func TestReformReport_Changed(t *testing.T) {
	r := ReformReport{Changes: []Change{{NoteID: 1}, {NoteID: 2}}}
	assert.Equal(t, 2, r.Changed())

	assert.Equal(t, 0, (&ReformReport{}).Changed())
}
