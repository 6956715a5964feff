package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ankiform/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ankiform/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
	assert.Equal(t, ":memory:", service.Path())
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
	assert.Equal(t, service.GetDefaults(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyAnkiHost:              "10.0.0.2",
		KeyAnkiPort:              int64(8766),
		KeyAnkiTimeoutSeconds:    2.5,
		KeyAnkiAPIKey:            "k",
		KeyAnkiRequestsPerSecond: int64(5),
		KeyReformQuery:           "deck:French",
		KeyReformField:           "Back",
		KeyReformFormatters:      []any{"listening"},
		KeyHistoryEnabled:        false,
		KeyHistoryDataDir:        "/tmp/hist",
	})
	service := NewSettingsService(store)

	s, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", s.Anki.Host)
	assert.Equal(t, 8766, s.Anki.Port)
	assert.Equal(t, 2500*time.Millisecond, s.Anki.Timeout)
	assert.Equal(t, "k", s.Anki.APIKey)
	assert.InDelta(t, 5.0, s.Anki.RequestsPerSecond, 1e-9)
	assert.Equal(t, "deck:French", s.Reform.Query)
	assert.Equal(t, "Back", s.Reform.Field)
	assert.Equal(t, []string{"listening"}, s.Reform.Formatters)
	assert.False(t, s.History.Enabled)
	assert.Equal(t, "/tmp/hist", s.History.DataDir)
}

func TestSettingsService_Get_IntegerTimeout(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeyAnkiTimeoutSeconds: int64(3)})

	s, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, s.Anki.Timeout)
}

func TestSettingsService_Get_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"port out of range", KeyAnkiPort, int64(70000)},
		{"zero timeout", KeyAnkiTimeoutSeconds, 0.0},
		{"empty field", KeyReformField, ""},
		{"no formatters", KeyReformFormatters, []string{}},
		{"negative rate", KeyAnkiRequestsPerSecond, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore(map[string]any{tt.key: tt.value})

			_, err := NewSettingsService(store).Get()

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), ":memory:")
		})
	}
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key    string
		raw    string
		stored any
	}{
		{KeyAnkiPort, "8766", int64(8766)},
		{KeyAnkiTimeoutSeconds, "2.5", 2.5},
		{KeyAnkiRequestsPerSecond, "10", 10.0},
		{KeyHistoryEnabled, "false", false},
		{KeyReformFormatters, "listening, listening ,", []string{"listening", "listening"}},
		{KeyReformQuery, "deck:French tag:x", "deck:French tag:x"},
		{KeyAnkiHost, "anki.local", "anki.local"},
		{KeyAnkiAPIKey, "", ""},
		{KeyHistoryDataDir, "/data", "/data"},
		{KeyReformField, "Back", "Back"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.Set(tt.key, tt.raw))

			got, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.stored, got)

			_, err := service.Get()
			assert.NoError(t, err)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"port not a number", KeyAnkiPort, "http"},
		{"port out of range", KeyAnkiPort, "0"},
		{"timeout not a number", KeyAnkiTimeoutSeconds, "soon"},
		{"negative timeout", KeyAnkiTimeoutSeconds, "-1"},
		{"bool", KeyHistoryEnabled, "maybe"},
		{"empty query", KeyReformQuery, ""},
		{"empty formatter list", KeyReformFormatters, " , "},
		{"unknown key", "unknown.key", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.raw)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, stored := store.Get(tt.key)
			assert.False(t, stored, "rejected value must not be stored")
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 10)
	for _, key := range keys {
		_, err := parseValue(key, "1")
		assert.NoError(t, err, key)
	}
}
