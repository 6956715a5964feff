package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.NoteClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8765"
	DefaultTimeout = domain.DefaultTimeout
	DefaultVersion = domain.DefaultAPIVersion
)

// AnkiConnect action names.
const (
	ActionFindNotes        = "findNotes"
	ActionNotesInfo        = "notesInfo"
	ActionUpdateNoteFields = "updateNoteFields"
	ActionVersion          = "version"
)

// Config holds configuration for the AnkiConnect client.
type Config struct {
	// BaseURL is the AnkiConnect endpoint (default: http://localhost:8765).
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration

	// APIKey is sent with every request when set.
	APIKey string

	// RequestsPerSecond throttles requests. Zero means no limit.
	RequestsPerSecond float64

	// Version is the API version sent with every request (default: 6).
	Version int
}

// Client is an AnkiConnect API client.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	version int
	limiter *rate.Limiter
}

// request is the AnkiConnect request envelope.
type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Key     string `json:"key,omitempty"`
	Params  any    `json:"params"`
}

// response is the AnkiConnect response envelope.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// updateNote is the note member of updateNoteFields params.
type updateNote struct {
	ID     int64             `json:"id"`
	Fields map[string]string `json:"fields"`
}

// New creates a new AnkiConnect client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		version: cfg.Version,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// NewFromSettings creates a client from the effective settings.
func NewFromSettings(s domain.AnkiSettings) *Client {
	return New(Config{
		BaseURL:           s.URL(),
		Timeout:           s.Timeout,
		APIKey:            s.APIKey,
		RequestsPerSecond: s.RequestsPerSecond,
	})
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetNotes finds the notes matching query and returns their details.
func (c *Client) GetNotes(ctx context.Context, query string) ([]domain.Note, error) {
	var ids []int64
	if err := c.post(ctx, ActionFindNotes, map[string]any{"query": query}, &ids); err != nil {
		return nil, err
	}
	logger.Debug("findNotes %q returned %d notes", query, len(ids))

	return c.NotesInfo(ctx, ids)
}

// NotesInfo returns the details of the given notes.
// Unknown IDs come back as notes with a zero NoteID.
func (c *Client) NotesInfo(ctx context.Context, ids []int64) ([]domain.Note, error) {
	if ids == nil {
		ids = []int64{}
	}

	var notes []domain.Note
	if err := c.post(ctx, ActionNotesInfo, map[string]any{"notes": ids}, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNotes writes each note's fields back, one request per note.
// It stops at the first failure; notes before it stay updated.
func (c *Client) UpdateNotes(ctx context.Context, notes []domain.Note) error {
	for i := range notes {
		note := &notes[i]
		if note.NoteID == 0 {
			return fmt.Errorf("ankiconnect: note at index %d: missing noteId: %w", i, domain.ErrApplication)
		}
		if note.Fields == nil {
			return fmt.Errorf("ankiconnect: note %d: missing fields: %w", note.NoteID, domain.ErrApplication)
		}

		params := map[string]any{
			"note": updateNote{ID: note.NoteID, Fields: note.FlatFields()},
		}
		if err := c.post(ctx, ActionUpdateNoteFields, params, nil); err != nil {
			return fmt.Errorf("update note %d: %w", note.NoteID, err)
		}
		logger.Print("Updated note: %d", note.NoteID)
	}
	return nil
}

// Version returns the AnkiConnect API version.
func (c *Client) Version(ctx context.Context) (int, error) {
	var v int
	if err := c.post(ctx, ActionVersion, nil, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// post sends one action and decodes its result into out (if non-nil).
func (c *Client) post(ctx context.Context, action string, params, out any) error {
	if params == nil {
		params = map[string]any{}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return classify(action, err)
	}

	jsonBody, err := json.Marshal(request{
		Action:  action,
		Version: c.version,
		Key:     c.apiKey,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("ankiconnect: %s: marshal request: %w: %w", action, domain.ErrApplication, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("ankiconnect: %s: create request: %w: %w", action, domain.ErrApplication, err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("POST %s action=%s", c.baseURL, action)

	resp, err := c.client.Do(req)
	if err != nil {
		return classify(action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify(action, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ankiconnect: %s: status %d: %s: %w",
			action, resp.StatusCode, strings.TrimSpace(string(body)), domain.ErrApplication)
	}

	var envelope response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("ankiconnect: %s: decode response: %w: %w", action, domain.ErrProtocol, err)
	}

	if envelope.Error != nil && *envelope.Error != "" {
		return &APIError{Action: action, Message: *envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("ankiconnect: %s: decode result: %w: %w", action, domain.ErrProtocol, err)
	}
	return nil
}
