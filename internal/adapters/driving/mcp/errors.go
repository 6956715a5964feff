// Package mcp provides an MCP (Model Context Protocol) server adapter for ankiform.
// It lets AI assistants format text and reform notes through ankiform.
package mcp

import "errors"

// ErrMissingFormatService is returned when the format service is not provided.
var ErrMissingFormatService = errors.New("mcp: format service is required")
