package services

import (
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
)

// Ensure FormatService implements the interface.
var _ driving.FormatService = (*FormatService)(nil)

// FormatService applies the configured formatter to arbitrary text.
type FormatService struct {
	formatter driven.TextFormatter
}

// NewFormatService creates a new format service.
func NewFormatService(formatter driven.TextFormatter) *FormatService {
	return &FormatService{formatter: formatter}
}

// Format returns the formatted text.
func (s *FormatService) Format(text string) string {
	return s.formatter.Format(text)
}

// Formatters returns the names of the formatters applied, in order.
func (s *FormatService) Formatters() []string {
	if chain, ok := s.formatter.(interface{ Names() []string }); ok {
		return chain.Names()
	}
	return []string{s.formatter.Name()}
}
