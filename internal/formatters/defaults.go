package formatters

import (
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/formatters/listening"
)

// RegisterDefaults registers all built-in formatters with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(listening.Name, buildListening)
}

// buildListening creates the listening formatter. It takes no config.
func buildListening(_ map[string]any) (driven.TextFormatter, error) {
	return listening.New(), nil
}
