package formatters

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
)

// BuilderFunc creates a TextFormatter from generic config.
// Config is a map of formatter-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.TextFormatter, error)

// Registry maps formatter names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a formatter builder to the registry.
// Name should be unique and match the formatter's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a formatter by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (driven.TextFormatter, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: formatter %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg)
}

// BuildChain builds each named formatter and chains them in order.
func (r *Registry) BuildChain(names []string, cfg map[string]map[string]any) (*Chain, error) {
	chain := NewChain()
	for _, name := range names {
		f, err := r.Build(name, cfg[name])
		if err != nil {
			return nil, err
		}
		chain.Add(f)
	}
	return chain, nil
}

// Has returns true if a formatter with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered formatter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
