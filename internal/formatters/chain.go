// Package formatters provides text formatter composition.
package formatters

import (
	"strings"

	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
)

// Ensure Chain implements the interface.
var _ driven.TextFormatter = (*Chain)(nil)

// Chain runs multiple TextFormatters in order.
// Each formatter receives the output of the previous one.
type Chain struct {
	formatters []driven.TextFormatter
}

// NewChain creates a chain with the given formatters.
// Formatters are executed in the order provided.
func NewChain(formatters ...driven.TextFormatter) *Chain {
	return &Chain{
		formatters: formatters,
	}
}

// Name returns the member names joined with '+'.
func (c *Chain) Name() string {
	return strings.Join(c.Names(), "+")
}

// Names returns the member names in execution order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.formatters))
	for i, f := range c.formatters {
		names[i] = f.Name()
	}
	return names
}

// Format runs text through all formatters in order.
// An empty chain returns text unchanged.
func (c *Chain) Format(text string) string {
	for _, f := range c.formatters {
		text = f.Format(text)
	}
	return text
}

// Add appends a formatter to the chain.
func (c *Chain) Add(f driven.TextFormatter) {
	c.formatters = append(c.formatters, f)
}

// Len returns the number of formatters in the chain.
func (c *Chain) Len() int {
	return len(c.formatters)
}
