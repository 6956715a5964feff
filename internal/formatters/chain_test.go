package formatters

import (
	"strings"
	"testing"
)

// mockFormatter applies a fixed transformation.
type mockFormatter struct {
	name string
	fn   func(string) string
}

func (m *mockFormatter) Name() string { return m.name }

func (m *mockFormatter) Format(s string) string {
	if m.fn == nil {
		return s
	}
	return m.fn(s)
}

func TestNewChain(t *testing.T) {
	c := NewChain()
	if c == nil {
		t.Fatal("expected non-nil chain")
	}
	if c.Len() != 0 {
		t.Errorf("expected 0 formatters, got %d", c.Len())
	}
}

func TestChain_Add(t *testing.T) {
	c := NewChain()
	c.Add(&mockFormatter{name: "test"})

	if c.Len() != 1 {
		t.Errorf("expected 1 formatter, got %d", c.Len())
	}
}

func TestChain_Format_Empty(t *testing.T) {
	c := NewChain()

	if got := c.Format("<div>x</div>"); got != "<div>x</div>" {
		t.Errorf("empty chain changed input: %q", got)
	}
}

func TestChain_Format_Order(t *testing.T) {
	c := NewChain(
		&mockFormatter{name: "upper", fn: strings.ToUpper},
		&mockFormatter{name: "suffix", fn: func(s string) string { return s + "-done" }},
	)

	if got := c.Format("abc"); got != "ABC-done" {
		t.Errorf("expected %q, got %q", "ABC-done", got)
	}
}

func TestChain_Names(t *testing.T) {
	c := NewChain(&mockFormatter{name: "a"}, &mockFormatter{name: "b"})

	names := c.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names: %v", names)
	}
	if c.Name() != "a+b" {
		t.Errorf("expected name %q, got %q", "a+b", c.Name())
	}
}
