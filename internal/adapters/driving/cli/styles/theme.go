// Package styles provides colour themes and styling for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used by the CLI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success marks text that was added.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error marks text that was removed and failures.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Before style for the original field value.
	Before lipgloss.Style

	// After style for the formatted field value.
	After lipgloss.Style

	// Warning style for skipped notes.
	Warning lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Before: lipgloss.NewStyle().
			Foreground(theme.Error),

		After: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles returns styles that render text unchanged, for output that
// is not a terminal.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		theme:   DefaultTheme(),
		Title:   plain,
		Muted:   plain,
		Before:  plain,
		After:   plain,
		Warning: plain,
		Error:   plain,
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
