package driven

// TextFormatter rewrites the text of a note field.
// Implementations must be pure and accept any input.
type TextFormatter interface {
	// Name returns the formatter name for logging and configuration.
	Name() string

	// Format returns the rewritten text.
	Format(text string) string
}
