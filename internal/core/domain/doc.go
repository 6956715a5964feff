// Package domain defines the core business entities for ankiform.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Note: A flashcard record with named fields
//   - FieldValue: The value of one field on a note
//   - Run: One recorded reform invocation
//   - Change: A field value before and after formatting
//   - Settings: Effective configuration for a run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
