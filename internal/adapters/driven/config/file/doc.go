// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage (~/.ankiform/config.toml)
//
// Nested TOML tables are flattened to dotted keys such as "anki.port".
package file
