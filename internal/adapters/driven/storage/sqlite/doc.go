// Package sqlite stores the reform run journal in a SQLite database.
//
// The driver is modernc.org/sqlite, a CGO-free port, so the binary still
// cross-compiles.
//
// Layout: one row per run in runs, and one row per rewritten field in
// changes, keyed by (run_id, note_id, field). Deleting a run cascades to its
// changes. The schema is applied from the embedded migrations/ directory and
// tracked in schema_migrations.
//
// The database lives at ~/.ankiform/data/history.db unless history.data_dir
// says otherwise. WAL mode lets the CLI and a running MCP server share it.
package sqlite
