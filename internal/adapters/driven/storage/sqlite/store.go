package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/ankiform/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// DBName is the database file name inside the data directory.
const DBName = "history.db"

// Store is a SQLite-backed run history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ankiform/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ankiform", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBName)

	// WAL mode so the CLI and the MCP server can share the file.
	// foreign_keys is a per-connection pragma, so it goes in the DSN too.
	db, err := sql.Open("sqlite", dbPath+
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_history.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRun stores or updates a run.
func (s *Store) SaveRun(ctx context.Context, run domain.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, query, field, dry_run, note_count, changed_count, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			query = excluded.query,
			field = excluded.field,
			dry_run = excluded.dry_run,
			note_count = excluded.note_count,
			changed_count = excluded.changed_count
	`, run.ID, run.Query, run.Field, run.DryRun, run.NoteCount, run.ChangedCount,
		run.StartedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// SaveChanges stores the changes of a run in one transaction.
func (s *Store) SaveChanges(ctx context.Context, changes []domain.Change) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO changes (run_id, note_id, field, before, after)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, note_id, field) DO UPDATE SET
			before = excluded.before,
			after = excluded.after
	`)
	if err != nil {
		return fmt.Errorf("preparing change insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range changes {
		if _, err := stmt.ExecContext(ctx, c.RunID, c.NoteID, c.Field, c.Before, c.After); err != nil {
			return fmt.Errorf("saving change for note %d: %w", c.NoteID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing changes: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, query, field, dry_run, note_count, changed_count, started_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]domain.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, field, dry_run, note_count, changed_count, started_at
		FROM runs ORDER BY started_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// GetChanges returns the changes of a run ordered by note ID.
func (s *Store) GetChanges(ctx context.Context, runID string) ([]domain.Change, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, note_id, field, before, after
		FROM changes WHERE run_id = ?
		ORDER BY note_id, field
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying changes: %w", err)
	}
	defer rows.Close()

	var changes []domain.Change //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Change
		if err := rows.Scan(&c.RunID, &c.NoteID, &c.Field, &c.Before, &c.After); err != nil {
			return nil, fmt.Errorf("scanning change: %w", err)
		}
		changes = append(changes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating changes: %w", err)
	}
	return changes, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var startedAt sql.NullTime
	if err := row.Scan(&run.ID, &run.Query, &run.Field, &run.DryRun,
		&run.NoteCount, &run.ChangedCount, &startedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	if startedAt.Valid {
		run.StartedAt = startedAt.Time
	}
	return &run, nil
}
