// Package history persists a record of executed searches in SQLite.
//
// Only the query definition and run metadata are stored, never result
// payloads; re-running a recorded search always hits the live index.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aviref/mdq/internal/sqlutil"
)

// DB is the search-history database handle.
type DB struct {
	db *sql.DB
}

// Run describes one executed search.
type Run struct {
	ID          int64
	Predicate   string // compiled native predicate
	Scopes      string // space-joined scope list, as submitted
	ResultCount int
	ExecutedAt  time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	d := &DB{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) initialize() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			predicate TEXT NOT NULL,
			scopes TEXT NOT NULL,
			result_count INTEGER NOT NULL,
			executed_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_executed_at ON runs(executed_at);
	`
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("initialize history schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Record stores one run.
func (d *DB) Record(run Run) error {
	_, err := d.db.Exec(
		`INSERT INTO runs (predicate, scopes, result_count, executed_at) VALUES (?, ?, ?, ?)`,
		run.Predicate, run.Scopes, run.ResultCount, run.ExecutedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (d *DB) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.db.Query(
		`SELECT id, predicate, scopes, result_count, executed_at
		 FROM runs ORDER BY executed_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Run, error) {
		var r Run
		var executedAt string
		if err := rows.Scan(&r.ID, &r.Predicate, &r.Scopes, &r.ResultCount, &executedAt); err != nil {
			return Run{}, err
		}
		r.ExecutedAt, _ = time.Parse(time.RFC3339, executedAt)
		return r, nil
	})
}

// Clear removes all recorded runs.
func (d *DB) Clear() error {
	if _, err := d.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
