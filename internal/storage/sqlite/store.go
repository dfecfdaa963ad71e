package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// DefaultPath is the database file used when no path is configured.
	DefaultPath = "papers.db"

	// PapersTable is the only table managed by the store.
	PapersTable = "papers"

	busyTimeoutMillis = 5000
)

// Store wraps a SQLite DB connection.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps PRAGMA settings and transactions on one handle.
	db.SetMaxOpenConns(1)
	if err := ensureBusyTimeout(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

func ensureBusyTimeout(db *sql.DB) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	stmt := fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeoutMillis)
	for i := 0; i < maxAttempts; i++ {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				time.Sleep(delay)
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("database is locked after retries")
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DropTables removes the papers table.
func (s *Store) DropTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS papers;`)
	return err
}

// ClearTables deletes every paper row, keeping the schema, and reports how
// many rows were removed.
func (s *Store) ClearTables(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM papers;`)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// HasTable reports whether the papers table exists.
func (s *Store) HasTable(ctx context.Context) (bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, PapersTable,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Columns lists the papers table's column names in declaration order.
func (s *Store) Columns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM pragma_table_info('papers') ORDER BY cid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

const papersSchemaSQL = `
CREATE TABLE IF NOT EXISTS papers (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	authors TEXT NOT NULL,
	abstract TEXT NOT NULL,
	summary TEXT NOT NULL,
	keyPoints TEXT NOT NULL,
	impact TEXT NOT NULL,
	links TEXT NOT NULL,
	date TEXT NOT NULL,
	upvotes INTEGER NOT NULL,
	tags TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// SchemaColumns is the papers column set in declaration order.
var SchemaColumns = []string{
	"id", "title", "authors", "abstract", "summary", "keyPoints",
	"impact", "links", "date", "upvotes", "tags", "created_at",
}
