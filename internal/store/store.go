package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle for its process lifetime. Construct it
// once, inject it into callers, close it at shutdown.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Results returns a ResultRepo backed by this store.
func (s *Store) Results() ResultRepo {
	return &resultRepo{db: s.db}
}

// applyPragmas configures SQLite for single-writer service use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id          TEXT    NOT NULL UNIQUE,
	created_at          TEXT    NOT NULL,
	numeracy_score      INTEGER NOT NULL,
	reading_score       INTEGER NOT NULL,
	computer_score      INTEGER NOT NULL,
	logic_score         INTEGER NOT NULL,
	communication_score INTEGER NOT NULL,
	mindset_score       INTEGER NOT NULL,
	readiness_level     INTEGER NOT NULL,
	readiness_title     TEXT    NOT NULL,
	client_hash         TEXT    NOT NULL DEFAULT '',
	consent             INTEGER NOT NULL DEFAULT 0,
	synthetic           INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at);
`

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. READIQ_DB environment variable
// 2. $XDG_DATA_HOME/readiq/readiq.db
// 3. ~/.local/share/readiq/readiq.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("READIQ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "readiq", "readiq.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
