package kvstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"marknote/internal/ports"

	_ "modernc.org/sqlite"
)

// SQLite is a flat key-value store over a single sqlite table. It backs the
// virtual filesystem where no real note directory is available.
type SQLite struct {
	db     *sql.DB
	dbPath string
}

// Ensure SQLite implements KeyValueStore
var _ ports.KeyValueStore = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the store at dbPath. An empty path
// falls back to the default location under the XDG data directory.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" {
		dbPath = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &SQLite{db: db, dbPath: dbPath}, nil
}

// DefaultPath returns the default database location under the XDG data
// directory.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "marknote", "store.db")
}

// Get returns the value for key and whether it was present
func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores a single value
func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
	return err
}

// SetMany stores all pairs in one transaction, so related records cannot
// end up half-written.
func (s *SQLite) SetMany(pairs map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for key, value := range pairs {
		if _, err := tx.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// Delete removes a key. Missing keys are not an error.
func (s *SQLite) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Close closes the database connection
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
