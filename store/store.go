// ABOUTME: SQLite plumbing for the local mentordeck database
// ABOUTME: Opens the database with single-user defaults and helpers

// Package store owns the local sqlite database that holds the candidate
// catalog and the match log.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the sqlite database at path. Foreign
// keys are enforced and a busy timeout guards against transient locking
// from a second process.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// sqlite serializes writers anyway; one connection avoids lock churn.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Now returns the current UTC time truncated to whole seconds, the
// resolution we persist.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// DefaultPath returns the standard database location under the user's
// data directory, falling back to the working directory when no home is
// resolvable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mentordeck.db"
	}
	return filepath.Join(home, ".local", "share", "mentordeck", "mentordeck.db")
}
