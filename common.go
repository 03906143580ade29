// ABOUTME: Shared initialization code for all modes (import and TUI)
// ABOUTME: Provides debug logging, database setup, and small shared helpers

package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"mentordeck/config"
	"mentordeck/store"
)

var debugLog *log.Logger

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// openDatabase opens the catalog database and applies pending migrations.
// An explicit override wins over the configured path, which wins over the
// per-user default location.
func openDatabase(cfg config.Config, override string) (*sql.DB, error) {
	path := override
	if path == "" {
		path = cfg.DatabasePath
	}
	if path == "" {
		path = store.DefaultPath()
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

// truncate shortens string to maxLen, adding "..." if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
