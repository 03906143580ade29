// ABOUTME: Adapter implementations and dependency wiring for the TUI
// ABOUTME: Bridges main package services to the tui interface contracts

package main

import (
	"log"

	"mentordeck/catalog"
	"mentordeck/config"
	"mentordeck/match"
	"mentordeck/profile"
	"mentordeck/tui"
)

// loggerAdapter adapts debugf to the tui.Logger interface
type loggerAdapter struct{}

func (l *loggerAdapter) Debugf(format string, args ...interface{}) {
	debugf(format, args...)
}

// buildDependencies wires the catalog, match log, and profile store for a
// matching session. The returned cleanup closes the database.
func buildDependencies(cfg config.Config, deckPath, dbOverride string) (tui.Dependencies, func(), error) {
	db, err := openDatabase(cfg, dbOverride)
	if err != nil {
		return tui.Dependencies{}, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}

	// Matches and progress always live in the database, even when the
	// deck itself is browsed straight from a file.
	var provider tui.CatalogProvider = catalog.NewStore(db)
	if deckPath != "" {
		provider = &catalog.File{Path: deckPath}
	}

	profiles, err := profile.DefaultStore()
	if err != nil {
		cleanup()

		return tui.Dependencies{}, nil, err
	}

	return tui.Dependencies{
		Catalog:  provider,
		Matches:  match.NewLog(db),
		Profiles: profiles,
		Logger:   &loggerAdapter{},
		Config:   cfg,
	}, cleanup, nil
}
