// ABOUTME: Matching screen configuration and command-line options
// ABOUTME: Defines input parameters for running the screen

package tui

import "mentordeck/config"

// Options contains configuration for running the matching screen
type Options struct {
	DryRun    bool   // If true, don't persist matches or progress
	WatchPath string // Deck source watched for on-disk changes (empty disables)
}

// Dependencies holds all external dependencies for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	Catalog  CatalogProvider
	Matches  MatchRecorder
	Profiles ProfileStore
	Logger   Logger
	Config   config.Config
}
