// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with mocks

package tui

import (
	"context"

	"mentordeck/deck"
	"mentordeck/match"
	"mentordeck/profile"
)

// CatalogProvider loads the full ordered candidate deck
type CatalogProvider interface {
	LoadAll(ctx context.Context) ([]deck.Candidate, error)
}

// MatchRecorder persists committed selections and serves recent history
type MatchRecorder interface {
	Record(ctx context.Context, c deck.Candidate) (match.Match, error)
	Recent(ctx context.Context, limit int) ([]match.Match, error)
}

// ProfileStore loads the viewer's own card and persists browsing progress
type ProfileStore interface {
	LoadProfile() (profile.Profile, error)
	LoadProgress() (profile.Progress, error)
	SaveProgress(profile.Progress) error
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...interface{})
}
