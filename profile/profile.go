// ABOUTME: Viewer profile and browsing progress persistence
// ABOUTME: Stores JSON preference files under the user config directory

// Package profile persists the viewer's own card, shown on the profile
// face, and cumulative browsing progress across sessions. Both live as
// small JSON files so they are easy to inspect and edit by hand.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	profileFile  = "profile.json"
	progressFile = "progress.json"
)

// Profile is the viewer's own card.
type Profile struct {
	Name      string   `json:"name"`
	Role      string   `json:"role"` // "mentee" or "mentor"
	Goals     string   `json:"goals"`
	Interests []string `json:"interests"`
}

// Progress accumulates browsing totals across sessions.
type Progress struct {
	CardsSeen   int       `json:"cards_seen"`
	Matches     int       `json:"matches"`
	LastSession time.Time `json:"last_session"`
}

// Store reads and writes preference files in one directory.
type Store struct {
	Dir string
}

// DefaultStore locates the store under the user config directory
func DefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}
	return &Store{Dir: filepath.Join(dir, "mentordeck")}, nil
}

// LoadProfile returns the stored profile, or a zero profile when none
// has been saved yet
func (s *Store) LoadProfile() (Profile, error) {
	var p Profile
	if err := s.load(profileFile, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// SaveProfile writes the profile atomically
func (s *Store) SaveProfile(p Profile) error {
	return s.save(profileFile, p)
}

// LoadProgress returns stored progress, or zero progress when none exists
func (s *Store) LoadProgress() (Progress, error) {
	var p Progress
	if err := s.load(progressFile, &p); err != nil {
		return Progress{}, err
	}
	return p, nil
}

// SaveProgress writes progress atomically
func (s *Store) SaveProgress(p Progress) error {
	return s.save(progressFile, p)
}

// load decodes one preference file into out. A missing file is not an
// error; out keeps its zero value.
func (s *Store) load(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// save encodes v and renames a temp file into place so readers never see
// a half-written file.
func (s *Store) save(name string, v interface{}) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.Dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
