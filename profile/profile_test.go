// ABOUTME: Tests for profile and progress persistence
// ABOUTME: Covers round-trips, missing files, and corrupt content

package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return &Store{Dir: filepath.Join(t.TempDir(), "mentordeck")}
}

func TestLoadProfileMissingReturnsZero(t *testing.T) {
	s := newTestStore(t)

	p, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if p.Name != "" || p.Role != "" {
		t.Errorf("profile = %+v, want zero value", p)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := Profile{
		Name:      "Sam",
		Role:      "mentee",
		Goals:     "Learn backend development",
		Interests: []string{"go", "databases"},
	}

	if err := s.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got.Name != want.Name || got.Role != want.Role || got.Goals != want.Goals {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.Interests) != 2 || got.Interests[1] != "databases" {
		t.Errorf("interests = %v, want %v", got.Interests, want.Interests)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := Progress{
		CardsSeen:   42,
		Matches:     3,
		LastSession: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
	}

	if err := s.SaveProgress(want); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}

	got, err := s.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress failed: %v", err)
	}
	if got.CardsSeen != 42 || got.Matches != 3 {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.LastSession.Equal(want.LastSession) {
		t.Errorf("LastSession = %v, want %v", got.LastSession, want.LastSession)
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveProgress(Progress{CardsSeen: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveProgress(Progress{CardsSeen: 2}); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadProgress()
	if err != nil {
		t.Fatal(err)
	}
	if got.CardsSeen != 2 {
		t.Errorf("CardsSeen = %d, want 2", got.CardsSeen)
	}

	// No temp file left behind.
	if _, err := os.Stat(filepath.Join(s.Dir, progressFile+".tmp")); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}

func TestLoadCorruptFileErrors(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, profileFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.LoadProfile(); err == nil {
		t.Error("expected an error for corrupt json")
	}
}
