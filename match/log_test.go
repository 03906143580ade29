// ABOUTME: Tests for the match log
// ABOUTME: Covers recording, recency ordering, limits, and counting

package match

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mentordeck/deck"
	"mentordeck/store"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return NewLog(db)
}

func TestRecordAssignsIdentity(t *testing.T) {
	l := newTestLog(t)

	m, err := l.Record(context.Background(), deck.Candidate{ID: "m1", Name: "Ana Souza"})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if m.ID == "" {
		t.Error("match id should be assigned")
	}
	if m.CandidateID != "m1" || m.CandidateName != "Ana Souza" {
		t.Errorf("match = %+v, want candidate fields copied", m)
	}
	if m.MatchedAt.IsZero() {
		t.Error("matched_at should be set")
	}
}

func TestRecordSameCandidateTwice(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()
	c := deck.Candidate{ID: "m1", Name: "Ana"}

	first, err := l.Record(ctx, c)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	second, err := l.Record(ctx, c)
	if err != nil {
		t.Fatalf("repeat Record failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("each match needs its own id")
	}

	count, err := l.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}

func TestRecentOrdersAndLimits(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()

	// Record stamps rows with the wall clock, which would tie within a
	// second here, so seed rows directly with distinct times.
	for i := range 3 {
		ts := time.Date(2026, 8, 1+i, 10, 0, 0, 0, time.UTC)
		_, err := l.db.Exec(
			`INSERT INTO matches(id, candidate_id, candidate_name, matched_at) VALUES(?, ?, ?, ?)`,
			string(rune('a'+i)), "m1", "Ana", ts)
		if err != nil {
			t.Fatalf("seed row: %v", err)
		}
	}

	recent, err := l.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d matches, want 2", len(recent))
	}
	if recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("order = [%s %s], want newest first [c b]", recent[0].ID, recent[1].ID)
	}
}

func TestCountEmpty(t *testing.T) {
	l := newTestLog(t)

	count, err := l.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d on an empty log, want 0", count)
	}
}

func TestRecentEmptyAndZeroLimit(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()

	recent, err := l.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("got %d matches from an empty log, want 0", len(recent))
	}

	if _, err := l.Record(ctx, deck.Candidate{ID: "m1", Name: "Ana"}); err != nil {
		t.Fatal(err)
	}
	recent, err = l.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent with zero limit failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("zero limit returned %d matches, want 0", len(recent))
	}
}
