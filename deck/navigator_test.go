// ABOUTME: Tests for the deck navigator state machine
// ABOUTME: Covers advance/retreat history, exhaustion, dedup, and reset

package deck

import (
	"strings"
	"testing"
)

func testDeck(ids ...string) []Candidate {
	out := make([]Candidate, len(ids))
	for i, id := range ids {
		out[i] = Candidate{ID: id, Name: "Mentor " + strings.ToUpper(id)}
	}
	return out
}

func currentID(t *testing.T, n *Navigator) string {
	t.Helper()
	c, ok := n.Current()
	if !ok {
		return "<none>"
	}
	return c.ID
}

func TestNewMakesFirstCandidateCurrent(t *testing.T) {
	n := New(testDeck("a", "b", "c"))

	if got := currentID(t, n); got != "a" {
		t.Errorf("current = %q, want %q", got, "a")
	}
	if n.Exhausted() {
		t.Error("fresh navigator should not be exhausted")
	}
	if got := n.UpcomingLen(); got != 2 {
		t.Errorf("upcoming = %d, want 2", got)
	}
	if n.PastLen() != 0 || n.FutureLen() != 0 {
		t.Errorf("past/future = %d/%d, want 0/0", n.PastLen(), n.FutureLen())
	}
}

func TestNewWithEmptyDeckIsExhausted(t *testing.T) {
	n := New(nil)

	if !n.Exhausted() {
		t.Error("empty deck should be exhausted")
	}
	if _, ok := n.Current(); ok {
		t.Error("Current should report ok=false on an empty deck")
	}
	if n.Advance() {
		t.Error("Advance on an empty deck should not move")
	}
	if n.Retreat() {
		t.Error("Retreat on an empty deck should not move")
	}
}

func TestAdvanceWalksDeckInOrder(t *testing.T) {
	n := New(testDeck("a", "b", "c"))

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got := currentID(t, n); got != id {
			t.Fatalf("step %d: current = %q, want %q", i, got, id)
		}
		if i < len(want)-1 && !n.Advance() {
			t.Fatalf("step %d: Advance should move", i)
		}
	}

	if !n.Advance() {
		t.Error("advancing off the last card should still count as a move")
	}
	if !n.Exhausted() {
		t.Error("deck should be exhausted after the last card")
	}
	if n.Advance() {
		t.Error("Advance while exhausted should not move")
	}
	if got := n.PastLen(); got != 3 {
		t.Errorf("past = %d, want 3", got)
	}
}

func TestRetreatAtStartDoesNothing(t *testing.T) {
	n := New(testDeck("a", "b"))

	if n.Retreat() {
		t.Error("Retreat with empty past should not move")
	}
	if got := currentID(t, n); got != "a" {
		t.Errorf("current = %q, want %q", got, "a")
	}
}

func TestRetreatThenAdvanceRestoresCursor(t *testing.T) {
	n := New(testDeck("a", "b", "c"))
	n.Advance() // current: b

	wantPast, wantFuture, wantUpcoming := n.PastLen(), n.FutureLen(), n.UpcomingLen()

	if !n.Retreat() {
		t.Fatal("Retreat should move")
	}
	if got := currentID(t, n); got != "a" {
		t.Errorf("after retreat: current = %q, want %q", got, "a")
	}
	if got := n.FutureLen(); got != 1 {
		t.Errorf("after retreat: future = %d, want 1", got)
	}

	if !n.Advance() {
		t.Fatal("Advance should move")
	}
	if got := currentID(t, n); got != "b" {
		t.Errorf("after redo: current = %q, want %q", got, "b")
	}
	if n.PastLen() != wantPast || n.FutureLen() != wantFuture || n.UpcomingLen() != wantUpcoming {
		t.Errorf("after redo: past/future/upcoming = %d/%d/%d, want %d/%d/%d",
			n.PastLen(), n.FutureLen(), n.UpcomingLen(), wantPast, wantFuture, wantUpcoming)
	}
}

func TestThreeCardWalk(t *testing.T) {
	n := New(testDeck("a", "b", "c"))

	step := func(move string, wantCurrent string, wantPast, wantFuture int) {
		t.Helper()
		if got := currentID(t, n); got != wantCurrent {
			t.Errorf("after %s: current = %q, want %q", move, got, wantCurrent)
		}
		if n.PastLen() != wantPast || n.FutureLen() != wantFuture {
			t.Errorf("after %s: past/future = %d/%d, want %d/%d",
				move, n.PastLen(), n.FutureLen(), wantPast, wantFuture)
		}
	}

	n.Advance()
	step("advance", "b", 1, 0)
	n.Advance()
	step("advance", "c", 2, 0)
	n.Retreat()
	step("retreat", "b", 1, 1)
	n.Advance()
	step("redo", "c", 2, 0)
}

func TestRedoRestoresCandidateUnchanged(t *testing.T) {
	full := Candidate{
		ID:       "m1",
		Name:     "Ana Souza",
		Headline: "Backend mentor",
		Category: "backend",
		Skills:   []string{"go", "postgres"},
		Years:    10,
		Bio:      "Long bio text.",
	}
	n := New([]Candidate{full, {ID: "m2", Name: "Ben"}})

	n.Advance()
	n.Retreat()
	n.Advance()
	n.Retreat()

	got, ok := n.Current()
	if !ok {
		t.Fatal("expected a current candidate")
	}
	if got.ID != full.ID || got.Name != full.Name || got.Headline != full.Headline ||
		got.Years != full.Years || got.Bio != full.Bio || len(got.Skills) != 2 {
		t.Errorf("candidate changed across retreat/redo: got %+v", got)
	}
}

func TestRetreatFromExhaustion(t *testing.T) {
	n := New(testDeck("a"))
	n.Advance() // exhausted

	if !n.Retreat() {
		t.Fatal("Retreat from exhaustion should move")
	}
	if got := currentID(t, n); got != "a" {
		t.Errorf("current = %q, want %q", got, "a")
	}
	// There was no current card to displace, so nothing was queued for redo
	// and the next advance lands back on exhaustion.
	if got := n.FutureLen(); got != 0 {
		t.Errorf("future = %d, want 0", got)
	}
	if !n.Advance() {
		t.Error("Advance should move back into exhaustion")
	}
	if !n.Exhausted() {
		t.Error("deck should be exhausted again")
	}
}

func TestDuplicateIDsAreSkippedOnAdvance(t *testing.T) {
	n := New(testDeck("a", "b", "a", "c"))

	var visited []string
	for !n.Exhausted() {
		visited = append(visited, currentID(t, n))
		n.Advance()
	}

	want := []string{"a", "b", "c"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
	if got := n.SeenCount(); got != 3 {
		t.Errorf("seen = %d, want 3", got)
	}
}

func TestDedupSurvivesRetreat(t *testing.T) {
	n := New(testDeck("a", "a", "b"))
	n.Advance() // skips the duplicate "a", current: b
	n.Retreat() // current: a, future: [b]

	if got := currentID(t, n); got != "a" {
		t.Fatalf("current = %q, want %q", got, "a")
	}

	// Seen was not forgotten: advancing redoes b, then exhausts.
	n.Advance()
	if got := currentID(t, n); got != "b" {
		t.Errorf("current = %q, want %q", got, "b")
	}
	n.Advance()
	if !n.Exhausted() {
		t.Error("deck should be exhausted, duplicate must stay skipped")
	}
}

func TestResetRestoresFullDeck(t *testing.T) {
	cards := testDeck("a", "b", "c")
	n := New(cards)
	for !n.Exhausted() {
		n.Advance()
	}

	n.Reset(cards)

	if got := currentID(t, n); got != "a" {
		t.Errorf("current = %q, want %q", got, "a")
	}
	if got := n.SeenCount(); got != 0 {
		t.Errorf("seen = %d after reset, want 0", got)
	}
	if n.PastLen() != 0 || n.FutureLen() != 0 {
		t.Errorf("past/future = %d/%d after reset, want 0/0", n.PastLen(), n.FutureLen())
	}

	// The whole deck is visitable again.
	count := 0
	for !n.Exhausted() {
		count++
		n.Advance()
	}
	if count != 3 {
		t.Errorf("visited %d cards after reset, want 3", count)
	}
}

func TestResetReplacesCandidates(t *testing.T) {
	n := New(testDeck("a", "b"))
	n.Advance()

	n.Reset(testDeck("x", "y", "z"))

	if got := currentID(t, n); got != "x" {
		t.Errorf("current = %q, want %q", got, "x")
	}
	if got := n.Remaining(); got != 2 {
		t.Errorf("remaining = %d, want 2", got)
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		walk func(n *Navigator)
		want int
	}{
		{
			name: "fresh deck excludes current",
			ids:  []string{"a", "b", "c"},
			walk: func(n *Navigator) {},
			want: 2,
		},
		{
			name: "duplicates of current do not count",
			ids:  []string{"a", "a"},
			walk: func(n *Navigator) {},
			want: 0,
		},
		{
			name: "redo entries count once",
			ids:  []string{"a", "b", "c"},
			walk: func(n *Navigator) {
				n.Advance()
				n.Retreat()
			},
			want: 2,
		},
		{
			name: "seen duplicates ahead are excluded",
			ids:  []string{"a", "b", "a", "c"},
			walk: func(n *Navigator) {
				n.Advance()
			},
			want: 1,
		},
		{
			name: "exhausted deck has none",
			ids:  []string{"a"},
			walk: func(n *Navigator) {
				n.Advance()
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(testDeck(tt.ids...))
			tt.walk(n)
			if got := n.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCandidateString(t *testing.T) {
	c := Candidate{ID: "m1", Name: "Ana", Headline: "Backend mentor", Years: 10}
	got := c.String()
	if !strings.Contains(got, "Ana") || !strings.Contains(got, "m1") {
		t.Errorf("String() = %q, want name and id present", got)
	}
}
