// ABOUTME: Deck navigator state machine with bidirectional history
// ABOUTME: Tracks upcoming/past/future candidates and skips repeats per pass

// Package deck implements cursor traversal over an ordered sequence of
// candidates: forward moves, backward moves with redo, and per-pass
// deduplication of identifiers that reappear in the source sequence.
package deck

// Navigator owns one browsing pass over the deck.
//
// An identifier lives in at most one place at a time: past, future,
// upcoming, or the current slot. Advancing past a card records its ID in
// seen; seen survives retreat/advance cycles and only Reset clears it.
type Navigator struct {
	upcoming []Candidate // not yet visited, in catalog order, consumed from the front
	past     []Candidate // visited, most recent last
	future   []Candidate // retreated-from cards, next redo first
	current  *Candidate
	seen     map[string]struct{} // IDs advanced past during this pass
}

// New builds a navigator over candidates and makes the first one current.
// An empty slice yields an exhausted navigator.
func New(candidates []Candidate) *Navigator {
	n := &Navigator{}
	n.Reset(candidates)
	return n
}

// Reset discards all traversal state and reloads the deck from candidates,
// exactly as on construction. This is the "show everything again" path, so
// previously seen IDs become visitable again.
func (n *Navigator) Reset(candidates []Candidate) {
	n.upcoming = make([]Candidate, len(candidates))
	copy(n.upcoming, candidates)
	n.past = nil
	n.future = nil
	n.seen = make(map[string]struct{})
	n.current = nil
	if len(n.upcoming) > 0 {
		c := n.upcoming[0]
		n.upcoming = n.upcoming[1:]
		n.current = &c
	}
}

// Current returns the active candidate, or ok=false when the deck is
// exhausted.
func (n *Navigator) Current() (Candidate, bool) {
	if n.current == nil {
		return Candidate{}, false
	}
	return *n.current, true
}

// Exhausted reports whether no candidate is active.
func (n *Navigator) Exhausted() bool { return n.current == nil }

// CanAdvance reports whether Advance would move the cursor.
func (n *Navigator) CanAdvance() bool { return n.current != nil }

// CanRetreat reports whether Retreat would move the cursor.
func (n *Navigator) CanRetreat() bool { return len(n.past) > 0 }

// Advance moves forward one card and reports whether the cursor moved.
// The departed card is pushed onto past and its ID marked seen. The next
// card comes from future (redo) when one is queued, otherwise from the
// first upcoming entry whose ID has not been seen this pass. When nothing
// qualifies the deck becomes exhausted; moving into exhaustion still
// counts as a move. Advancing while exhausted does nothing.
func (n *Navigator) Advance() bool {
	if n.current == nil {
		return false
	}

	n.seen[n.current.ID] = struct{}{}
	n.past = append(n.past, *n.current)
	n.current = nil

	// Redo takes priority over fresh cards.
	if len(n.future) > 0 {
		c := n.future[0]
		n.future = n.future[1:]
		n.current = &c
		return true
	}

	// Skip upcoming entries already advanced past; duplicate IDs later in
	// the catalog are stale copies of a card the user already handled.
	for len(n.upcoming) > 0 {
		c := n.upcoming[0]
		n.upcoming = n.upcoming[1:]
		if _, dup := n.seen[c.ID]; dup {
			continue
		}
		n.current = &c
		return true
	}

	return true
}

// Retreat moves back one card and reports whether the cursor moved. The
// displaced current card, if any, is pushed onto future so an immediate
// Advance restores it unchanged. With an empty past this is a no-op, even
// when exhausted.
func (n *Navigator) Retreat() bool {
	if len(n.past) == 0 {
		return false
	}

	if n.current != nil {
		n.future = append([]Candidate{*n.current}, n.future...)
	}

	c := n.past[len(n.past)-1]
	n.past = n.past[:len(n.past)-1]
	n.current = &c
	return true
}

// PastLen returns how many cards sit behind the cursor.
func (n *Navigator) PastLen() int { return len(n.past) }

// FutureLen returns how many retreated-from cards are queued for redo.
func (n *Navigator) FutureLen() int { return len(n.future) }

// UpcomingLen returns how many catalog entries have not been visited,
// including stale duplicates that Advance will skip.
func (n *Navigator) UpcomingLen() int { return len(n.upcoming) }

// SeenCount returns how many distinct IDs have been advanced past this
// pass.
func (n *Navigator) SeenCount() int { return len(n.seen) }

// Remaining counts the cards still ahead of the cursor: queued redo
// entries plus upcoming entries that will actually be shown, excluding
// stale duplicates of the current card, the redo queue, and seen IDs.
func (n *Navigator) Remaining() int {
	counted := make(map[string]struct{}, len(n.future)+1)
	for _, c := range n.future {
		counted[c.ID] = struct{}{}
	}
	if n.current != nil {
		counted[n.current.ID] = struct{}{}
	}

	r := len(n.future)
	for _, c := range n.upcoming {
		if _, dup := n.seen[c.ID]; dup {
			continue
		}
		if _, dup := counted[c.ID]; dup {
			continue
		}
		counted[c.ID] = struct{}{}
		r++
	}
	return r
}
