// ABOUTME: Face controller for the three-view matching screen
// ABOUTME: Serializes deck moves and face switches behind one busy lock

// Package face mediates transitions between the three mutually exclusive
// views of the matching screen and delegates lateral moves to the deck
// navigator. One busy flag serializes transitions: gestures arriving while
// a transition is in flight are rejected, never queued.
//
// A transition runs in three phases. Begin validates the gesture and takes
// the lock. Commit applies the single state mutation; hosts that animate
// call it at the visual midpoint, when neither face is cleanly shown.
// Finish releases the lock and must run on every exit path.
package face

import (
	"mentordeck/deck"
	"mentordeck/gesture"
)

// Face identifies one of the three views of the matching screen.
type Face int

const (
	Primary Face = iota // the current candidate card
	Upper               // the viewer's own profile
	Lower               // detail view of the current candidate
)

var faceNames = [...]string{"primary", "upper", "lower"}

func (f Face) String() string {
	if f < Primary || f > Lower {
		return "unknown"
	}
	return faceNames[f]
}

// DeckMove is the navigator effect a transition carries, if any.
type DeckMove int

const (
	MoveNone DeckMove = iota
	MoveAdvance
	MoveRetreat
)

// Transition is one validated, lock-holding move. Lateral transitions stay
// on Primary and carry a deck move instead of a face change.
type Transition struct {
	From Face
	To   Face
	Move DeckMove
	Dir  gesture.Direction
}

// Controller owns the active face and the in-flight-transition lock. It is
// not safe for concurrent use; call it from the screen's update loop only.
type Controller struct {
	face Face
	busy bool
	nav  *deck.Navigator
}

// New returns a controller on the Primary face over nav.
func New(nav *deck.Navigator) *Controller {
	return &Controller{face: Primary, nav: nav}
}

// Face returns the active face.
func (c *Controller) Face() Face { return c.face }

// Busy reports whether a transition currently holds the lock.
func (c *Controller) Busy() bool { return c.busy }

// Begin validates dir against the transition table and takes the lock.
// It returns ok=false, leaving all state untouched, while busy, for
// direction/face pairs outside the table, and for lateral moves the deck
// cannot make.
func (c *Controller) Begin(dir gesture.Direction) (Transition, bool) {
	if c.busy {
		return Transition{}, false
	}
	t, ok := c.plan(dir)
	if !ok {
		return Transition{}, false
	}
	c.busy = true
	return t, true
}

// plan maps the active face and a direction to a transition.
//
//	Primary + left  -> advance the deck
//	Primary + right -> retreat the deck
//	Primary + down  -> show the viewer profile (Upper)
//	Primary + up    -> show candidate detail (Lower)
//	Upper   + up    -> back to Primary
//	Lower   + down  -> back to Primary
//
// Everything else is illegal and rejected.
func (c *Controller) plan(dir gesture.Direction) (Transition, bool) {
	switch c.face {
	case Primary:
		switch dir {
		case gesture.Left:
			if !c.nav.CanAdvance() {
				return Transition{}, false
			}
			return Transition{From: Primary, To: Primary, Move: MoveAdvance, Dir: dir}, true
		case gesture.Right:
			if !c.nav.CanRetreat() {
				return Transition{}, false
			}
			return Transition{From: Primary, To: Primary, Move: MoveRetreat, Dir: dir}, true
		case gesture.Down:
			return Transition{From: Primary, To: Upper, Dir: dir}, true
		case gesture.Up:
			// Detail needs a card to detail.
			if c.nav.Exhausted() {
				return Transition{}, false
			}
			return Transition{From: Primary, To: Lower, Dir: dir}, true
		}
	case Upper:
		if dir == gesture.Up {
			return Transition{From: Upper, To: Primary, Dir: dir}, true
		}
	case Lower:
		if dir == gesture.Down {
			return Transition{From: Lower, To: Primary, Dir: dir}, true
		}
	}
	return Transition{}, false
}

// Commit applies the transition's single state mutation: the deck move for
// lateral transitions, the face switch for the rest. Calling it more than
// once per transition is a host bug.
func (c *Controller) Commit(t Transition) {
	switch t.Move {
	case MoveAdvance:
		c.nav.Advance()
	case MoveRetreat:
		c.nav.Retreat()
	default:
		c.face = t.To
	}
}

// Finish releases the lock. It must run on every exit path of a begun
// transition, whether or not Commit happened.
func (c *Controller) Finish() {
	c.busy = false
}

// Dispatch runs a whole transition synchronously: Begin, then Commit with
// Finish deferred, so the lock is released even if the mutation panics.
// Hosts that skip animation use this instead of the three-phase form.
func (c *Controller) Dispatch(dir gesture.Direction) (Transition, bool) {
	t, ok := c.Begin(dir)
	if !ok {
		return Transition{}, false
	}
	defer c.Finish()
	c.Commit(t)
	return t, true
}
