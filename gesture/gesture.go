// ABOUTME: Swipe classification from two-dimensional drag displacement
// ABOUTME: Thresholded dominant-axis mapping to left/right/up/down intents

// Package gesture reduces continuous pointer drags to discrete swipe
// directions. Coordinates follow terminal cells: x grows rightward,
// y grows downward.
package gesture

// Direction is the discrete intent of one completed gesture.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

var directionNames = [...]string{"none", "left", "right", "up", "down"}

func (d Direction) String() string {
	if d < None || d > Down {
		return "unknown"
	}
	return directionNames[d]
}

// Classify maps a displacement to a direction. When both components stay
// under threshold the movement is jitter and classifies as None. Otherwise
// the axis with the larger magnitude wins, vertical on ties, and the sign
// picks the direction along that axis.
func Classify(dx, dy, threshold int) Direction {
	ax, ay := abs(dx), abs(dy)
	if ax < threshold && ay < threshold {
		return None
	}
	if ax > ay {
		if dx < 0 {
			return Left
		}
		return Right
	}
	if dy < 0 {
		return Up
	}
	return Down
}

// Drag accumulates one continuous press/move/release pointer gesture.
// The zero value is an idle tracker.
type Drag struct {
	active         bool
	startX, startY int
	lastX, lastY   int
}

// Press starts tracking at the press coordinates. A press while already
// active restarts the gesture from the new origin.
func (d *Drag) Press(x, y int) {
	d.active = true
	d.startX, d.startY = x, y
	d.lastX, d.lastY = x, y
}

// Move records an intermediate drag position. Ignored while idle.
func (d *Drag) Move(x, y int) {
	if !d.active {
		return
	}
	d.lastX, d.lastY = x, y
}

// Release ends the gesture and classifies the total displacement from the
// press point to the release point. Returns None when no press was
// tracked.
func (d *Drag) Release(x, y, threshold int) Direction {
	if !d.active {
		return None
	}
	d.active = false
	return Classify(x-d.startX, y-d.startY, threshold)
}

// Cancel abandons the gesture without classifying, e.g. on focus loss.
func (d *Drag) Cancel() { d.active = false }

// Active reports whether a press is currently tracked.
func (d *Drag) Active() bool { return d.active }

// Delta returns the displacement accumulated so far, for live feedback
// while the drag is still in progress.
func (d *Drag) Delta() (dx, dy int) {
	return d.lastX - d.startX, d.lastY - d.startY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
