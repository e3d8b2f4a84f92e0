package touchui

// TouchThreshold converts a pointer's hit distance into press/release edges
// for the node it hits. It is consulted once per frame while the node is the
// hand pointer's current target. Thresholds that also implement Reset are
// reset when the pointer moves off the node or loses its target.
type TouchThreshold interface {
	TouchState(distance float32) (pressed, released bool)
}

// touchResetter is implemented by thresholds that latch state per target.
// The module resets the threshold when the hand pointer leaves its node.
type touchResetter interface {
	Reset()
}

// TouchLimit is a distance band with hysteresis: the pointer presses when the
// hit distance drops to PressDistance or below, and releases once it grows
// past ReleaseDistance. ReleaseDistance should be >= PressDistance; a wider
// gap keeps a hovering fingertip from chattering at the boundary.
type TouchLimit struct {
	PressDistance   float32
	ReleaseDistance float32

	touching bool
}

// NewTouchLimit returns a band that presses at press and releases past release.
func NewTouchLimit(press, release float32) *TouchLimit {
	if release < press {
		release = press
	}
	return &TouchLimit{PressDistance: press, ReleaseDistance: release}
}

// TouchState implements TouchThreshold.
func (l *TouchLimit) TouchState(distance float32) (pressed, released bool) {
	if !l.touching && distance <= l.PressDistance {
		l.touching = true
		return true, false
	}
	if l.touching && distance > l.ReleaseDistance {
		l.touching = false
		return false, true
	}
	return false, false
}

// Reset drops the latch so the next hit inside the press band presses again.
func (l *TouchLimit) Reset() {
	l.touching = false
}

// Touching reports whether the band is currently held.
func (l *TouchLimit) Touching() bool {
	return l.touching
}
