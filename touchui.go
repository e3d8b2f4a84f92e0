package touchui

import "math"

// Vec2 is a 2D vector used for screen positions, deltas and scroll amounts.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// SqrMagnitude returns the squared length of v.
func (v Vec2) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

// approxZero reports whether f is zero within float32 epsilon, matching the
// precision of the values produced by input backends.
func approxZero(f float64) bool {
	return math.Abs(f) < 1e-6
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HandType identifies which tracked hand produced a frame's pointer data.
type HandType uint8

const (
	HandNone  HandType = iota // no hand: null pointer or gaze
	HandLeft                  // left tracked hand
	HandRight                 // right tracked hand
)

// String returns the lower-case hand name.
func (h HandType) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "none"
	}
}

// FramePressState is the button transition a pointer made this frame.
type FramePressState uint8

const (
	PressNotChanged         FramePressState = iota // no transition
	PressPressed                                   // went down this frame
	PressReleased                                  // went up (or is up) this frame
	PressPressedAndReleased                        // down and up within one frame
)

// PressedThisFrame reports whether the state includes a press.
func (s FramePressState) PressedThisFrame() bool {
	return s == PressPressed || s == PressPressedAndReleased
}

// ReleasedThisFrame reports whether the state includes a release.
func (s FramePressState) ReleasedThisFrame() bool {
	return s == PressReleased || s == PressPressedAndReleased
}

// pressStateFrom folds a pressed/released pair into a FramePressState.
func pressStateFrom(pressed, released bool) FramePressState {
	switch {
	case pressed && released:
		return PressPressedAndReleased
	case pressed:
		return PressPressed
	case released:
		return PressReleased
	default:
		return PressNotChanged
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// MoveDirection is the dominant direction of a navigation move event.
type MoveDirection uint8

const (
	MoveNone MoveDirection = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
)

// String returns the lower-case direction name.
func (d MoveDirection) String() string {
	switch d {
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}

// determineMoveDirection picks the dominant axis of (x, y), or MoveNone when
// the vector lies inside the dead zone.
func determineMoveDirection(x, y, deadZone float64) MoveDirection {
	if x*x+y*y < deadZone*deadZone {
		return MoveNone
	}
	if math.Abs(x) > math.Abs(y) {
		if x > 0 {
			return MoveRight
		}
		return MoveLeft
	}
	if y > 0 {
		return MoveUp
	}
	return MoveDown
}

// EventType identifies a kind of dispatched UI event.
type EventType uint8

const (
	EventPointerEnter            EventType = iota // pointer entered a node or one of its descendants
	EventPointerExit                              // pointer left a node and all of its descendants
	EventPointerDown                              // touch threshold or button pressed over a node
	EventPointerUp                                // press released; sent to the press target
	EventPointerClick                             // press and release on the same click handler
	EventInitializePotentialDrag                  // a drag handler was captured at press time
	EventBeginDrag                                // drag start predicate satisfied
	EventDrag                                     // every moving frame while dragging
	EventEndDrag                                  // release while dragging
	EventDrop                                     // release over a node while a drag handler was captured
	EventScroll                                   // non-zero scroll delta
	EventUpdateSelected                           // every frame, to the selected node
	EventSelect                                   // node became selected
	EventDeselect                                 // node stopped being selected
	EventMove                                     // navigation move
	EventSubmit                                   // submit button edge
	EventCancel                                   // cancel button edge
)

var eventTypeNames = [...]string{
	EventPointerEnter:            "pointerEnter",
	EventPointerExit:             "pointerExit",
	EventPointerDown:             "pointerDown",
	EventPointerUp:               "pointerUp",
	EventPointerClick:            "pointerClick",
	EventInitializePotentialDrag: "initializePotentialDrag",
	EventBeginDrag:               "beginDrag",
	EventDrag:                    "drag",
	EventEndDrag:                 "endDrag",
	EventDrop:                    "drop",
	EventScroll:                  "scroll",
	EventUpdateSelected:          "updateSelected",
	EventSelect:                  "select",
	EventDeselect:                "deselect",
	EventMove:                    "move",
	EventSubmit:                  "submit",
	EventCancel:                  "cancel",
}

// String returns the camel-case event name.
func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// Pointer identities. Negative IDs are reserved for the built-in pointers;
// touch or controller pointers added by callers should use non-negative IDs.
const (
	PointerMouseLeft   = -1 // legacy screen mouse, left button
	PointerMouseRight  = -2 // legacy screen mouse, right button
	PointerMouseMiddle = -3 // legacy screen mouse, middle button

	PointerHand      = -10 // the arbitrated hand (or gaze) pointer
	PointerRightHand = -11 // scratch record for the right hand's raycast
	PointerLeftHand  = -12 // scratch record for the left hand's raycast
)

// nullPointerPosition is where the null pointer is parked when no hand is
// present: far outside any viewport.
var nullPointerPosition = Vec2{10000, 10000}
