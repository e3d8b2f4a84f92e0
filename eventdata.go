package touchui

import "github.com/go-gl/mathgl/mgl32"

// RaycastResult is one hit returned by a Raycaster. The zero value means
// "nothing hit".
type RaycastResult struct {
	Node           *Node
	Module         Raycaster
	Distance       float32
	Index          int // position in the result list of the producing raycast
	Depth          int // hierarchy depth of Node; deeper wins distance ties
	WorldPosition  mgl32.Vec3
	WorldNormal    mgl32.Vec3
	ScreenPosition Vec2
}

// IsValid reports whether the result refers to a live node from a raycaster.
func (r RaycastResult) IsValid() bool {
	return r.Module != nil && alive(r.Node)
}

// firstRaycast returns the first result with a node, or the zero result.
func firstRaycast(results []RaycastResult) RaycastResult {
	for _, r := range results {
		if r.Node != nil {
			return r
		}
	}
	return RaycastResult{}
}

// --- Event data ---

// eventData is implemented by every event payload type.
type eventData interface {
	base() *BaseEventData
}

// BaseEventData is the payload of selection and navigation events. A handler
// marks the event as consumed with Use.
type BaseEventData struct {
	es   *EventSystem
	used bool
}

func (d *BaseEventData) base() *BaseEventData { return d }

// Use marks the event as consumed.
func (d *BaseEventData) Use() { d.used = true }

// Used reports whether a handler consumed the event.
func (d *BaseEventData) Used() bool { return d.used }

// Reset clears the consumed flag so the payload can be reused.
func (d *BaseEventData) Reset() { d.used = false }

// EventSystem returns the event system that dispatched the event.
func (d *BaseEventData) EventSystem() *EventSystem { return d.es }

// SelectedNode returns the event system's current selection.
func (d *BaseEventData) SelectedNode() *Node {
	if d.es == nil {
		return nil
	}
	return d.es.CurrentSelected()
}

// AxisEventData is the payload of navigation move events.
type AxisEventData struct {
	BaseEventData
	MoveVector Vec2
	MoveDir    MoveDirection
}

// PointerEventData is the persistent per-pointer record. One exists per
// pointer identity for the lifetime of the input module; it carries hover,
// press, click and drag continuity from frame to frame.
type PointerEventData struct {
	BaseEventData

	PointerID int
	// RayPointer is true for world-space ray pointers (hands and gaze), which
	// are always treated as moving and use the angular drag threshold.
	RayPointer bool
	// Hand is the hand that produced this frame's data.
	Hand HandType
	// Ray is the world-space ray this frame was cast along (ray pointers only).
	Ray Ray
	// Button is the mouse button this record tracks.
	Button MouseButton

	Position      Vec2
	Delta         Vec2
	PressPosition Vec2
	ScrollDelta   Vec2

	PointerCurrentRaycast RaycastResult
	PointerPressRaycast   RaycastResult

	// PointerEnter is the node the pointer last entered; Hovered lists every
	// node currently hovered, leaf first.
	PointerEnter *Node
	Hovered      []*Node

	RawPointerPress *Node
	PointerDrag     *Node

	EligibleForClick bool
	Dragging         bool
	UseDragThreshold bool
	ClickCount       int
	ClickTime        float64

	pointerPress *Node
	lastPress    *Node
}

func newPointerEventData(es *EventSystem, id int, ray bool) *PointerEventData {
	return &PointerEventData{
		BaseEventData:    BaseEventData{es: es},
		PointerID:        id,
		RayPointer:       ray,
		UseDragThreshold: true,
	}
}

// PointerPress returns the node that received the current press.
func (d *PointerEventData) PointerPress() *Node { return d.pointerPress }

// LastPress returns the previous press target; click counting compares a new
// press against it.
func (d *PointerEventData) LastPress() *Node { return d.lastPress }

// SetPointerPress changes the press target, remembering the old one as the
// last press when it differs.
func (d *PointerEventData) SetPointerPress(n *Node) {
	if d.pointerPress == n {
		return
	}
	d.lastPress = d.pointerPress
	d.pointerPress = n
}

// PressEventCamera returns the camera of the raycaster that produced the
// press-time hit, or nil.
func (d *PointerEventData) PressEventCamera() *Camera {
	if d.PointerPressRaycast.Module == nil {
		return nil
	}
	return d.PointerPressRaycast.Module.EventCamera()
}

// IsPointerMoving reports whether the pointer moved this frame. Ray pointers
// have no rest state and always report true.
func (d *PointerEventData) IsPointerMoving() bool {
	if d.RayPointer {
		return true
	}
	return d.Delta.SqrMagnitude() > 0
}

// IsScrolling reports whether the pointer has a non-zero scroll delta.
func (d *PointerEventData) IsScrolling() bool {
	return !approxZero(d.ScrollDelta.SqrMagnitude())
}

// removeHovered drops the first occurrence of n from the hover list.
func (d *PointerEventData) removeHovered(n *Node) {
	for i, h := range d.Hovered {
		if h == n {
			copy(d.Hovered[i:], d.Hovered[i+1:])
			d.Hovered[len(d.Hovered)-1] = nil
			d.Hovered = d.Hovered[:len(d.Hovered)-1]
			return
		}
	}
}

// copyPointerFrom copies the per-frame fields of src into d.
func (d *PointerEventData) copyPointerFrom(src *PointerEventData) {
	d.Position = src.Position
	d.Delta = src.Delta
	d.ScrollDelta = src.ScrollDelta
	d.PointerCurrentRaycast = src.PointerCurrentRaycast
	d.PointerEnter = src.PointerEnter
	d.Ray = src.Ray
}
