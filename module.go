package touchui

import (
	"maps"
	"slices"
)

// AxisInput polls named virtual axes and buttons.
type AxisInput interface {
	// ButtonDown reports whether the named button (or any key of the named
	// axis) went down this frame.
	ButtonDown(name string) bool
	// ButtonUp reports whether the named button went up this frame.
	ButtonUp(name string) bool
	// AxisRaw returns the unsmoothed axis value in [-1, 1].
	AxisRaw(name string) float64
}

// MouseSource polls a screen mouse.
type MouseSource interface {
	MousePresent() bool
	// MousePosition returns the cursor in screen coordinates (top-left origin).
	MousePosition() Vec2
	MouseScrollDelta() Vec2
	// MouseButtonDown and MouseButtonUp report edges this frame.
	MouseButtonDown(button MouseButton) bool
	MouseButtonUp(button MouseButton) bool
}

// noAxisInput is the AxisInput used until one is set: nothing is ever held.
type noAxisInput struct{}

func (noAxisInput) ButtonDown(string) bool { return false }
func (noAxisInput) ButtonUp(string) bool { return false }
func (noAxisInput) AxisRaw(string) float64 { return 0 }

// frameAdvancer is implemented by hand sources that replay queued frames.
type frameAdvancer interface {
	Advance() bool
}

// TouchInputModule routes tracked hands (and optionally gaze and a screen
// mouse) into UI events. Each frame it arbitrates the hands into a single
// pointer, derives press/release from the hit node's touch threshold, and
// runs the hover, press, click, drag and scroll pipeline on that pointer's
// persistent record. It also drives navigation for the selected node.
type TouchInputModule struct {
	es    *EventSystem
	cfg   Config
	hands HandSource
	axes  AxisInput
	mouse MouseSource
	clock Clock

	enabled bool

	// Pointer state pool, keyed by pointer ID. Records are created on first
	// use and live as long as the module.
	pointers map[int]*PointerEventData

	// locked is the hand holding interaction authority across frames.
	locked HandType
	// touched is the node whose touch threshold the hand pointer read last.
	touched *Node

	nextAction   float64
	mousePos     Vec2
	lastMousePos Vec2

	raycastCache []RaycastResult
	enterBuf     []*Node
	handState    mouseState
	mouseButtons mouseState
	baseData     BaseEventData
	axisData     AxisEventData

	testRunner *TestRunner
}

// NewTouchInputModule creates a module with the given configuration and
// registers it with es. Hands default to an empty ManualHands source, axes to
// no input and the clock to wall time.
func NewTouchInputModule(es *EventSystem, cfg Config) *TouchInputModule {
	m := &TouchInputModule{
		es:       es,
		cfg:      cfg,
		hands:    NewManualHands(),
		axes:     noAxisInput{},
		clock:    newWallClock(),
		enabled:  true,
		pointers: make(map[int]*PointerEventData),
	}
	m.baseData.es = es
	m.axisData.es = es
	es.AddModule(m)
	return m
}

// --- Collaborators & options ---

// SetHandSource sets the hand and gaze pose source.
func (m *TouchInputModule) SetHandSource(h HandSource) {
	m.hands = h
}

// SetAxisInput sets the axis and button source used for navigation and gaze
// clicks.
func (m *TouchInputModule) SetAxisInput(a AxisInput) {
	if a == nil {
		a = noAxisInput{}
	}
	m.axes = a
}

// SetMouseSource sets the screen mouse. Nil means no mouse is present.
func (m *TouchInputModule) SetMouseSource(s MouseSource) {
	m.mouse = s
}

// SetClock replaces the time source.
func (m *TouchInputModule) SetClock(c Clock) {
	m.clock = c
}

// SetEnabled enables or disables activation of the module.
func (m *TouchInputModule) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Config returns the module's configuration.
func (m *TouchInputModule) Config() Config {
	return m.cfg
}

// SetConfig replaces the module's configuration.
func (m *TouchInputModule) SetConfig(cfg Config) {
	m.cfg = cfg
}

// LockedHand returns the hand currently holding interaction authority.
func (m *TouchInputModule) LockedHand() HandType {
	return m.locked
}

// PointerData returns the persistent record for a pointer ID, if it exists.
func (m *TouchInputModule) PointerData(id int) (*PointerEventData, bool) {
	p, ok := m.pointers[id]
	return p, ok
}

// getPointerData returns the record for id, creating it when create is set.
// The second result reports whether the record was created by this call.
func (m *TouchInputModule) getPointerData(id int, create bool) (*PointerEventData, bool) {
	if p, ok := m.pointers[id]; ok || !create {
		return p, false
	}
	p := newPointerEventData(m.es, id, isRayPointerID(id))
	m.pointers[id] = p
	return p, true
}

func isRayPointerID(id int) bool {
	return id == PointerHand || id == PointerLeftHand || id == PointerRightHand
}

func (m *TouchInputModule) getBaseEventData() *BaseEventData {
	m.baseData.Reset()
	return &m.baseData
}

func (m *TouchInputModule) getAxisEventData(x, y, deadZone float64) *AxisEventData {
	m.axisData.Reset()
	m.axisData.MoveVector = Vec2{x, y}
	m.axisData.MoveDir = determineMoveDirection(x, y, deadZone)
	return &m.axisData
}

// --- Lifecycle ---

// IsModuleSupported reports whether the module may run: always when mobile
// activation is allowed, otherwise only with a mouse present.
func (m *TouchInputModule) IsModuleSupported() bool {
	return m.cfg.AllowActivationOnMobileDevice || (m.mouse != nil && m.mouse.MousePresent())
}

// ShouldActivateModule reports whether any input arrived this frame: a
// submit or cancel edge, a non-zero axis, mouse motion or press, or a hand
// being tracked.
func (m *TouchInputModule) ShouldActivateModule() bool {
	if !m.enabled {
		return false
	}
	activate := m.axes.ButtonDown(m.cfg.SubmitButton)
	activate = activate || m.axes.ButtonDown(m.cfg.CancelButton)
	activate = activate || !approxZero(m.axes.AxisRaw(m.cfg.HorizontalAxis))
	activate = activate || !approxZero(m.axes.AxisRaw(m.cfg.VerticalAxis))
	activate = activate || m.mousePos.Sub(m.lastMousePos).SqrMagnitude() > 0
	if m.mouse != nil {
		activate = activate || m.mouse.MouseButtonDown(MouseButtonLeft)
	}
	if m.hands != nil {
		_, left := m.hands.Hand(HandLeft)
		_, right := m.hands.Hand(HandRight)
		activate = activate || left || right
	}
	return activate
}

// ActivateModule restores the current selection, falling back to the event
// system's first-selected node.
func (m *TouchInputModule) ActivateModule() {
	if m.mouse != nil {
		m.mousePos = m.mouse.MousePosition()
		m.lastMousePos = m.mousePos
	}
	toSelect := m.es.CurrentSelected()
	if toSelect == nil {
		toSelect = m.es.FirstSelected()
	}
	m.es.SetSelected(toSelect, m.getBaseEventData())
}

// DeactivateModule exits every hovered node on every pointer, drops the
// screen pointer records and clears the selection.
func (m *TouchInputModule) DeactivateModule() {
	m.trackTouch(nil)
	m.clearSelection()
}

// UpdateModule steps the attached test runner, advances replayed hand frames
// and samples the mouse position.
func (m *TouchInputModule) UpdateModule() {
	if m.testRunner != nil {
		if h, ok := m.hands.(*ManualHands); ok {
			m.testRunner.step(h)
		}
	}
	if adv, ok := m.hands.(frameAdvancer); ok {
		adv.Advance()
	}
	if m.mouse != nil {
		m.lastMousePos = m.mousePos
		m.mousePos = m.mouse.MousePosition()
	}
}

// Process runs one frame: navigation for the selected node, then the hand
// pointer, then the screen mouse when enabled.
func (m *TouchInputModule) Process() {
	m.processNavigation()
	m.processMouseEvent(m.getHandPointerData())
	if m.cfg.EnableMouse && m.mouse != nil {
		m.processMouseEvent(m.getMousePointerData())
	}
}

func (m *TouchInputModule) clearSelection() {
	for _, id := range slices.Sorted(maps.Keys(m.pointers)) {
		p := m.pointers[id]
		m.handlePointerExitAndEnter(p, nil)
		if !p.RayPointer {
			delete(m.pointers, id)
		}
	}
	m.es.SetSelected(nil, m.getBaseEventData())
}
