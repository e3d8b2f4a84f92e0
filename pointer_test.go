package touchui

import "testing"

func TestGazeFallback(t *testing.T) {
	h := newHarness(t)
	cfg := h.m.Config()
	cfg.GazeFallback = true
	h.m.SetConfig(cfg)
	n := h.addPanel("n", 0, 0, 1, 1)
	handle(n, EventPointerEnter, EventPointerDown, EventPointerUp, EventPointerClick)

	h.hands.SetGaze(aimAt(mgl32Origin, pt(0, 0, panelZ)))
	h.frame()
	assertEvents(t, h.takeEvents(), "pointerEnter n")

	h.axes.down["Jump"] = true
	h.frame()
	assertEvents(t, h.takeEvents(), "pointerDown n")

	h.axes.up["Jump"] = true
	h.frame()
	assertEvents(t, h.takeEvents(), "pointerUp n", "pointerClick n")

	p := h.handPointer(t)
	if p.Hand != HandNone {
		t.Errorf("Hand = %v, want none for gaze", p.Hand)
	}
	if h.m.LockedHand() != HandNone {
		t.Errorf("lock = %v, want none", h.m.LockedHand())
	}
}

func TestGazeIgnoredWhileHandPresent(t *testing.T) {
	h := newHarness(t)
	cfg := h.m.Config()
	cfg.GazeFallback = true
	h.m.SetConfig(cfg)
	h.addPanel("left", -1, 0, 1, 1)
	h.addPanel("right", 1, 0, 1, 1)

	h.hands.SetGaze(aimAt(mgl32Origin, pt(-1, 0, panelZ)))
	h.aim(1, 0)
	h.frame()

	if p := h.handPointer(t); p.PointerCurrentRaycast.Node == nil || p.PointerCurrentRaycast.Node.Name != "right" {
		t.Errorf("pointer over %s, want right", nodeName(p.PointerCurrentRaycast.Node))
	}
}

func TestGazeDisabledUsesNullPointer(t *testing.T) {
	h := newHarness(t)
	n := h.addPanel("n", 0, 0, 1, 1)
	handle(n, EventPointerEnter)

	h.hands.SetGaze(aimAt(mgl32Origin, pt(0, 0, panelZ)))
	h.frame()
	assertEvents(t, h.takeEvents())
	if p := h.handPointer(t); p.Position != nullPointerPosition {
		t.Errorf("Position = %v, want the null position", p.Position)
	}
}

func TestHandPointerDelta(t *testing.T) {
	h := newHarness(t)
	h.addPanel("n", 0, 0, 2, 2)

	h.aim(0, 0)
	h.frame()
	h.aim(0.5, 0)
	h.frame()

	p := h.handPointer(t)
	if p.Delta.X <= 0 || !approxEqual(p.Delta.Y, 0, 0.5) {
		t.Errorf("Delta = %v, want a move to the right", p.Delta)
	}
	if p.Ray.Origin != mgl32Origin {
		t.Errorf("Ray.Origin = %v, want the hand position", p.Ray.Origin)
	}
}

func TestMouseStateEdges(t *testing.T) {
	var s mouseState
	d := newPointerEventData(nil, PointerMouseLeft, false)
	if s.anyPressesThisFrame() || s.anyReleasesThisFrame() {
		t.Error("empty state has no edges")
	}
	// Slots without a record never count.
	s.buttons[MouseButtonMiddle].press = PressPressedAndReleased
	if s.anyPressesThisFrame() {
		t.Error("slot without data should not count")
	}
	s.set(MouseButtonRight, PressReleased, d)
	if s.anyPressesThisFrame() || !s.anyReleasesThisFrame() {
		t.Error("right release should count as a release only")
	}
	if s.button(MouseButtonRight).data != d {
		t.Error("button should return the stored record")
	}
}

func TestPointerIsMoving(t *testing.T) {
	ray := newPointerEventData(nil, PointerHand, true)
	if !ray.IsPointerMoving() {
		t.Error("ray pointers always move")
	}
	screen := newPointerEventData(nil, PointerMouseLeft, false)
	if screen.IsPointerMoving() {
		t.Error("screen pointer at rest should not move")
	}
	screen.Delta = Vec2{0, 1}
	if !screen.IsPointerMoving() {
		t.Error("screen pointer with a delta moves")
	}
}

func TestSetPointerPressKeepsLastPress(t *testing.T) {
	d := newPointerEventData(nil, PointerHand, true)
	a, b := NewPanel("a", 1, 1), NewPanel("b", 1, 1)

	d.SetPointerPress(a)
	d.SetPointerPress(nil)
	if d.LastPress() != a {
		t.Errorf("LastPress = %s, want a", nodeName(d.LastPress()))
	}
	d.SetPointerPress(nil)
	if d.LastPress() != a {
		t.Error("setting the same press should not shift LastPress")
	}
	d.SetPointerPress(b)
	if d.PointerPress() != b || d.LastPress() != nil {
		t.Errorf("press = %s, last = %s", nodeName(d.PointerPress()), nodeName(d.LastPress()))
	}
}
