package touchui

// buttonState pairs a pointer record with the transition its button made
// this frame.
type buttonState struct {
	data  *PointerEventData
	press FramePressState
}

// mouseState is one frame's input for a pointer, per button. Hand and gaze
// pointers only fill the left slot.
type mouseState struct {
	buttons [3]buttonState
}

func (s *mouseState) set(button MouseButton, press FramePressState, data *PointerEventData) {
	s.buttons[button] = buttonState{data: data, press: press}
}

func (s *mouseState) button(button MouseButton) *buttonState {
	return &s.buttons[button]
}

func (s *mouseState) anyPressesThisFrame() bool {
	for i := range s.buttons {
		if s.buttons[i].data != nil && s.buttons[i].press.PressedThisFrame() {
			return true
		}
	}
	return false
}

func (s *mouseState) anyReleasesThisFrame() bool {
	for i := range s.buttons {
		if s.buttons[i].data != nil && s.buttons[i].press.ReleasedThisFrame() {
			return true
		}
	}
	return false
}

// --- Hand pointer ---

// getHandPointerData builds this frame's input for the arbitrated hand
// pointer. Each present hand is raycast on its own scratch record, the
// arbitration unit picks the winner, and the winner's hit is copied into the
// persistent PointerHand record. With no hand present the record becomes the
// gaze pointer (when enabled) or the parked null pointer.
func (m *TouchInputModule) getHandPointerData() *mouseState {
	data, _ := m.getPointerData(PointerHand, true)
	data.Reset()
	data.Button = MouseButtonLeft
	data.ScrollDelta = Vec2{}
	data.Delta = Vec2{}

	leftPose, leftOK := m.hands.Hand(HandLeft)
	rightPose, rightOK := m.hands.Hand(HandRight)
	var left, right RaycastResult
	if leftOK {
		left = m.raycastHand(PointerLeftHand, leftPose)
	}
	if rightOK {
		right = m.raycastHand(PointerRightHand, rightPose)
	}

	a := arbitrate(m.locked, leftOK, rightOK, left, right)
	if m.es.debug {
		debugLockChange(m.locked, a.locked)
	}
	m.locked = a.locked

	if a.null {
		m.trackTouch(nil)
		if m.cfg.GazeFallback {
			if pose, ok := m.hands.Gaze(); ok {
				return m.gazePointerState(data, pose)
			}
		}
		return m.nullPointerState(data)
	}

	data.Hand = a.hand
	switch a.source {
	case HandLeft:
		data.Ray = leftPose.Ray()
	case HandRight:
		data.Ray = rightPose.Ray()
	default:
		data.Ray = Ray{}
	}
	data.PointerCurrentRaycast = a.hit
	resolveScreenPosition(data)

	m.trackTouch(a.hit.Node)
	m.handState.set(MouseButtonLeft, touchButtonState(a.hit), data)
	return &m.handState
}

// raycastHand casts pose's ray on the scratch record id and returns the
// nearest hit.
func (m *TouchInputModule) raycastHand(id int, pose HandPose) RaycastResult {
	scratch, _ := m.getPointerData(id, true)
	scratch.Reset()
	scratch.Button = MouseButtonLeft
	scratch.UseDragThreshold = true
	scratch.Ray = pose.Ray()
	scratch.PointerCurrentRaycast = m.raycastFirst(scratch)
	return scratch.PointerCurrentRaycast
}

func (m *TouchInputModule) raycastFirst(data *PointerEventData) RaycastResult {
	m.raycastCache = m.es.RaycastAll(data, m.raycastCache)
	hit := firstRaycast(m.raycastCache)
	clear(m.raycastCache)
	m.raycastCache = m.raycastCache[:0]
	return hit
}

// gazePointerState casts the gaze ray on the hand record. The gaze has no
// touch threshold; it presses with the configured gaze click button.
func (m *TouchInputModule) gazePointerState(data *PointerEventData, pose HandPose) *mouseState {
	data.Hand = HandNone
	data.Ray = pose.Ray()
	data.PointerCurrentRaycast = m.raycastFirst(data)
	resolveScreenPosition(data)

	press := pressStateFrom(m.axes.ButtonDown(m.cfg.GazeClickButton), m.axes.ButtonUp(m.cfg.GazeClickButton))
	m.handState.set(MouseButtonLeft, press, data)
	return &m.handState
}

// nullPointerState parks the hand record far off screen with nothing under
// it, released every frame.
func (m *TouchInputModule) nullPointerState(data *PointerEventData) *mouseState {
	data.Hand = HandNone
	data.Ray = Ray{}
	data.Position = nullPointerPosition
	data.PointerCurrentRaycast = RaycastResult{}
	m.handState.set(MouseButtonLeft, PressReleased, data)
	return &m.handState
}

// trackTouch resets the previous node's touch threshold when the hand
// pointer's hit node changes.
func (m *TouchInputModule) trackTouch(n *Node) {
	if m.touched == n {
		return
	}
	if alive(m.touched) {
		if r, ok := m.touched.Touch.(touchResetter); ok {
			r.Reset()
		}
	}
	m.touched = n
}

// touchButtonState asks the hit node's touch threshold for this frame's
// press edges. A miss, or a node without a threshold, reads as released.
func touchButtonState(hit RaycastResult) FramePressState {
	if !alive(hit.Node) || hit.Node.Touch == nil {
		return PressReleased
	}
	return pressStateFrom(hit.Node.Touch.TouchState(hit.Distance))
}

// resolveScreenPosition projects a world-space hit to the screen through the
// raycaster that produced it. Hits from other raycasters keep the record's
// position.
func resolveScreenPosition(data *PointerEventData) {
	sp, ok := data.PointerCurrentRaycast.Module.(ScreenProjector)
	if !ok {
		return
	}
	pos := sp.ScreenPosition(data.PointerCurrentRaycast)
	data.Delta = pos.Sub(data.Position)
	data.Position = pos
}

// --- Screen mouse ---

// getMousePointerData builds this frame's input for the screen mouse. The
// left record is raycast; right and middle share its position and hit.
func (m *TouchInputModule) getMousePointerData() *mouseState {
	pos := m.mouse.MousePosition()

	left, created := m.getPointerData(PointerMouseLeft, true)
	left.Reset()
	if created {
		left.Position = pos
	}
	left.Delta = pos.Sub(left.Position)
	left.Position = pos
	left.ScrollDelta = m.mouse.MouseScrollDelta()
	left.Button = MouseButtonLeft
	left.PointerCurrentRaycast = m.raycastFirst(left)

	right, _ := m.getPointerData(PointerMouseRight, true)
	right.Reset()
	right.copyPointerFrom(left)
	right.Button = MouseButtonRight

	middle, _ := m.getPointerData(PointerMouseMiddle, true)
	middle.Reset()
	middle.copyPointerFrom(left)
	middle.Button = MouseButtonMiddle

	m.mouseButtons.set(MouseButtonLeft, m.stateForMouseButton(MouseButtonLeft), left)
	m.mouseButtons.set(MouseButtonRight, m.stateForMouseButton(MouseButtonRight), right)
	m.mouseButtons.set(MouseButtonMiddle, m.stateForMouseButton(MouseButtonMiddle), middle)
	return &m.mouseButtons
}

func (m *TouchInputModule) stateForMouseButton(b MouseButton) FramePressState {
	return pressStateFrom(m.mouse.MouseButtonDown(b), m.mouse.MouseButtonUp(b))
}
