package touchui

import (
	"math"
	"slices"
)

// processMouseEvent runs the pointer pipeline for one frame of input: press
// and release on the left button, hover refresh, drag, then press and drag
// for the other buttons and finally scroll.
func (m *TouchInputModule) processMouseEvent(state *mouseState) {
	left := state.button(MouseButtonLeft)
	data := left.data
	if data == nil {
		return
	}
	if !useMouse(state.anyPressesThisFrame(), state.anyReleasesThisFrame(), data) {
		return
	}

	m.processMousePress(left)
	m.processMove(data)
	m.processDrag(data)

	for i := MouseButtonRight; i <= MouseButtonMiddle; i++ {
		b := state.button(i)
		if b.data == nil {
			continue
		}
		m.processMousePress(b)
		m.processDrag(b.data)
	}

	if !approxZero(data.ScrollDelta.SqrMagnitude()) {
		scroll := getEventHandler(data.PointerCurrentRaycast.Node, EventScroll)
		m.es.executeHierarchy(scroll, data, EventScroll)
	}
}

// useMouse reports whether the pointer needs processing this frame.
func useMouse(pressed, released bool, data *PointerEventData) bool {
	return pressed || released || data.IsPointerMoving() || data.IsScrolling()
}

// currentTarget returns the live node under the pointer, or nil.
func currentTarget(data *PointerEventData) *Node {
	if n := data.PointerCurrentRaycast.Node; alive(n) {
		return n
	}
	return nil
}

// processMousePress handles the press and release edges of one button.
func (m *TouchInputModule) processMousePress(b *buttonState) {
	data := b.data
	current := currentTarget(data)

	if b.press.PressedThisFrame() {
		m.cancelPress(data)

		data.EligibleForClick = true
		data.Delta = Vec2{}
		data.Dragging = false
		data.UseDragThreshold = true
		data.PressPosition = data.Position
		data.PointerPressRaycast = data.PointerCurrentRaycast

		m.deselectIfSelectionChanged(current, &data.BaseEventData)

		// The press goes to the nearest pointer-down handler, or failing
		// that to whatever would receive the click.
		newPressed := m.es.executeHierarchy(current, data, EventPointerDown)
		if newPressed == nil {
			newPressed = getEventHandler(current, EventPointerClick)
		}

		now := m.clock.Now()
		if newPressed != nil && newPressed == data.LastPress() {
			if now-data.ClickTime < m.cfg.ClickInterval {
				data.ClickCount++
			} else {
				data.ClickCount = 1
			}
		} else {
			data.ClickCount = 1
		}

		data.SetPointerPress(newPressed)
		data.RawPointerPress = current
		data.ClickTime = now

		data.PointerDrag = getEventHandler(current, EventDrag)
		if data.PointerDrag != nil {
			m.es.execute(data.PointerDrag, data, EventInitializePotentialDrag)
		}
	}

	if b.press.ReleasedThisFrame() {
		press := data.PointerPress()
		m.es.execute(press, data, EventPointerUp)

		clickHandler := getEventHandler(current, EventPointerClick)
		if press != nil && press == clickHandler && data.EligibleForClick {
			m.es.execute(press, data, EventPointerClick)
		} else if data.PointerDrag != nil {
			m.es.executeHierarchy(current, data, EventDrop)
		}

		data.EligibleForClick = false
		data.SetPointerPress(nil)
		data.RawPointerPress = nil

		if data.PointerDrag != nil && data.Dragging {
			m.es.execute(data.PointerDrag, data, EventEndDrag)
		}
		data.Dragging = false
		data.PointerDrag = nil

		// Nodes passed over while the press was held were never entered.
		if current != data.PointerEnter {
			m.handlePointerExitAndEnter(data, nil)
			m.handlePointerExitAndEnter(data, current)
		}
	}
}

// cancelPress closes a press still open when a new press edge arrives: the
// old press target gets pointerUp and an active drag gets endDrag. No click
// or drop is sent.
func (m *TouchInputModule) cancelPress(data *PointerEventData) {
	if data.PointerPress() == nil && !data.Dragging {
		return
	}
	m.es.execute(data.PointerPress(), data, EventPointerUp)
	if data.PointerDrag != nil && data.Dragging {
		m.es.execute(data.PointerDrag, data, EventEndDrag)
	}
	data.EligibleForClick = false
	data.SetPointerPress(nil)
	data.RawPointerPress = nil
	data.Dragging = false
	data.PointerDrag = nil
}

// deselectIfSelectionChanged clears the selection when the press lands
// outside the selected node's select handler.
func (m *TouchInputModule) deselectIfSelectionChanged(current *Node, data *BaseEventData) {
	if getEventHandler(current, EventSelect) != m.es.CurrentSelected() {
		m.es.SetSelected(nil, data)
	}
}

func (m *TouchInputModule) processMove(data *PointerEventData) {
	m.handlePointerExitAndEnter(data, currentTarget(data))
}

// handlePointerExitAndEnter moves the pointer's hover from its previous
// target to target. Exits run from the old target up to the nearest common
// ancestor, enters from target up to the same ancestor; neither includes the
// ancestor itself. Hovered stays leaf first.
func (m *TouchInputModule) handlePointerExitAndEnter(data *PointerEventData, target *Node) {
	if !alive(target) {
		target = nil
	}

	if target == nil || !alive(data.PointerEnter) {
		for _, h := range data.Hovered {
			m.es.execute(h, data, EventPointerExit)
		}
		clear(data.Hovered)
		data.Hovered = data.Hovered[:0]
		data.PointerEnter = nil
		if target == nil {
			return
		}
	}

	if data.PointerEnter == target {
		return
	}

	root := findCommonRoot(data.PointerEnter, target)

	for n := data.PointerEnter; n != nil && n != root; n = n.Parent {
		m.es.execute(n, data, EventPointerExit)
		data.removeHovered(n)
	}

	data.PointerEnter = target
	chain := m.enterBuf[:0]
	for n := target; n != nil && n != root; n = n.Parent {
		m.es.execute(n, data, EventPointerEnter)
		chain = append(chain, n)
	}
	data.Hovered = slices.Insert(data.Hovered, 0, chain...)
	clear(chain)
	m.enterBuf = chain[:0]
}

// processDrag starts a drag once the start predicate holds and sends drag
// to the captured handler on every moving frame after that.
func (m *TouchInputModule) processDrag(data *PointerEventData) {
	moving := data.IsPointerMoving()

	if moving && data.PointerDrag != nil && !data.Dragging && m.shouldStartDrag(data) {
		m.es.execute(data.PointerDrag, data, EventBeginDrag)
		data.Dragging = true
	}

	if data.Dragging && moving && data.PointerDrag != nil {
		// A press held by another node is released before the drag takes
		// over.
		if press := data.PointerPress(); press != data.PointerDrag {
			m.es.execute(press, data, EventPointerUp)
			data.EligibleForClick = false
			data.SetPointerPress(nil)
			data.RawPointerPress = nil
		}
		m.es.execute(data.PointerDrag, data, EventDrag)
	}
}

// shouldStartDrag decides whether a pressed pointer has moved far enough to
// drag. Screen pointers compare pixel distance against PixelDragThreshold.
// Ray pointers compare the angle between the press and current hit points,
// seen from the press camera, against AngleDragThreshold; screen distance is
// meaningless for a ray pivoting near the eye.
func (m *TouchInputModule) shouldStartDrag(data *PointerEventData) bool {
	if !data.UseDragThreshold {
		return true
	}

	if !data.RayPointer {
		t := m.cfg.PixelDragThreshold
		return data.PressPosition.Sub(data.Position).SqrMagnitude() >= t*t
	}

	if data.PointerCurrentRaycast.Node == nil {
		return false
	}
	origin := data.Ray.Origin
	if cam := data.PressEventCamera(); cam != nil {
		origin = cam.Position
	}
	pressDir := data.PointerPressRaycast.WorldPosition.Sub(origin)
	currentDir := data.PointerCurrentRaycast.WorldPosition.Sub(origin)
	pl, cl := pressDir.Len(), currentDir.Len()
	if pl == 0 || cl == 0 {
		return false
	}
	cos := float64(pressDir.Dot(currentDir) / (pl * cl))
	return cos < math.Cos(m.cfg.AngleDragThreshold*math.Pi/180)
}
