package touchui

// processNavigation drives the selected node: an update every frame, then
// submit and cancel edges, then rate-limited moves. Nothing happens while no
// node is selected.
func (m *TouchInputModule) processNavigation() {
	if m.es.CurrentSelected() == nil {
		return
	}
	used := m.sendUpdateEventToSelectedNode()
	if !m.es.SendNavigationEvents {
		return
	}
	if !used {
		used = m.sendSubmitEventToSelectedNode()
	}
	if !used {
		m.sendMoveEventToSelectedNode()
	}
}

func (m *TouchInputModule) sendUpdateEventToSelectedNode() bool {
	sel := m.es.CurrentSelected()
	if sel == nil {
		return false
	}
	data := m.getBaseEventData()
	m.es.execute(sel, data, EventUpdateSelected)
	return data.Used()
}

func (m *TouchInputModule) sendSubmitEventToSelectedNode() bool {
	if m.es.CurrentSelected() == nil {
		return false
	}
	data := m.getBaseEventData()
	if m.axes.ButtonDown(m.cfg.SubmitButton) {
		m.es.execute(m.es.CurrentSelected(), data, EventSubmit)
	}
	// Submit may have changed the selection.
	if m.axes.ButtonDown(m.cfg.CancelButton) {
		m.es.execute(m.es.CurrentSelected(), data, EventCancel)
	}
	return data.Used()
}

// allowMoveEventProcessing reports whether a move may be sent now: on an
// axis button edge, or once the repeat timer has run out.
func (m *TouchInputModule) allowMoveEventProcessing(now float64) bool {
	return m.axes.ButtonDown(m.cfg.HorizontalAxis) ||
		m.axes.ButtonDown(m.cfg.VerticalAxis) ||
		now > m.nextAction
}

// getRawMoveVector reads both axes. On the frame an axis button goes down
// its value snaps to -1 or 1 so a light tap still moves.
func (m *TouchInputModule) getRawMoveVector() Vec2 {
	move := Vec2{
		X: m.axes.AxisRaw(m.cfg.HorizontalAxis),
		Y: m.axes.AxisRaw(m.cfg.VerticalAxis),
	}
	if m.axes.ButtonDown(m.cfg.HorizontalAxis) {
		move.X = snapAxis(move.X)
	}
	if m.axes.ButtonDown(m.cfg.VerticalAxis) {
		move.Y = snapAxis(move.Y)
	}
	return move
}

func snapAxis(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func (m *TouchInputModule) sendMoveEventToSelectedNode() bool {
	now := m.clock.Now()
	if !m.allowMoveEventProcessing(now) {
		return false
	}

	move := m.getRawMoveVector()
	data := m.getAxisEventData(move.X, move.Y, m.cfg.MoveDeadZone)
	if !approxZero(move.X) || !approxZero(move.Y) {
		m.es.execute(m.es.CurrentSelected(), data, EventMove)
	}
	m.nextAction = now + 1/m.cfg.InputActionsPerSecond
	return data.Used()
}
