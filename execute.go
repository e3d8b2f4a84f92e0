package touchui

// EntityStore is the interface for optional ECS integration.
// When set on an EventSystem, delivered events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	PointerID int
	Hand      HandType
	ScreenX   float64
	ScreenY   float64
	// World hit point of the pointer's current raycast.
	WorldX, WorldY, WorldZ float32
	Distance               float32
	ClickCount             int
	ScrollX, ScrollY       float64
	// Navigation fields (valid for EventMove)
	MoveDir MoveDirection
}

// Event describes one delivered event, as seen by scene-level observers.
// Pointer is set for pointer events, Axis for move events; both are nil for
// selection, submit and cancel.
type Event struct {
	Type    EventType
	Node    *Node
	Pointer *PointerEventData
	Axis    *AxisEventData
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	handlers []eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

// OnEvent registers an observer called for every event delivered to a node
// that handles it, before the node's own callback runs.
func (es *EventSystem) OnEvent(fn func(Event)) CallbackHandle {
	es.handlers.nextID++
	id := es.handlers.nextID
	es.handlers.handlers = append(es.handlers.handlers, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &es.handlers}
}

// --- Capability dispatch ---

// hasHandler reports whether n implements the capability for kind.
func hasHandler(n *Node, kind EventType) bool {
	switch kind {
	case EventPointerEnter:
		return n.OnPointerEnter != nil
	case EventPointerExit:
		return n.OnPointerExit != nil
	case EventPointerDown:
		return n.OnPointerDown != nil
	case EventPointerUp:
		return n.OnPointerUp != nil
	case EventPointerClick:
		return n.OnPointerClick != nil
	case EventInitializePotentialDrag:
		return n.OnInitializePotentialDrag != nil
	case EventBeginDrag:
		return n.OnBeginDrag != nil
	case EventDrag:
		return n.OnDrag != nil
	case EventEndDrag:
		return n.OnEndDrag != nil
	case EventDrop:
		return n.OnDrop != nil
	case EventScroll:
		return n.OnScroll != nil
	case EventUpdateSelected:
		return n.OnUpdateSelected != nil
	case EventSelect:
		return n.OnSelect != nil
	case EventDeselect:
		return n.OnDeselect != nil
	case EventMove:
		return n.OnMove != nil
	case EventSubmit:
		return n.OnSubmit != nil
	case EventCancel:
		return n.OnCancel != nil
	}
	return false
}

// invoke calls n's callback for kind. The payload type must match the
// callback: pointer events take *PointerEventData, move takes
// *AxisEventData, everything else *BaseEventData.
func invoke(n *Node, kind EventType, data eventData) {
	switch kind {
	case EventUpdateSelected, EventSelect, EventDeselect, EventSubmit, EventCancel:
		fn := baseCallback(n, kind)
		fn(data.base())
		return
	case EventMove:
		if ad, ok := data.(*AxisEventData); ok {
			n.OnMove(ad)
		}
		return
	}
	pd, ok := data.(*PointerEventData)
	if !ok {
		return
	}
	switch kind {
	case EventPointerEnter:
		n.OnPointerEnter(pd)
	case EventPointerExit:
		n.OnPointerExit(pd)
	case EventPointerDown:
		n.OnPointerDown(pd)
	case EventPointerUp:
		n.OnPointerUp(pd)
	case EventPointerClick:
		n.OnPointerClick(pd)
	case EventInitializePotentialDrag:
		n.OnInitializePotentialDrag(pd)
	case EventBeginDrag:
		n.OnBeginDrag(pd)
	case EventDrag:
		n.OnDrag(pd)
	case EventEndDrag:
		n.OnEndDrag(pd)
	case EventDrop:
		n.OnDrop(pd)
	case EventScroll:
		n.OnScroll(pd)
	}
}

func baseCallback(n *Node, kind EventType) func(*BaseEventData) {
	switch kind {
	case EventUpdateSelected:
		return n.OnUpdateSelected
	case EventSelect:
		return n.OnSelect
	case EventDeselect:
		return n.OnDeselect
	case EventSubmit:
		return n.OnSubmit
	default:
		return n.OnCancel
	}
}

// getEventHandler returns the nearest node at or above n that handles kind,
// or nil.
func getEventHandler(n *Node, kind EventType) *Node {
	for p := n; p != nil; p = p.Parent {
		if !p.disposed && hasHandler(p, kind) {
			return p
		}
	}
	return nil
}

// execute delivers kind to target if target handles it. It reports whether a
// handler ran. A nil or disposed target is a no-op.
func (es *EventSystem) execute(target *Node, data eventData, kind EventType) bool {
	if !alive(target) || !hasHandler(target, kind) {
		return false
	}
	ev := Event{Type: kind, Node: target}
	switch d := data.(type) {
	case *PointerEventData:
		ev.Pointer = d
	case *AxisEventData:
		ev.Axis = d
	}
	for _, h := range es.handlers.handlers {
		h.fn(ev)
	}
	// An observer may have disposed the target.
	if hasHandler(target, kind) {
		invoke(target, kind, data)
	}
	es.emitInteractionEvent(ev)
	return true
}

// executeHierarchy delivers kind to the nearest node at or above root that
// handles it and returns that node, or nil when none does.
func (es *EventSystem) executeHierarchy(root *Node, data eventData, kind EventType) *Node {
	h := getEventHandler(root, kind)
	if h == nil {
		return nil
	}
	es.execute(h, data, kind)
	return h
}

// --- ECS bridge ---

func (es *EventSystem) emitInteractionEvent(ev Event) {
	if es.store == nil || ev.Node == nil || ev.Node.EntityID == 0 {
		return
	}
	ie := InteractionEvent{Type: ev.Type, EntityID: ev.Node.EntityID}
	if p := ev.Pointer; p != nil {
		wp := p.PointerCurrentRaycast.WorldPosition
		ie.PointerID = p.PointerID
		ie.Hand = p.Hand
		ie.ScreenX, ie.ScreenY = p.Position.X, p.Position.Y
		ie.WorldX, ie.WorldY, ie.WorldZ = wp.X(), wp.Y(), wp.Z()
		ie.Distance = p.PointerCurrentRaycast.Distance
		ie.ClickCount = p.ClickCount
		ie.ScrollX, ie.ScrollY = p.ScrollDelta.X, p.ScrollDelta.Y
	}
	if a := ev.Axis; a != nil {
		ie.MoveDir = a.MoveDir
	}
	es.store.EmitEvent(ie)
}
