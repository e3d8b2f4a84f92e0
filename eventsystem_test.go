package touchui

import "testing"

// --- Selection ---

func TestSetSelectedOrder(t *testing.T) {
	es := NewEventSystem()
	var log []string
	es.OnEvent(func(ev Event) { log = append(log, ev.Type.String()+" "+ev.Node.Name) })
	a, b := NewPanel("a", 1, 1), NewPanel("b", 1, 1)
	handle(a, EventSelect, EventDeselect)
	handle(b, EventSelect, EventDeselect)

	es.SetSelected(a, nil)
	es.SetSelected(a, nil) // unchanged
	es.SetSelected(b, nil)
	es.SetSelected(nil, nil)

	assertEvents(t, log, "select a", "deselect a", "select b", "deselect b")
	if es.CurrentSelected() != nil {
		t.Errorf("CurrentSelected = %s, want nil", nodeName(es.CurrentSelected()))
	}
}

func TestSetSelectedReentrantIgnored(t *testing.T) {
	es := NewEventSystem()
	a, b := NewPanel("a", 1, 1), NewPanel("b", 1, 1)
	var guarded bool
	a.OnSelect = func(*BaseEventData) {
		guarded = es.AlreadySelecting()
		es.SetSelected(b, nil)
	}

	es.SetSelected(a, nil)
	if !guarded {
		t.Error("AlreadySelecting should be true inside a select handler")
	}
	if es.CurrentSelected() != a {
		t.Errorf("CurrentSelected = %s, want a", nodeName(es.CurrentSelected()))
	}
	if es.AlreadySelecting() {
		t.Error("guard should be released after the change")
	}
}

func TestSelectionOfDisposedNode(t *testing.T) {
	es := NewEventSystem()
	a := NewPanel("a", 1, 1)
	es.SetSelected(a, nil)
	a.Dispose()
	if es.CurrentSelected() != nil {
		t.Error("a disposed selection should read as nil")
	}

	gone := NewPanel("gone", 1, 1)
	gone.Dispose()
	es.SetSelected(gone, nil)
	if es.CurrentSelected() != nil {
		t.Error("selecting a disposed node should select nothing")
	}
}

func TestSelectedNodeFromEventData(t *testing.T) {
	es := NewEventSystem()
	a := NewPanel("a", 1, 1)
	var seen *Node
	a.OnSelect = func(d *BaseEventData) { seen = d.SelectedNode() }
	es.SetSelected(a, nil)
	if seen != a {
		t.Errorf("SelectedNode = %s, want a", nodeName(seen))
	}
	if (&BaseEventData{}).SelectedNode() != nil {
		t.Error("detached event data has no selection")
	}
}

// --- Modules ---

type fakeModule struct {
	name      string
	supported bool
	activate  bool
	log       *[]string
}

func (f *fakeModule) IsModuleSupported() bool { return f.supported }
func (f *fakeModule) ShouldActivateModule() bool { return f.activate }
func (f *fakeModule) ActivateModule() { *f.log = append(*f.log, "activate "+f.name) }
func (f *fakeModule) DeactivateModule() { *f.log = append(*f.log, "deactivate "+f.name) }
func (f *fakeModule) UpdateModule() { *f.log = append(*f.log, "update "+f.name) }
func (f *fakeModule) Process() { *f.log = append(*f.log, "process "+f.name) }

func TestEventSystemModuleSwitching(t *testing.T) {
	var log []string
	es := NewEventSystem()
	a := &fakeModule{name: "a", supported: true, log: &log}
	b := &fakeModule{name: "b", supported: true, log: &log}
	es.AddModule(a)
	es.AddModule(b)

	// Nothing current: the first supported module takes over.
	es.Update()
	assertEvents(t, log, "update a", "update b", "activate a", "process a")
	log = nil

	// a stays current even though b asks; a comes first.
	b.activate = true
	es.Update()
	assertEvents(t, log, "update a", "update b", "process a")
	log = nil

	// a loses support: b takes over.
	a.supported = false
	es.Update()
	assertEvents(t, log, "update a", "update b", "deactivate a", "activate b", "process b")
	if es.CurrentModule() != b {
		t.Error("b should be current")
	}
	log = nil

	// a regains support and asks to activate: it comes first, so it wins.
	a.supported, a.activate = true, true
	es.Update()
	assertEvents(t, log, "update a", "update b", "deactivate b", "activate a", "process a")
}

func TestEventSystemNoSupportedModule(t *testing.T) {
	var log []string
	es := NewEventSystem()
	es.AddModule(&fakeModule{name: "a", log: &log})
	es.Update()
	assertEvents(t, log, "update a")
	if es.CurrentModule() != nil {
		t.Error("no module should be current")
	}
}

// --- Dispatch ---

func TestExecuteHierarchyFindsNearestHandler(t *testing.T) {
	es := NewEventSystem()
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewPanel("leaf", 1, 1)
	root.AddChild(mid)
	mid.AddChild(leaf)
	handle(root, EventPointerDown)
	handle(mid, EventPointerDown)

	data := newPointerEventData(es, PointerHand, true)
	if got := es.executeHierarchy(leaf, data, EventPointerDown); got != mid {
		t.Errorf("executeHierarchy = %s, want mid", nodeName(got))
	}
	if got := es.executeHierarchy(leaf, data, EventPointerClick); got != nil {
		t.Errorf("executeHierarchy = %s, want nil", nodeName(got))
	}
	if got := es.executeHierarchy(nil, data, EventPointerDown); got != nil {
		t.Errorf("executeHierarchy(nil) = %s, want nil", nodeName(got))
	}
}

func TestExecuteSkipsNodesWithoutHandler(t *testing.T) {
	es := NewEventSystem()
	var calls int
	es.OnEvent(func(Event) { calls++ })
	n := NewPanel("n", 1, 1)

	if es.execute(n, newPointerEventData(es, PointerHand, true), EventPointerDown) {
		t.Error("execute should report false without a handler")
	}
	if calls != 0 {
		t.Error("observers should only see handled events")
	}
}

func TestExecuteWrongPayloadIsIgnored(t *testing.T) {
	es := NewEventSystem()
	n := NewPanel("n", 1, 1)
	var called bool
	n.OnPointerDown = func(*PointerEventData) { called = true }
	es.execute(n, &BaseEventData{es: es}, EventPointerDown)
	if called {
		t.Error("pointer callback should not run with a base payload")
	}
}

func TestObserverCanDisposeTarget(t *testing.T) {
	es := NewEventSystem()
	n := NewPanel("n", 1, 1)
	var called bool
	n.OnPointerClick = func(*PointerEventData) { called = true }
	es.OnEvent(func(ev Event) { ev.Node.Dispose() })

	es.execute(n, newPointerEventData(es, PointerHand, true), EventPointerClick)
	if called {
		t.Error("callback of a node disposed by an observer should not run")
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	es := NewEventSystem()
	n := NewPanel("n", 1, 1)
	handle(n, EventSubmit)
	var first, second int
	h1 := es.OnEvent(func(Event) { first++ })
	es.OnEvent(func(Event) { second++ })

	es.execute(n, &BaseEventData{es: es}, EventSubmit)
	h1.Remove()
	h1.Remove() // no-op
	es.execute(n, &BaseEventData{es: es}, EventSubmit)

	if first != 1 || second != 2 {
		t.Errorf("calls = %d, %d; want 1, 2", first, second)
	}
	CallbackHandle{}.Remove()
}

func TestEventPayloads(t *testing.T) {
	es := NewEventSystem()
	n := NewPanel("n", 1, 1)
	handle(n, EventPointerUp, EventMove, EventCancel)
	var got []Event
	es.OnEvent(func(ev Event) { got = append(got, ev) })

	pd := newPointerEventData(es, PointerHand, true)
	ad := &AxisEventData{BaseEventData: BaseEventData{es: es}, MoveDir: MoveUp}
	es.execute(n, pd, EventPointerUp)
	es.execute(n, ad, EventMove)
	es.execute(n, &BaseEventData{es: es}, EventCancel)

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].Pointer != pd || got[0].Axis != nil {
		t.Error("pointer event should carry the pointer record")
	}
	if got[1].Axis != ad || got[1].Pointer != nil {
		t.Error("move event should carry the axis data")
	}
	if got[2].Pointer != nil || got[2].Axis != nil {
		t.Error("cancel event carries no payload")
	}
}

// --- ECS bridge ---

type recordingStore struct{ events []InteractionEvent }

func (s *recordingStore) EmitEvent(ev InteractionEvent) { s.events = append(s.events, ev) }

func TestEntityStoreReceivesBoundEvents(t *testing.T) {
	h := newHarness(t)
	store := &recordingStore{}
	h.es.SetEntityStore(store)

	bound := h.addPanel("bound", -1, 0, 1, 1)
	bound.EntityID = 7
	bound.Touch = script(PressPressed)
	handle(bound, EventPointerEnter, EventPointerDown)
	plain := h.addPanel("plain", 1, 0, 1, 1)
	plain.Touch = farTouch()
	handle(plain, EventPointerEnter)

	h.aim(-1, 0)
	h.frame()
	h.aim(1, 0)
	h.frame()

	if len(store.events) != 2 {
		t.Fatalf("got %d store events, want 2", len(store.events))
	}
	down := store.events[0]
	if down.Type != EventPointerDown || down.EntityID != 7 || down.PointerID != PointerHand || down.Hand != HandRight {
		t.Errorf("down = %+v", down)
	}
	if down.Distance < 1.9 || down.WorldZ > -1.9 {
		t.Errorf("down hit data = %+v", down)
	}
	if store.events[1].Type != EventPointerEnter {
		t.Errorf("second event = %v, want pointerEnter", store.events[1].Type)
	}
}

func TestEntityStoreMoveDirection(t *testing.T) {
	h, sel, _ := navHarness(t)
	store := &recordingStore{}
	h.es.SetEntityStore(store)
	sel.EntityID = 3
	h.axes.axis["Vertical"] = 1

	h.frame()
	if len(store.events) != 1 || store.events[0].MoveDir != MoveUp || store.events[0].EntityID != 3 {
		t.Errorf("store events = %+v", store.events)
	}
}
