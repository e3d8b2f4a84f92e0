package touchui

import "slices"

// InputModule is a per-frame input processor driven by an EventSystem.
type InputModule interface {
	// IsModuleSupported reports whether the platform can drive this module.
	IsModuleSupported() bool
	// ShouldActivateModule reports whether the module wants to take over
	// this frame.
	ShouldActivateModule() bool
	// ActivateModule is called when the module becomes the current module.
	ActivateModule()
	// DeactivateModule is called when another module takes over.
	DeactivateModule()
	// UpdateModule runs every frame for every module, active or not.
	UpdateModule()
	// Process runs once per frame on the current module.
	Process()
}

// EventSystem owns the selection, the registered raycasters and the input
// modules. Call Update once per frame; nothing in touchui is safe for
// concurrent use.
type EventSystem struct {
	// SendNavigationEvents enables move, submit and cancel processing.
	SendNavigationEvents bool

	raycasters []Raycaster
	modules    []InputModule
	current    InputModule

	selected       *Node
	firstSelected  *Node
	selectionGuard bool
	selectData     BaseEventData

	handlers handlerRegistry
	store    EntityStore
	debug    bool
}

// NewEventSystem creates an event system with navigation events enabled.
func NewEventSystem() *EventSystem {
	es := &EventSystem{SendNavigationEvents: true}
	es.selectData.es = es
	return es
}

// --- Raycasters ---

// AddRaycaster registers a raycaster. Results from all raycasters are merged.
func (es *EventSystem) AddRaycaster(r Raycaster) {
	es.raycasters = append(es.raycasters, r)
}

// RemoveRaycaster unregisters a raycaster.
func (es *EventSystem) RemoveRaycaster(r Raycaster) {
	for i, c := range es.raycasters {
		if c == r {
			es.raycasters = append(es.raycasters[:i], es.raycasters[i+1:]...)
			return
		}
	}
}

// RaycastAll runs every raycaster for the pointer and returns the hits
// nearest first. On equal distance the deeper node wins. results is reused.
func (es *EventSystem) RaycastAll(data *PointerEventData, results []RaycastResult) []RaycastResult {
	results = results[:0]
	for _, r := range es.raycasters {
		results = r.Raycast(data, results)
	}
	slices.SortStableFunc(results, func(a, b RaycastResult) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return b.Depth - a.Depth
	})
	return results
}

// --- Selection ---

// CurrentSelected returns the selected node, or nil.
func (es *EventSystem) CurrentSelected() *Node {
	if !alive(es.selected) {
		return nil
	}
	return es.selected
}

// FirstSelected returns the node selected on activation when nothing is.
func (es *EventSystem) FirstSelected() *Node {
	return es.firstSelected
}

// SetFirstSelected sets the node selected on activation when nothing is.
func (es *EventSystem) SetFirstSelected(n *Node) {
	es.firstSelected = n
}

// AlreadySelecting reports whether a selection change is in progress.
func (es *EventSystem) AlreadySelecting() bool {
	return es.selectionGuard
}

// SetSelected changes the selection, sending deselect to the old node and
// select to the new one. Calls made from inside a select or deselect
// handler are ignored. data may be nil.
func (es *EventSystem) SetSelected(n *Node, data *BaseEventData) {
	if es.selectionGuard {
		if es.debug {
			debugf("attempted to select %q while already selecting", nodeName(n))
		}
		return
	}
	if !alive(n) {
		n = nil
	}
	if n == es.CurrentSelected() {
		return
	}
	if data == nil {
		es.selectData.Reset()
		data = &es.selectData
	}
	es.selectionGuard = true
	es.execute(es.CurrentSelected(), data, EventDeselect)
	es.selected = n
	es.execute(n, data, EventSelect)
	es.selectionGuard = false
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// --- Modules ---

// AddModule registers an input module. The first supported module that asks
// to activate becomes current.
func (es *EventSystem) AddModule(m InputModule) {
	es.modules = append(es.modules, m)
}

// CurrentModule returns the active input module, or nil.
func (es *EventSystem) CurrentModule() InputModule {
	return es.current
}

// Update ticks every module, switches to the first supported module that
// wants to activate (keeping the current one if it is still supported), and
// processes the current module.
func (es *EventSystem) Update() {
	for _, m := range es.modules {
		m.UpdateModule()
	}

	if es.current != nil && !es.current.IsModuleSupported() {
		es.changeModule(nil)
	}
	for _, m := range es.modules {
		if !m.IsModuleSupported() {
			continue
		}
		if m == es.current {
			break
		}
		if m.ShouldActivateModule() || es.current == nil {
			es.changeModule(m)
			break
		}
	}

	if es.current != nil {
		es.current.Process()
	}
}

func (es *EventSystem) changeModule(m InputModule) {
	if es.current == m {
		return
	}
	if es.current != nil {
		es.current.DeactivateModule()
	}
	es.current = m
	if m != nil {
		m.ActivateModule()
	}
}

// --- Options ---

// SetEntityStore sets the optional ECS bridge.
func (es *EventSystem) SetEntityStore(store EntityStore) {
	es.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and hand-lock transitions
// and rejected selections are logged to stderr.
func (es *EventSystem) SetDebugMode(enabled bool) {
	es.debug = enabled
	globalDebug = enabled
}
