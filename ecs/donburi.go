package ecs

import (
	"github.com/phanxgames/touchui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for touchui interaction events.
// Subscribe to this in your ECS systems to receive pointer, drag, selection
// and navigation events.
var InteractionEventType = events.NewEventType[touchui.InteractionEvent]()

// Interaction is the polled interaction state of a bound entity.
type Interaction struct {
	Hovered  bool
	Pressed  bool
	Dragging bool
	Selected bool
	// Clicks counts click events; ClickCount is the multi-click count of
	// the latest one.
	Clicks     int
	ClickCount int
	// Hand is the hand that produced the latest pointer event.
	Hand touchui.HandType
	Last touchui.InteractionEvent
}

// InteractionComponent holds an entity's Interaction state. Add it to an
// entity to have DonburiStore keep it current.
var InteractionComponent = donburi.NewComponentType[Interaction]()

// DonburiStore is an EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	nextID   uint32
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[uint32]donburi.Entity)}
}

// Bind links node to entity: the node gets a fresh EntityID, and events the
// node receives update the entity's InteractionComponent if it has one.
func (s *DonburiStore) Bind(entity donburi.Entity, node *touchui.Node) {
	if node.EntityID != 0 {
		delete(s.entities, node.EntityID)
	}
	s.nextID++
	node.EntityID = s.nextID
	s.entities[node.EntityID] = entity
}

// Unbind removes node's link and clears its EntityID.
func (s *DonburiStore) Unbind(node *touchui.Node) {
	delete(s.entities, node.EntityID)
	node.EntityID = 0
}

// Entity returns the entity bound to an EntityID.
func (s *DonburiStore) Entity(id uint32) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// EmitEvent implements touchui.EntityStore.
func (s *DonburiStore) EmitEvent(event touchui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)

	e, ok := s.entities[event.EntityID]
	if !ok || !s.world.Valid(e) {
		return
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(InteractionComponent) {
		return
	}
	applyEvent(InteractionComponent.Get(entry), event)
}

func applyEvent(st *Interaction, event touchui.InteractionEvent) {
	st.Last = event
	switch event.Type {
	case touchui.EventPointerEnter:
		st.Hovered = true
	case touchui.EventPointerExit:
		st.Hovered = false
	case touchui.EventPointerDown:
		st.Pressed = true
	case touchui.EventPointerUp:
		st.Pressed = false
	case touchui.EventPointerClick:
		st.Clicks++
		st.ClickCount = event.ClickCount
	case touchui.EventBeginDrag:
		st.Dragging = true
	case touchui.EventEndDrag:
		st.Dragging = false
	case touchui.EventSelect:
		st.Selected = true
	case touchui.EventDeselect:
		st.Selected = false
	}
	if event.PointerID != 0 {
		st.Hand = event.Hand
	}
}
