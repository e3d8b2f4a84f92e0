// Package ecs provides ECS adapters for touchui's event system.
//
// The primary adapter is [NewDonburiStore], which forwards every event
// delivered to a bound node (hover, press, click, drag, scroll, selection and
// navigation) into a [Donburi] world as a typed event. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Entities bound with [DonburiStore.Bind] that carry [InteractionComponent]
// also have their hover, press and click state kept up to date, so systems
// can poll it instead of subscribing.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	es.SetEntityStore(store)
//	store.Bind(entity, node)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
