// Package touchui routes hand-tracked pointers into UI events for
// world-space interfaces built on [Ebitengine].
//
// Each frame a [TouchInputModule] arbitrates the two tracked hands into a
// single pointer, raycasts it against the registered [Raycaster]s, turns the
// hit distance into press and release edges through the hit node's
// [TouchThreshold], and runs the hover, press, click, drag and scroll
// pipeline on that pointer's persistent record. A selected node also
// receives update, submit, cancel and move events from axis input.
//
// # Quick start
//
//	es := touchui.NewEventSystem()
//	root := touchui.NewNode("ui")
//	button := touchui.NewPanel("ok", 0.2, 0.1)
//	button.Position = mgl32.Vec3{0, 0, -0.5}
//	button.Touch = touchui.NewTouchLimit(0.01, 0.02)
//	button.OnPointerClick = func(d *touchui.PointerEventData) { ... }
//	root.AddChild(button)
//
//	cam := touchui.NewCamera(touchui.Rect{Width: 1280, Height: 720})
//	es.AddRaycaster(touchui.NewWorldRaycaster(root, cam))
//
//	m := touchui.NewTouchInputModule(es, touchui.DefaultConfig())
//	m.SetHandSource(tracker) // anything implementing HandSource
//
//	// once per frame:
//	es.Update()
//
// # Hands
//
// With one hand tracked, that hand drives the pointer. With both tracked,
// the hand whose ray hits the UI wins; when both hit, the hand already
// holding the lock keeps it, and a fresh entry goes to the nearer hit. With
// no hand tracked the pointer is parked off screen and released, or, when
// [Config.GazeFallback] is set, follows the gaze.
//
// # Events
//
// A node handles an event when the matching callback field is set
// ([Node.OnPointerDown], [Node.OnDrag], ...). Press, click, drag and scroll
// go to the nearest handling node at or above the hit node. Enter and exit
// are sent along the ancestor chain up to the common ancestor of the old and
// new target. [EventSystem.OnEvent] observes every delivered event, and an
// [EntityStore] (see the ecs subpackage) forwards them into an ECS world.
//
// [Ebitengine]: https://ebitengine.org
package touchui
