package touchui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float32 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenSize) and call Update(dt) each frame. If the target node is disposed,
// the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float32
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves node.Position to the given
// local position over duration seconds.
func TweenPosition(node *Node, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := range 3 {
		g.tweens[i] = gween.New(node.Position[i], to[i], duration, fn)
		g.fields[i] = &node.Position[i]
	}
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(node.ScaleX, toSX, duration, fn)
	g.tweens[1] = gween.New(node.ScaleY, toSY, duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenSize creates a TweenGroup that resizes node's hit quad.
func TweenSize(node *Node, toW, toH float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(node.Width, toW, duration, fn)
	g.tweens[1] = gween.New(node.Height, toH, duration, fn)
	g.fields[0] = &node.Width
	g.fields[1] = &node.Height
	return g
}

// PressFeedback shrinks a node while a pointer holds it pressed and grows it
// back on release. Scaling keeps the quad in its plane, so the hit distance
// the node's touch threshold sees does not change.
type PressFeedback struct {
	// PressScale is the scale the node shrinks to.
	PressScale float32
	// Duration is the length of each transition in seconds.
	Duration float32

	node  *Node
	group *TweenGroup
}

// NewPressFeedback wraps node's pointer down and up callbacks (keeping any
// already set) with the scale animation. Call Update every frame.
func NewPressFeedback(node *Node, pressScale, duration float32) *PressFeedback {
	f := &PressFeedback{PressScale: pressScale, Duration: duration, node: node}
	down, up := node.OnPointerDown, node.OnPointerUp
	node.OnPointerDown = func(d *PointerEventData) {
		f.group = TweenScale(f.node, f.PressScale, f.PressScale, f.Duration, ease.OutQuad)
		if down != nil {
			down(d)
		}
	}
	node.OnPointerUp = func(d *PointerEventData) {
		f.group = TweenScale(f.node, 1, 1, f.Duration, ease.OutBack)
		if up != nil {
			up(d)
		}
	}
	return f
}

// Update advances the running transition, if any.
func (f *PressFeedback) Update(dt float32) {
	if f.group != nil {
		f.group.Update(dt)
	}
}

// Animating reports whether a transition is still running.
func (f *PressFeedback) Animating() bool {
	return f.group != nil && !f.group.Done
}
