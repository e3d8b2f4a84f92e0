package touchui

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

func near32(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewNode("pos")
	node.Position = mgl32.Vec3{1, 2, -3}

	g := TweenPosition(node, mgl32.Vec3{4, 5, -6}, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	want := mgl32.Vec3{4, 5, -6}
	for i := range 3 {
		if !near32(node.Position[i], want[i], 0.01) {
			t.Errorf("Position[%d] = %f, want ~%f", i, node.Position[i], want[i])
		}
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewNode("scale")

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if !near32(node.ScaleX, 2, 0.01) || !near32(node.ScaleY, 3, 0.01) {
		t.Errorf("scale = (%f, %f), want ~(2, 3)", node.ScaleX, node.ScaleY)
	}
}

func TestTweenSizeInterpolates(t *testing.T) {
	node := NewPanel("size", 2, 2)

	g := TweenSize(node, 4, 0, 1.0, ease.Linear)
	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done at halfway")
	}
	if !near32(node.Width, 3, 0.05) || !near32(node.Height, 1, 0.05) {
		t.Errorf("size = (%f, %f), want ~(3, 1) at halfway", node.Width, node.Height)
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("should be done after full duration")
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewNode("done")
	g := TweenPosition(node, mgl32.Vec3{1, 1, 0}, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewNode("disposed")
	node.ScaleX = 1.5

	g := TweenScale(node, 3, 3, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.ScaleX != 1.5 {
		t.Errorf("ScaleX changed to %f on disposed node", node.ScaleX)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	nodeL := NewNode("linear")
	nodeC := NewNode("cubic")

	gL := TweenPosition(nodeL, mgl32.Vec3{10, 0, 0}, 1.0, ease.Linear)
	gC := TweenPosition(nodeC, mgl32.Vec3{10, 0, 0}, 1.0, ease.OutCubic)
	gL.Update(0.5)
	gC.Update(0.5)

	if near32(nodeL.Position.X(), nodeC.Position.X(), 0.1) {
		t.Errorf("easing curves should differ at midpoint: linear=%f cubic=%f",
			nodeL.Position.X(), nodeC.Position.X())
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewNode("alloc")
	g := TweenPosition(node, mgl32.Vec3{100, 100, 0}, 1.0, ease.Linear)
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestPressFeedbackWrapsCallbacks(t *testing.T) {
	node := NewPanel("button", 1, 1)
	var downs, ups int
	node.OnPointerDown = func(*PointerEventData) { downs++ }
	node.OnPointerUp = func(*PointerEventData) { ups++ }

	f := NewPressFeedback(node, 0.5, 0.2)

	node.OnPointerDown(nil)
	if downs != 1 {
		t.Fatalf("downs = %d, want 1 (existing callback kept)", downs)
	}
	if !f.Animating() {
		t.Fatal("expected animation after press")
	}
	f.Update(0.1)
	f.Update(0.1)
	if !near32(node.ScaleX, 0.5, 0.01) {
		t.Errorf("ScaleX = %f, want ~0.5 while pressed", node.ScaleX)
	}

	node.OnPointerUp(nil)
	f.Update(0.1)
	f.Update(0.1)
	if ups != 1 {
		t.Fatalf("ups = %d, want 1", ups)
	}
	if !near32(node.ScaleX, 1, 0.01) {
		t.Errorf("ScaleX = %f, want ~1 after release", node.ScaleX)
	}
	if f.Animating() {
		t.Error("animation should be finished")
	}
}
