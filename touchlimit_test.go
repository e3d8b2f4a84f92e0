package touchui

import "testing"

func TestTouchLimitBand(t *testing.T) {
	l := NewTouchLimit(0.02, 0.04)

	steps := []struct {
		dist         float32
		wantPressed  bool
		wantReleased bool
		wantTouching bool
	}{
		{0.10, false, false, false},
		{0.03, false, false, false}, // inside the release band but never pressed
		{0.02, true, false, true},
		{0.01, false, false, true},
		{0.035, false, false, true}, // hysteresis holds the press
		{0.04, false, false, true},
		{0.041, false, true, false},
		{0.5, false, false, false},
		{0.0, true, false, true},
	}
	for i, s := range steps {
		p, r := l.TouchState(s.dist)
		if p != s.wantPressed || r != s.wantReleased || l.Touching() != s.wantTouching {
			t.Errorf("step %d (d=%v): pressed=%v released=%v touching=%v, want %v %v %v",
				i, s.dist, p, r, l.Touching(), s.wantPressed, s.wantReleased, s.wantTouching)
		}
	}
}

func TestNewTouchLimitClampsRelease(t *testing.T) {
	l := NewTouchLimit(0.05, 0.01)
	if l.ReleaseDistance != 0.05 {
		t.Errorf("ReleaseDistance = %v, want 0.05", l.ReleaseDistance)
	}
}

func TestTouchButtonState(t *testing.T) {
	rc := &WorldRaycaster{}
	plain := NewPanel("plain", 1, 1)
	touch := NewPanel("touch", 1, 1)
	touch.Touch = NewTouchLimit(0.1, 0.2)
	gone := NewPanel("gone", 1, 1)
	gone.Touch = NewTouchLimit(0.1, 0.2)
	gone.Dispose()

	tests := []struct {
		name string
		hit  RaycastResult
		want FramePressState
	}{
		{"miss", RaycastResult{}, PressReleased},
		{"no threshold", RaycastResult{Node: plain, Module: rc, Distance: 0}, PressReleased},
		{"disposed", RaycastResult{Node: gone, Module: rc, Distance: 0}, PressReleased},
		{"far", RaycastResult{Node: touch, Module: rc, Distance: 1}, PressNotChanged},
		{"press", RaycastResult{Node: touch, Module: rc, Distance: 0.05}, PressPressed},
		{"hold", RaycastResult{Node: touch, Module: rc, Distance: 0.15}, PressNotChanged},
		{"release", RaycastResult{Node: touch, Module: rc, Distance: 0.3}, PressReleased},
	}
	for _, tt := range tests {
		if got := touchButtonState(tt.hit); got != tt.want {
			t.Errorf("%s: touchButtonState = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPressStateFrom(t *testing.T) {
	tests := []struct {
		pressed, released bool
		want              FramePressState
	}{
		{false, false, PressNotChanged},
		{true, false, PressPressed},
		{false, true, PressReleased},
		{true, true, PressPressedAndReleased},
	}
	for _, tt := range tests {
		got := pressStateFrom(tt.pressed, tt.released)
		if got != tt.want {
			t.Errorf("pressStateFrom(%v, %v) = %v, want %v", tt.pressed, tt.released, got, tt.want)
		}
		if got.PressedThisFrame() != tt.pressed || got.ReleasedThisFrame() != tt.released {
			t.Errorf("%v: PressedThisFrame=%v ReleasedThisFrame=%v", got, got.PressedThisFrame(), got.ReleasedThisFrame())
		}
	}
}

func TestTouchLimitReset(t *testing.T) {
	l := NewTouchLimit(1, 2)
	l.TouchState(0.5)
	if !l.Touching() {
		t.Fatal("should latch inside the press band")
	}
	if p, r := l.TouchState(0.5); p || r {
		t.Errorf("latched band = (%v, %v), want no edge", p, r)
	}
	l.Reset()
	if l.Touching() {
		t.Error("Reset should drop the latch")
	}
	if p, _ := l.TouchState(0.5); !p {
		t.Error("after Reset the band should press again")
	}
}
