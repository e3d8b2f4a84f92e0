package touchui

import (
	"math"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyAxis binds a named virtual axis to keys, standard gamepad buttons and
// optionally a gamepad stick.
type KeyAxis struct {
	Negative, Positive       []ebiten.Key
	PadNegative, PadPositive []ebiten.StandardGamepadButton

	// Stick reads PadAxis when no key or button is held. Invert flips its
	// sign (stick Y grows downward, a vertical axis grows upward).
	Stick   bool
	PadAxis ebiten.StandardGamepadAxis
	Invert  bool
}

// EbitenInput implements AxisInput and MouseSource on top of ebiten's
// keyboard, gamepad and mouse state. Call Update once per tick before the
// event system updates.
type EbitenInput struct {
	Axes       map[string]KeyAxis
	Buttons    map[string][]ebiten.Key
	PadButtons map[string][]ebiten.StandardGamepadButton
	// StickDeadZone zeroes stick values whose magnitude is below it.
	StickDeadZone float64

	gamepads []ebiten.GamepadID
}

// NewEbitenInput returns an input bound to the axis and button names of
// DefaultConfig: arrows and WASD for the axes, Enter for submit, Escape for
// cancel, Space for the gaze click, and the standard gamepad equivalents.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		Axes: map[string]KeyAxis{
			"Horizontal": {
				Negative:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
				Positive:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
				PadNegative: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
				PadPositive: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
				Stick:       true,
				PadAxis:     ebiten.StandardGamepadAxisLeftStickHorizontal,
			},
			"Vertical": {
				Negative:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
				Positive:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
				PadNegative: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
				PadPositive: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
				Stick:       true,
				PadAxis:     ebiten.StandardGamepadAxisLeftStickVertical,
				Invert:      true,
			},
		},
		Buttons: map[string][]ebiten.Key{
			"Submit": {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			"Cancel": {ebiten.KeyEscape},
			"Jump":   {ebiten.KeySpace},
		},
		PadButtons: map[string][]ebiten.StandardGamepadButton{
			"Submit": {ebiten.StandardGamepadButtonRightBottom},
			"Cancel": {ebiten.StandardGamepadButtonRightRight},
			"Jump":   {ebiten.StandardGamepadButtonRightLeft},
		},
		StickDeadZone: 0.19,
	}
}

// Update refreshes the list of connected standard gamepads.
func (e *EbitenInput) Update() {
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
}

// ButtonDown implements AxisInput. For an axis name it reports a press of
// any of the axis's keys or buttons.
func (e *EbitenInput) ButtonDown(name string) bool {
	return e.edge(name, inpututil.IsKeyJustPressed, inpututil.IsStandardGamepadButtonJustPressed)
}

// ButtonUp implements AxisInput.
func (e *EbitenInput) ButtonUp(name string) bool {
	return e.edge(name, inpututil.IsKeyJustReleased, inpututil.IsStandardGamepadButtonJustReleased)
}

func (e *EbitenInput) edge(name string, key func(ebiten.Key) bool, pad func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool) bool {
	if ax, ok := e.Axes[name]; ok {
		return anyKey(key, ax.Negative) || anyKey(key, ax.Positive) ||
			e.anyPad(pad, ax.PadNegative) || e.anyPad(pad, ax.PadPositive)
	}
	return anyKey(key, e.Buttons[name]) || e.anyPad(pad, e.PadButtons[name])
}

// AxisRaw implements AxisInput. Keys and digital buttons yield -1, 0 or 1;
// the stick is read only when none are held.
func (e *EbitenInput) AxisRaw(name string) float64 {
	ax, ok := e.Axes[name]
	if !ok {
		return 0
	}
	var v float64
	if anyKey(ebiten.IsKeyPressed, ax.Positive) || e.anyPad(ebiten.IsStandardGamepadButtonPressed, ax.PadPositive) {
		v++
	}
	if anyKey(ebiten.IsKeyPressed, ax.Negative) || e.anyPad(ebiten.IsStandardGamepadButtonPressed, ax.PadNegative) {
		v--
	}
	if v != 0 || !ax.Stick {
		return v
	}
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		s := ebiten.StandardGamepadAxisValue(id, ax.PadAxis)
		if math.Abs(s) < e.StickDeadZone {
			continue
		}
		if ax.Invert {
			s = -s
		}
		return s
	}
	return 0
}

func anyKey(fn func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}

func (e *EbitenInput) anyPad(fn func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool, buttons []ebiten.StandardGamepadButton) bool {
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range buttons {
			if fn(id, b) {
				return true
			}
		}
	}
	return false
}

// MousePresent implements MouseSource. Mobile platforms report no mouse.
func (e *EbitenInput) MousePresent() bool {
	return runtime.GOOS != "android" && runtime.GOOS != "ios"
}

// MousePosition implements MouseSource.
func (e *EbitenInput) MousePosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{X: float64(x), Y: float64(y)}
}

// MouseScrollDelta implements MouseSource.
func (e *EbitenInput) MouseScrollDelta() Vec2 {
	x, y := ebiten.Wheel()
	return Vec2{X: x, Y: y}
}

// MouseButtonDown implements MouseSource.
func (e *EbitenInput) MouseButtonDown(b MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(ebitenMouseButton(b))
}

// MouseButtonUp implements MouseSource.
func (e *EbitenInput) MouseButtonUp(b MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(ebitenMouseButton(b))
}

func ebitenMouseButton(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}
