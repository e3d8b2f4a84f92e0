package touchui

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Config is the tunable surface of a TouchInputModule.
type Config struct {
	// Axis and button names passed to the AxisInput.
	HorizontalAxis string `json:"horizontalAxis"`
	VerticalAxis   string `json:"verticalAxis"`
	SubmitButton   string `json:"submitButton"`
	CancelButton   string `json:"cancelButton"`

	// InputActionsPerSecond limits repeated move events while an axis is held.
	InputActionsPerSecond float64 `json:"inputActionsPerSecond"`
	// MoveDeadZone is the axis magnitude below which a move has no direction.
	MoveDeadZone float64 `json:"moveDeadZone"`

	// AllowActivationOnMobileDevice lets the module run without a mouse.
	AllowActivationOnMobileDevice bool `json:"allowActivationOnMobileDevice"`

	// PixelDragThreshold is the screen distance a screen pointer must move
	// from its press position before a drag starts.
	PixelDragThreshold float64 `json:"pixelDragThreshold"`
	// AngleDragThreshold is the angle in degrees, seen from the event camera,
	// a ray pointer's hit point must sweep before a drag starts.
	AngleDragThreshold float64 `json:"angleDragThreshold"`

	// ClickInterval is the longest gap in seconds between presses on the same
	// node that still counts as a multi-click.
	ClickInterval float64 `json:"clickInterval"`

	// GazeFallback raycasts the gaze pose when no hand is tracked. The gaze
	// presses with GazeClickButton.
	GazeFallback    bool   `json:"gazeFallback"`
	GazeClickButton string `json:"gazeClickButton"`

	// EnableMouse also processes the screen mouse pointer each frame.
	EnableMouse bool `json:"enableMouse"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		HorizontalAxis:                "Horizontal",
		VerticalAxis:                  "Vertical",
		SubmitButton:                  "Submit",
		CancelButton:                  "Cancel",
		InputActionsPerSecond:         10,
		MoveDeadZone:                  0.6,
		AllowActivationOnMobileDevice: true,
		PixelDragThreshold:            10,
		AngleDragThreshold:            1,
		ClickInterval:                 0.3,
		GazeClickButton:               "Jump",
	}
}

// LoadConfig parses JSON on top of DefaultConfig; fields absent from the
// document keep their defaults.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.InputActionsPerSecond <= 0:
		return errors.New("inputActionsPerSecond must be positive")
	case c.PixelDragThreshold < 0:
		return errors.New("pixelDragThreshold must not be negative")
	case c.AngleDragThreshold < 0:
		return errors.New("angleDragThreshold must not be negative")
	case c.ClickInterval < 0:
		return errors.New("clickInterval must not be negative")
	case c.MoveDeadZone < 0:
		return errors.New("moveDeadZone must not be negative")
	case c.HorizontalAxis == "" || c.VerticalAxis == "":
		return errors.New("axis names must not be empty")
	case c.SubmitButton == "" || c.CancelButton == "":
		return errors.New("submit and cancel button names must not be empty")
	case c.GazeFallback && c.GazeClickButton == "":
		return errors.New("gazeClickButton is required when gazeFallback is set")
	}
	return nil
}
