package touchui

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string     `json:"action"`
	Hand    string     `json:"hand,omitempty"`
	Pos     mgl32.Vec3 `json:"pos"`
	Yaw     float32    `json:"yaw,omitempty"`
	Pitch   float32    `json:"pitch,omitempty"`
	ToPos   mgl32.Vec3 `json:"toPos"`
	ToYaw   float32    `json:"toYaw,omitempty"`
	ToPitch float32    `json:"toPitch,omitempty"`
	Frames  int        `json:"frames,omitempty"`

	hand HandType
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scripted hand poses across frames for automated
// interaction tests. Attach to a TouchInputModule whose hand source is a
// ManualHands via SetTestRunner.
//
// Actions: "pose" places a hand, "hide" stops tracking it, "sweep" moves it
// from pos/yaw/pitch to toPos/toYaw/toPitch over frames, and "wait" idles.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a module via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "pose", "hide", "sweep":
			h, err := parseHand(st.Hand)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			st.hand = h
		case "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseHand(s string) (HandType, error) {
	switch s {
	case "left":
		return HandLeft, nil
	case "right":
		return HandRight, nil
	}
	return HandNone, fmt.Errorf("unknown hand %q", s)
}

// SetTestRunner attaches a TestRunner to the module. The runner's step
// method is called from UpdateModule before queued hand frames are applied.
func (m *TouchInputModule) SetTestRunner(runner *TestRunner) {
	m.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(h *ManualHands) {
	if r.done {
		return
	}
	// Wait for queued poses to drain before advancing.
	if h.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "pose":
		h.InjectPose(st.hand, PoseLookingAt(st.Pos, st.Yaw, st.Pitch))
	case "hide":
		h.InjectHide(st.hand)
	case "sweep":
		h.InjectSweep(st.hand,
			PoseLookingAt(st.Pos, st.Yaw, st.Pitch),
			PoseLookingAt(st.ToPos, st.ToYaw, st.ToPitch),
			st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && h.Pending() == 0 {
		r.done = true
	}
}
