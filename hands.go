package touchui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HandPose is the world-space pose of a tracked hand or of the head for gaze.
// The pointing direction is Rotation applied to Forward.
type HandPose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// PoseLookingAt returns a pose at pos whose pointing direction is yaw degrees
// to the left of -Z (rotation about +Y) and pitch degrees up (rotation about
// +X).
func PoseLookingAt(pos mgl32.Vec3, yaw, pitch float32) HandPose {
	q := mgl32.QuatRotate(mgl32.DegToRad(yaw), mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(pitch), mgl32.Vec3{1, 0, 0}))
	return HandPose{Position: pos, Rotation: q.Normalize()}
}

// PoseAlong returns a pose at pos pointing along dir, with no roll.
func PoseAlong(pos, dir mgl32.Vec3) HandPose {
	dx, dy, dz := float64(dir.X()), float64(dir.Y()), float64(dir.Z())
	yaw := math.Atan2(-dx, -dz)
	pitch := math.Atan2(dy, math.Hypot(dx, dz))
	return PoseLookingAt(pos, mgl32.RadToDeg(float32(yaw)), mgl32.RadToDeg(float32(pitch)))
}

// Ray returns the pose's pointing ray.
func (p HandPose) Ray() Ray {
	rot := p.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	return NewRay(p.Position, rot.Rotate(Forward))
}

// HandSource supplies the per-frame poses of the tracked hands and the gaze.
type HandSource interface {
	// Hand returns the pose of the left or right hand and whether it is
	// currently tracked.
	Hand(hand HandType) (HandPose, bool)
	// Gaze returns the head pose used as a fallback pointer.
	Gaze() (HandPose, bool)
}

// handFrame is one queued change to a ManualHands source.
type handFrame struct {
	hand    HandType
	pose    HandPose
	present bool
}

// ManualHands is a HandSource driven by code: tests, replays and the JSON
// test runner. Poses are set directly or queued one frame at a time with the
// Inject methods; the input module calls Advance at the start of each frame
// to apply the next queued change.
type ManualHands struct {
	left, right     HandPose
	leftOK, rightOK bool
	gaze            HandPose
	gazeOK          bool
	queue           []handFrame
}

// NewManualHands returns a source with no hand and no gaze present.
func NewManualHands() *ManualHands {
	return &ManualHands{}
}

// Hand implements HandSource.
func (m *ManualHands) Hand(hand HandType) (HandPose, bool) {
	switch hand {
	case HandLeft:
		return m.left, m.leftOK
	case HandRight:
		return m.right, m.rightOK
	}
	return HandPose{}, false
}

// Gaze implements HandSource.
func (m *ManualHands) Gaze() (HandPose, bool) {
	return m.gaze, m.gazeOK
}

// SetHand makes hand present at pose.
func (m *ManualHands) SetHand(hand HandType, pose HandPose) {
	switch hand {
	case HandLeft:
		m.left, m.leftOK = pose, true
	case HandRight:
		m.right, m.rightOK = pose, true
	}
}

// HideHand marks hand as not tracked.
func (m *ManualHands) HideHand(hand HandType) {
	switch hand {
	case HandLeft:
		m.leftOK = false
	case HandRight:
		m.rightOK = false
	}
}

// SetGaze makes the gaze present at pose.
func (m *ManualHands) SetGaze(pose HandPose) {
	m.gaze, m.gazeOK = pose, true
}

// HideGaze marks the gaze as absent.
func (m *ManualHands) HideGaze() {
	m.gazeOK = false
}
