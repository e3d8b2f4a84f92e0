package touchui

import "github.com/go-gl/mathgl/mgl32"

// InjectPose queues a frame that moves hand to pose (making it present).
// Queued frames are consumed one per frame by Advance.
func (m *ManualHands) InjectPose(hand HandType, pose HandPose) {
	m.queue = append(m.queue, handFrame{hand: hand, pose: pose, present: true})
}

// InjectHide queues a frame in which hand stops being tracked.
func (m *ManualHands) InjectHide(hand HandType) {
	m.queue = append(m.queue, handFrame{hand: hand})
}

// InjectSweep queues a full motion: hand at from, frames-2 intermediate
// poses interpolated linearly in position and spherically in rotation, and
// to on the last frame. The sequence consumes `frames` frames; the minimum
// is 2.
func (m *ManualHands) InjectSweep(hand HandType, from, to HandPose, frames int) {
	if frames < 2 {
		frames = 2
	}
	m.InjectPose(hand, from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		pos := from.Position.Add(to.Position.Sub(from.Position).Mul(t))
		rot := mgl32.QuatSlerp(from.Rotation, to.Rotation, t)
		m.InjectPose(hand, HandPose{Position: pos, Rotation: rot})
	}
	m.InjectPose(hand, to)
}

// Pending returns the number of queued frames.
func (m *ManualHands) Pending() int {
	return len(m.queue)
}

// Advance applies the next queued frame, if any, and reports whether one was
// consumed.
func (m *ManualHands) Advance() bool {
	if len(m.queue) == 0 {
		return false
	}
	f := m.queue[0]
	copy(m.queue, m.queue[1:])
	m.queue = m.queue[:len(m.queue)-1]

	if f.present {
		m.SetHand(f.hand, f.pose)
	} else {
		m.HideHand(f.hand)
	}
	return true
}
