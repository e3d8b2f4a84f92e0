package touchui

// arbitration is the outcome of one frame of hand arbitration.
type arbitration struct {
	// hit is the raycast to treat as this frame's interaction target.
	hit RaycastResult
	// hand is the hand reported on the pointer record.
	hand HandType
	// source is the hand whose raycast hit came from; it differs from hand
	// only when both hands miss and the stale lock's raycast is reported.
	source HandType
	// locked is the lock to carry into the next frame.
	locked HandType
	// null is set when no hand is present: the caller parks the pointer.
	null bool
}

// arbitrate picks the single logical pointer from the two hands.
//
// One hand present: it is authoritative and locks in, unless its raycast
// misses. Both present: a hand that is the only valid hit wins and locks in;
// when both hit, an existing lock holds (hysteresis) and otherwise the nearer
// hit wins with ties going to the right hand; when both miss, the previously
// locked hand's miss is still reported for this frame and the lock lapses.
func arbitrate(locked HandType, leftOK, rightOK bool, left, right RaycastResult) arbitration {
	switch {
	case !leftOK && !rightOK:
		return arbitration{null: true}

	case leftOK != rightOK:
		hand, hit := HandRight, right
		if leftOK {
			hand, hit = HandLeft, left
		}
		next := hand
		if !hit.IsValid() {
			next = HandNone
		}
		return arbitration{hit: hit, hand: hand, source: hand, locked: next}
	}

	lv, rv := left.IsValid(), right.IsValid()
	switch {
	case !lv && !rv:
		a := arbitration{source: locked}
		switch locked {
		case HandRight:
			a.hit = right
		case HandLeft:
			a.hit = left
		}
		return a

	case lv && rv:
		switch locked {
		case HandRight:
			return arbitration{hit: right, hand: HandRight, source: HandRight, locked: HandRight}
		case HandLeft:
			return arbitration{hit: left, hand: HandLeft, source: HandLeft, locked: HandLeft}
		}
		if right.Distance <= left.Distance {
			return arbitration{hit: right, hand: HandRight, source: HandRight, locked: HandRight}
		}
		return arbitration{hit: left, hand: HandLeft, source: HandLeft, locked: HandLeft}

	case rv:
		return arbitration{hit: right, hand: HandRight, source: HandRight, locked: HandRight}
	default:
		return arbitration{hit: left, hand: HandLeft, source: HandLeft, locked: HandLeft}
	}
}
