// Package gesture converts raw landmark detections into the discrete
// signals the painter acts on: a per-finger extended/curled vector, a
// pointer location, a smoothed cursor and the mouth-driven save trigger.
package gesture

import (
	"image"

	"github.com/ayusman/airpaint/internal/detector"
)

// Finger indices into a FingerState vector.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerState reports which fingers are extended, in thumb-to-pinky order.
type FingerState [NumFingers]bool

// ThumbUp reports whether the thumb is extended.
func (f FingerState) ThumbUp() bool { return f[Thumb] }

// IndexUp reports whether the index finger is extended.
func (f FingerState) IndexUp() bool { return f[Index] }

// Classify derives the finger-extended vector from one hand's pixel
// landmarks. It is a pure function of its input. The second return value
// is false when fewer than the full 21 landmarks are supplied (partial or
// low-confidence detection), in which case the vector is all false.
//
// The thumb test compares the tip's x coordinate against the base joint
// (landmark 1, the CMC) under the mirrored-camera convention: an extended
// thumb points toward the frame's left after the horizontal flip. The
// other fingers count as extended when the tip sits strictly above its
// PIP joint. Both tests assume a roughly upright hand.
func Classify(points []image.Point) (FingerState, bool) {
	var state FingerState
	if len(points) < detector.NumLandmarks {
		return state, false
	}

	state[Thumb] = points[detector.ThumbTip].X < points[detector.ThumbCMC].X

	pairs := [...]struct{ finger, tip, pip int }{
		{Index, detector.IndexTip, detector.IndexPIP},
		{Middle, detector.MiddleTip, detector.MiddlePIP},
		{Ring, detector.RingTip, detector.RingPIP},
		{Pinky, detector.PinkyTip, detector.PinkyPIP},
	}
	for _, p := range pairs {
		state[p.finger] = points[p.tip].Y < points[p.pip].Y
	}

	return state, true
}

// Pointer returns the index fingertip as the designated pointer location.
// No pointer is produced unless the full 21 landmarks are present.
func Pointer(points []image.Point) (image.Point, bool) {
	if len(points) < detector.NumLandmarks {
		return image.Point{}, false
	}
	return points[detector.IndexTip], true
}
