package gesture

import "image"

// DefaultAlpha is the default smoothing factor. Lower values smooth more
// but add lag.
const DefaultAlpha = 0.4

// Smoother applies per-axis exponential smoothing to the raw pointer to
// suppress detection jitter before it reaches the UI layer. State starts
// at (0,0) and is carried across frames; on frames with no pointer the
// state is simply left untouched.
type Smoother struct {
	alpha float64
	x, y  float64
}

// NewSmoother creates a Smoother with the given factor. Factors outside
// (0,1] fall back to DefaultAlpha.
func NewSmoother(alpha float64) *Smoother {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultAlpha
	}
	return &Smoother{alpha: alpha}
}

// Update folds a raw pointer sample into the smoothed position and
// returns the new smoothed point.
func (s *Smoother) Update(raw image.Point) image.Point {
	s.x = s.alpha*float64(raw.X) + (1-s.alpha)*s.x
	s.y = s.alpha*float64(raw.Y) + (1-s.alpha)*s.y
	return s.Value()
}

// Value returns the current smoothed position without updating it.
func (s *Smoother) Value() image.Point {
	return image.Pt(int(s.x), int(s.y))
}

// Reset returns the smoother to its neutral (0,0) state.
func (s *Smoother) Reset() {
	s.x, s.y = 0, 0
}
