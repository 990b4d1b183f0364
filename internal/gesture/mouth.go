package gesture

import (
	"image"

	"github.com/ayusman/airpaint/internal/detector"
)

// OpenRatio is the vertical-to-horizontal gap ratio above which the mouth
// counts as open.
const OpenRatio = 0.3

// Save trigger defaults: sustained open frames required to fire, and the
// refractory period after a fire.
const (
	DefaultOpenThreshold  = 10
	DefaultCooldownFrames = 60
)

// MouthOpen applies the geometric open-mouth test to the four mouth pixel
// landmarks (left corner, right corner, top center, bottom center).
// Fails closed when fewer than four points are available.
func MouthOpen(points []image.Point) bool {
	if len(points) < detector.NumMouthPoints {
		return false
	}

	vertical := abs(points[detector.MouthTop].Y - points[detector.MouthBottom].Y)
	horizontal := abs(points[detector.MouthLeft].X - points[detector.MouthRight].X)

	return float64(vertical) > float64(horizontal)*OpenRatio
}

// TriggerState identifies where the save trigger machine currently is.
type TriggerState int

const (
	// TriggerIdle means the mouth is closed and nothing is pending.
	TriggerIdle TriggerState = iota
	// TriggerAccumulating means open frames are being counted toward a fire.
	TriggerAccumulating
	// TriggerCooldown means a save just fired and refires are suppressed.
	TriggerCooldown
)

// SaveTrigger debounces the per-frame open/closed signal into one-shot
// save events. A fire requires the configured number of consecutive open
// frames and no active cooldown; firing starts the cooldown, during which
// the counter is pinned regardless of mouth state.
type SaveTrigger struct {
	openThreshold  int
	cooldownFrames int
	openCount      int
	cooldown       int
}

// NewSaveTrigger creates a SaveTrigger. Non-positive arguments fall back
// to the defaults.
func NewSaveTrigger(openThreshold, cooldownFrames int) *SaveTrigger {
	if openThreshold <= 0 {
		openThreshold = DefaultOpenThreshold
	}
	if cooldownFrames <= 0 {
		cooldownFrames = DefaultCooldownFrames
	}
	return &SaveTrigger{
		openThreshold:  openThreshold,
		cooldownFrames: cooldownFrames,
	}
}

// Step advances the machine by one frame and reports whether a save event
// fired this frame.
func (t *SaveTrigger) Step(open bool) bool {
	// Cooldown runs down every frame regardless of mouth state.
	if t.cooldown > 0 {
		t.cooldown--
	}

	if open {
		t.openCount++
	} else {
		t.openCount = 0
	}

	if t.openCount >= t.openThreshold && t.cooldown == 0 {
		t.openCount = 0
		t.cooldown = t.cooldownFrames
		return true
	}

	return false
}

// State reports the machine's current state.
func (t *SaveTrigger) State() TriggerState {
	switch {
	case t.cooldown > 0:
		return TriggerCooldown
	case t.openCount > 0:
		return TriggerAccumulating
	default:
		return TriggerIdle
	}
}

// Reset returns the machine to idle, clearing any pending count or cooldown.
func (t *SaveTrigger) Reset() {
	t.openCount = 0
	t.cooldown = 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
