// Package detector provides hand and face landmark detection interfaces for the air painter.
package detector

import (
	"fmt"
	"image"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Mouth landmark indices in the MediaPipe FaceMesh numbering, and their
// positions inside FaceLandmarks.Mouth. Only these four points are needed
// for the open-mouth test.
const (
	FaceMeshMouthLeft   = 308
	FaceMeshMouthRight  = 78
	FaceMeshMouthTop    = 0
	FaceMeshMouthBottom = 17

	MouthLeft      = 0
	MouthRight     = 1
	MouthTop       = 2
	MouthBottom    = 3
	NumMouthPoints = 4
)

// Point3D represents a normalized (0..1) detector coordinate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// FaceLandmarks carries the four mouth points extracted from a face mesh,
// ordered left corner, right corner, top center, bottom center.
type FaceLandmarks struct {
	Mouth [NumMouthPoints]Point3D `json:"mouth"`
	Score float64                 `json:"score"`
}

// ToPixels scales the normalized landmarks to integer pixel coordinates
// for a frame of the given dimensions.
func (h *HandLandmarks) ToPixels(width, height int) []image.Point {
	if h == nil {
		return nil
	}
	points := make([]image.Point, NumLandmarks)
	for i, p := range h.Points {
		points[i] = image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
	}
	return points
}

// MouthPixels scales the mouth landmarks to integer pixel coordinates.
func (f *FaceLandmarks) MouthPixels(width, height int) []image.Point {
	if f == nil {
		return nil
	}
	points := make([]image.Point, NumMouthPoints)
	for i, p := range f.Mouth {
		points[i] = image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
	}
	return points
}

// ValidateContract checks the named landmark indices against the fixed
// landmark counts the external detector guarantees. Called once at startup;
// a failure means the constants above drifted from the detector contract.
func ValidateContract() error {
	handIndices := []int{
		Wrist, ThumbCMC, ThumbMCP, ThumbIP, ThumbTip,
		IndexMCP, IndexPIP, IndexDIP, IndexTip,
		MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip,
		RingMCP, RingPIP, RingDIP, RingTip,
		PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip,
	}
	if len(handIndices) != NumLandmarks {
		return fmt.Errorf("expected %d named hand landmarks, have %d", NumLandmarks, len(handIndices))
	}
	for _, idx := range handIndices {
		if idx < 0 || idx >= NumLandmarks {
			return fmt.Errorf("hand landmark index %d outside contract [0,%d)", idx, NumLandmarks)
		}
	}
	for _, idx := range []int{MouthLeft, MouthRight, MouthTop, MouthBottom} {
		if idx < 0 || idx >= NumMouthPoints {
			return fmt.Errorf("mouth landmark index %d outside contract [0,%d)", idx, NumMouthPoints)
		}
	}
	return nil
}
