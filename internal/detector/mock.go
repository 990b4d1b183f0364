package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	face  *FaceLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetFace sets the face that will be returned by Detect (nil for no face).
func (m *MockDetector) SetFace(face *FaceLandmarks) {
	m.face = face
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured result or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &Result{Hands: m.hands, Face: m.face}, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingHandLandmarks returns a preset HandLandmarks for the freehand
// drawing pose: index finger extended, thumb and the remaining fingers
// curled. The index tip sits at normalized (0.55, 0.30).
func PointingHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb tucked across the palm. Under the mirrored-camera rule the
	// thumb counts as extended only when its tip is left of the base
	// joint (the CMC).
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.80, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.74, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.70, Z: -0.02}
	landmarks.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.68, Z: -0.03}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.70, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.54, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.545, Y: 0.42, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.55, Y: 0.30, Z: 0.0}

	// Middle finger curled
	landmarks.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.69, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.49, Y: 0.62, Z: -0.04}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.66, Z: -0.05}
	landmarks.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.70, Z: -0.03}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.70, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.64, Z: -0.04}
	landmarks.Points[RingDIP] = Point3D{X: 0.43, Y: 0.68, Z: -0.05}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.72, Z: -0.03}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.72, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.66, Z: -0.04}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.70, Z: -0.05}
	landmarks.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.74, Z: -0.03}

	return landmarks
}

// PointingHandAt returns the pointing pose translated so the index tip
// lands at the given normalized coordinates.
func PointingHandAt(x, y float64) HandLandmarks {
	landmarks := PointingHandLandmarks()
	return translateHand(landmarks, x-landmarks.Points[IndexTip].X, y-landmarks.Points[IndexTip].Y)
}

// AnchorHandLandmarks returns a preset HandLandmarks for the shape-anchor
// pose: both thumb and index finger extended.
func AnchorHandLandmarks() HandLandmarks {
	landmarks := PointingHandLandmarks()

	// Thumb swung out to the mirrored left of its base joint.
	landmarks.Points[ThumbIP] = Point3D{X: 0.52, Y: 0.70, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.48, Y: 0.66, Z: 0.0}

	return landmarks
}

// AnchorHandAt returns the anchor pose translated so the index tip lands
// at the given normalized coordinates.
func AnchorHandAt(x, y float64) HandLandmarks {
	landmarks := AnchorHandLandmarks()
	return translateHand(landmarks, x-landmarks.Points[IndexTip].X, y-landmarks.Points[IndexTip].Y)
}

// FistLandmarks returns a preset HandLandmarks with all fingers curled.
func FistLandmarks() HandLandmarks {
	landmarks := PointingHandLandmarks()

	// Curl the index finger as well
	landmarks.Points[IndexPIP] = Point3D{X: 0.54, Y: 0.60, Z: -0.04}
	landmarks.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.66, Z: -0.05}
	landmarks.Points[IndexTip] = Point3D{X: 0.55, Y: 0.72, Z: -0.03}

	return landmarks
}

// OpenMouthLandmarks returns mouth points whose vertical gap comfortably
// exceeds the open-mouth ratio.
func OpenMouthLandmarks() *FaceLandmarks {
	return &FaceLandmarks{
		Mouth: [NumMouthPoints]Point3D{
			MouthLeft:   {X: 0.58, Y: 0.50},
			MouthRight:  {X: 0.42, Y: 0.50},
			MouthTop:    {X: 0.50, Y: 0.44},
			MouthBottom: {X: 0.50, Y: 0.56},
		},
		Score: 0.9,
	}
}

// ClosedMouthLandmarks returns mouth points with a near-zero vertical gap.
func ClosedMouthLandmarks() *FaceLandmarks {
	return &FaceLandmarks{
		Mouth: [NumMouthPoints]Point3D{
			MouthLeft:   {X: 0.58, Y: 0.50},
			MouthRight:  {X: 0.42, Y: 0.50},
			MouthTop:    {X: 0.50, Y: 0.495},
			MouthBottom: {X: 0.50, Y: 0.505},
		},
		Score: 0.9,
	}
}

func translateHand(h HandLandmarks, dx, dy float64) HandLandmarks {
	for i := range h.Points {
		h.Points[i].X += dx
		h.Points[i].Y += dy
	}
	return h
}
