package detector

import "gocv.io/x/gocv"

// Result holds everything detected in a single frame: zero or more hands
// and zero or one face (nil when no face was found).
type Result struct {
	Hands []HandLandmarks
	Face  *FaceLandmarks
}

// Detector defines the interface for per-frame landmark detection.
type Detector interface {
	// Detect analyzes a video frame and returns the detected hand and
	// face landmarks. A frame with nothing in it yields an empty Result,
	// not an error.
	Detect(frame *gocv.Mat) (*Result, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for landmark detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// HandDetectionConf is the minimum hand detection confidence threshold (0.0-1.0).
	HandDetectionConf float64

	// HandTrackingConf is the minimum hand tracking confidence threshold (0.0-1.0).
	HandTrackingConf float64

	// FaceDetectionConf is the minimum face detection confidence threshold (0.0-1.0).
	FaceDetectionConf float64

	// FaceTrackingConf is the minimum face tracking confidence threshold (0.0-1.0).
	FaceTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:          2,
		HandDetectionConf: 0.6,
		HandTrackingConf:  0.6,
		FaceDetectionConf: 0.5,
		FaceTrackingConf:  0.5,
	}
}
