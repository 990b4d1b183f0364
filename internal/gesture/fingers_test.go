package gesture

import (
	"image"
	"testing"

	"github.com/ayusman/airpaint/internal/detector"
)

const frameWidth, frameHeight = 1280, 720

func pixels(hand detector.HandLandmarks) []image.Point {
	return hand.ToPixels(frameWidth, frameHeight)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want FingerState
	}{
		{
			name: "pointing pose raises only the index",
			hand: detector.PointingHandLandmarks(),
			want: FingerState{Index: true},
		},
		{
			name: "anchor pose raises thumb and index",
			hand: detector.AnchorHandLandmarks(),
			want: FingerState{Thumb: true, Index: true},
		},
		{
			name: "fist raises nothing",
			hand: detector.FistLandmarks(),
			want: FingerState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(pixels(tt.hand))
			if !ok {
				t.Fatal("expected classification to succeed with 21 landmarks")
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A half-tucked thumb puts the tip between the base joint and the MCP.
// The extension test compares against the base joint (landmark 1), so the
// thumb must not count as extended here.
func TestClassify_HalfTuckedThumb(t *testing.T) {
	points := make([]image.Point, detector.NumLandmarks)
	for i := range points {
		points[i] = image.Pt(500, 500)
	}
	points[detector.ThumbTip] = image.Pt(100, 400)
	points[detector.ThumbCMC] = image.Pt(90, 450)
	points[detector.ThumbMCP] = image.Pt(110, 440)

	state, ok := Classify(points)
	if !ok {
		t.Fatal("expected classification to succeed with 21 landmarks")
	}
	if state.ThumbUp() {
		t.Error("thumb tip right of the base joint must not classify as extended")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	points := pixels(detector.AnchorHandLandmarks())

	first, ok := Classify(points)
	if !ok {
		t.Fatal("expected classification to succeed")
	}

	for i := 0; i < 10; i++ {
		got, ok := Classify(points)
		if !ok || got != first {
			t.Fatalf("run %d: Classify() = %v ok=%v, want %v ok=true", i, got, ok, first)
		}
	}
}

func TestClassify_InsufficientLandmarks(t *testing.T) {
	points := pixels(detector.PointingHandLandmarks())

	for _, n := range []int{0, 1, 8, 20} {
		state, ok := Classify(points[:n])
		if ok {
			t.Errorf("Classify with %d points should fail", n)
		}
		if state != (FingerState{}) {
			t.Errorf("Classify with %d points should return the zero vector, got %v", n, state)
		}
	}
}

func TestPointer(t *testing.T) {
	hand := detector.PointingHandAt(0.25, 0.5)
	points := pixels(hand)

	pt, ok := Pointer(points)
	if !ok {
		t.Fatal("expected a pointer with 21 landmarks")
	}
	if pt != points[detector.IndexTip] {
		t.Errorf("Pointer() = %v, want index tip %v", pt, points[detector.IndexTip])
	}

	if _, ok := Pointer(points[:20]); ok {
		t.Error("expected no pointer with a partial detection")
	}
}
