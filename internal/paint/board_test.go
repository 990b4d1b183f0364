package paint

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"
)

var strokeRed = color.RGBA{R: 255, A: 255}

// diffCount returns the number of pixels that differ between two mats.
func diffCount(t *testing.T, a, b *gocv.Mat) int {
	t.Helper()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(*a, *b, &diff)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(diff, &gray, gocv.ColorBGRToGray)

	return gocv.CountNonZero(gray)
}

func TestBoard_AppendSegment(t *testing.T) {
	board := NewBoard(200, 200, CanvasBackground)
	defer board.Close()

	before := board.Mat().Clone()
	defer before.Close()

	board.AppendSegment(image.Pt(20, 20), image.Pt(120, 120), strokeRed, 3)

	if diffCount(t, &before, board.Mat()) == 0 {
		t.Error("a valid segment should mutate the canvas")
	}
}

func TestBoard_AppendSegment_OriginSentinel(t *testing.T) {
	board := NewBoard(200, 200, CanvasBackground)
	defer board.Close()

	before := board.Mat().Clone()
	defer before.Close()

	// The (0,0) from-point marks the first sample after a detection gap.
	for _, to := range []image.Point{{X: 120, Y: 120}, {X: 0, Y: 0}, {X: 199, Y: 1}} {
		board.AppendSegment(image.Pt(0, 0), to, strokeRed, 10)
	}

	if n := diffCount(t, &before, board.Mat()); n != 0 {
		t.Errorf("origin-anchored segments mutated %d pixels, want 0", n)
	}
}

func TestBoard_PreviewDoesNotTouchCanvas(t *testing.T) {
	board := NewBoard(200, 200, CanvasBackground)
	defer board.Close()

	before := board.Mat().Clone()
	defer before.Close()

	for i := 0; i < 5; i++ {
		preview := board.PreviewShape(image.Pt(50, 50), image.Pt(150, 150), ShapeRectangle, strokeRed, 2)

		if diffCount(t, &preview, board.Mat()) == 0 {
			t.Error("preview should contain the shape the canvas lacks")
		}
		preview.Close()
	}

	if n := diffCount(t, &before, board.Mat()); n != 0 {
		t.Errorf("previews mutated the canvas by %d pixels", n)
	}
}

func TestBoard_CommitShape(t *testing.T) {
	tests := []struct {
		name string
		kind ShapeKind
	}{
		{"circle", ShapeCircle},
		{"rectangle", ShapeRectangle},
		{"triangle", ShapeTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(200, 200, CanvasBackground)
			defer board.Close()

			before := board.Mat().Clone()
			defer before.Close()

			board.CommitShape(image.Pt(50, 50), image.Pt(150, 150), tt.kind, strokeRed, 2)

			if diffCount(t, &before, board.Mat()) == 0 {
				t.Errorf("committing a %s should mutate the canvas", tt.name)
			}
		})
	}
}

func TestBoard_Clear(t *testing.T) {
	board := NewBoard(200, 200, CanvasBackground)
	defer board.Close()

	pristine := board.Mat().Clone()
	defer pristine.Close()

	board.AppendSegment(image.Pt(20, 20), image.Pt(120, 120), strokeRed, 5)
	board.Clear()

	if n := diffCount(t, &pristine, board.Mat()); n != 0 {
		t.Errorf("cleared canvas differs from pristine by %d pixels", n)
	}
}

func TestBoard_Save(t *testing.T) {
	board := NewBoard(100, 100, CanvasBackground)
	defer board.Close()

	board.AppendSegment(image.Pt(10, 10), image.Pt(90, 90), strokeRed, 3)

	path := filepath.Join(t.TempDir(), "drawing.png")
	if err := board.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved file is empty")
	}
}
