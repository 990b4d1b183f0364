package paint

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// ShapeKind identifies a drawable shape tool. ShapeNone means freehand.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeCircle
	ShapeRectangle
	ShapeTriangle
)

// String returns the shape's button label.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "Circle"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeTriangle:
		return "Triangle"
	default:
		return "None"
	}
}

// Board is the persistent raster canvas. It lives for the application's
// lifetime; Clear repaints it in place rather than reallocating.
type Board struct {
	mat        gocv.Mat
	background color.RGBA
	width      int
	height     int
}

// NewBoard allocates a width x height canvas filled with the background
// color. The caller owns the board and must Close it.
func NewBoard(width, height int, background color.RGBA) *Board {
	mat := gocv.NewMatWithSizeFromScalar(bgrScalar(background), height, width, gocv.MatTypeCV8UC3)
	return &Board{
		mat:        mat,
		background: background,
		width:      width,
		height:     height,
	}
}

// Mat exposes the underlying canvas for compositing and saving.
func (b *Board) Mat() *gocv.Mat {
	return &b.mat
}

// Background returns the canvas background color.
func (b *Board) Background() color.RGBA {
	return b.background
}

// AppendSegment draws a straight segment between two smoothed pointer
// positions. A (0,0) from-point is the stroke-gap sentinel: the first
// point after a detection gap draws nothing, so strokes never jump in
// from the origin.
func (b *Board) AppendSegment(from, to image.Point, c color.RGBA, width int) {
	if from == (image.Point{}) {
		return
	}
	gocv.Line(&b.mat, from, to, c, width)
}

// PreviewShape renders the in-progress shape onto a scratch copy of the
// canvas and returns it, leaving the committed canvas untouched. The
// caller must Close the returned Mat.
func (b *Board) PreviewShape(anchor, current image.Point, kind ShapeKind, c color.RGBA, width int) gocv.Mat {
	scratch := b.mat.Clone()
	drawShape(&scratch, anchor, current, kind, c, width)
	return scratch
}

// CommitShape draws the final shape onto the persistent canvas.
func (b *Board) CommitShape(anchor, current image.Point, kind ShapeKind, c color.RGBA, width int) {
	drawShape(&b.mat, anchor, current, kind, c, width)
}

// Clear repaints every pixel to the background color.
func (b *Board) Clear() {
	fill := gocv.NewMatWithSizeFromScalar(bgrScalar(b.background), b.height, b.width, gocv.MatTypeCV8UC3)
	defer fill.Close()
	fill.CopyTo(&b.mat)
}

// Save encodes the canvas as PNG at the given path.
func (b *Board) Save(path string) error {
	if ok := gocv.IMWrite(path, b.mat); !ok {
		return fmt.Errorf("write canvas image %s", path)
	}
	return nil
}

// Close releases the canvas.
func (b *Board) Close() {
	b.mat.Close()
}

// drawShape rasterizes a shape between the anchor and the current point:
// circle centered on the anchor with radius min(|dx|,|dy|)/2, rectangle
// with the two as opposite corners, or an isoceles triangle with its base
// on the current point's row and apex centered on the anchor's row.
func drawShape(dst *gocv.Mat, anchor, current image.Point, kind ShapeKind, c color.RGBA, width int) {
	dx := abs(current.X - anchor.X)
	dy := abs(current.Y - anchor.Y)

	switch kind {
	case ShapeCircle:
		radius := min(dx, dy) / 2
		gocv.Circle(dst, anchor, radius, c, width)
	case ShapeRectangle:
		gocv.Rectangle(dst, image.Rect(anchor.X, anchor.Y, current.X, current.Y), c, width)
	case ShapeTriangle:
		pts := gocv.NewPointsVectorFromPoints([][]image.Point{{
			{X: anchor.X, Y: current.Y},
			{X: current.X, Y: current.Y},
			{X: (anchor.X + current.X) / 2, Y: anchor.Y},
		}})
		defer pts.Close()
		gocv.Polylines(dst, pts, true, c, width)
	}
}

func bgrScalar(c color.RGBA) gocv.Scalar {
	return gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
