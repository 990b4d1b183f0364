// Package paint owns the painter's interactive surface: the on-screen
// zones, the hit-test engine with its tool state, the persistent drawing
// board and the frame compositor.
package paint

import (
	"image"
	"image/color"
)

// Frame dimensions every zone coordinate assumes.
const (
	FrameWidth  = 1280
	FrameHeight = 720
)

// Layout constants for the button grid.
const (
	baseX        = 50
	baseY        = 20
	buttonWidth  = 120
	buttonHeight = 50
	swatchWidth  = 80
	eraserWidth  = 100
	hSpacing     = 10
	vSpacing     = 10
)

// Row y-offsets, top to bottom: toggles, color swatches, pen sizes, shapes.
const (
	toggleRowY = baseY
	colorRowY  = toggleRowY + buttonHeight + vSpacing
	penRowY    = colorRowY + buttonHeight + vSpacing
	shapeRowY  = penRowY + buttonHeight + vSpacing
	boardTopY  = shapeRowY - 70
)

// CanvasBackground is the board's background color; the eraser paints
// with it.
var CanvasBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Brush width defaults.
const (
	DefaultBrushSize = 5
	EraserBrushSize  = 20
)

// Palette is the curated stroke color set, one swatch each.
var Palette = []color.RGBA{
	{R: 220, G: 120, B: 50, A: 255}, // soft blue in BGR terms; the first, default swatch
	{R: 120, G: 180, B: 80, A: 255},
	{R: 80, G: 130, B: 230, A: 255},
	{R: 180, G: 80, B: 180, A: 255},
	{R: 120, G: 90, B: 220, A: 255},
}

// Zone is a rectangular interactive region with a background color and an
// optional label.
type Zone struct {
	Rect  image.Rectangle
	Color color.RGBA
	Label string
}

// Contains reports whether the point falls strictly inside the zone.
func (z Zone) Contains(pt image.Point) bool {
	return z.Rect.Min.X < pt.X && pt.X < z.Rect.Max.X &&
		z.Rect.Min.Y < pt.Y && pt.Y < z.Rect.Max.Y
}

func buttonRect(col, rowY, width int) image.Rectangle {
	x := baseX + (buttonWidth+hSpacing)*col
	return image.Rect(x, rowY, x+width, rowY+buttonHeight)
}

func swatchRect(col int) image.Rectangle {
	x := baseX + (swatchWidth+hSpacing)*col
	width := swatchWidth
	if col == len(Palette) { // trailing eraser swatch is wider
		width = eraserWidth
	}
	return image.Rect(x, colorRowY, x+width, colorRowY+buttonHeight)
}

// boardRect is the drawable canvas region: below the toggle row, inset
// from the frame edges, down to the bottom of the frame.
func boardRect() image.Rectangle {
	return image.Rect(baseX, boardTopY, FrameWidth-baseX, FrameHeight)
}
