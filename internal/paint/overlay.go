package paint

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// boardBlendRect is the frame region the canvas is blended into, slightly
// taller than the hit-test board zone so strokes meet the button rows.
var boardBlendRect = image.Rect(50, 120, 1230, 720)

var (
	labelColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	borderColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	helpColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	savedColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Render draws the visible zones onto the frame: toggles and the board
// outline always, the three toggleable groups only when shown.
func (u *UI) Render(frame *gocv.Mat) {
	for i := range u.toggles {
		drawZone(frame, u.toggles[i].Zone)
	}

	drawZoneBorder(frame, u.board)

	if u.ShowColors {
		for i := range u.swatches {
			drawZone(frame, u.swatches[i].Zone)
		}
	}
	if u.ShowPenSizes {
		for i := range u.penSizes {
			drawZone(frame, u.penSizes[i].Zone)
		}
	}
	if u.ShowShapes {
		for i := range u.shapeBtns {
			drawZone(frame, u.shapeBtns[i].Zone)
		}
	}
}

// Composite blends the canvas into the frame's board region at equal
// weight, leaving the button rows fully live.
func Composite(frame *gocv.Mat, canvas *gocv.Mat) {
	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	r := boardBlendRect.Intersect(bounds).Intersect(image.Rect(0, 0, canvas.Cols(), canvas.Rows()))
	if r.Empty() {
		return
	}

	frameROI := frame.Region(r)
	defer frameROI.Close()
	canvasROI := canvas.Region(r)
	defer canvasROI.Close()

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(frameROI, 0.5, canvasROI, 0.5, 0, &blended)
	blended.CopyTo(&frameROI)
}

// DrawHelp paints the standing usage hint.
func DrawHelp(frame *gocv.Mat) {
	gocv.PutText(frame, "Open mouth to save drawing", image.Pt(850, 50),
		gocv.FontHersheySimplex, 0.7, helpColor, 2)
}

// DrawSavedBanner confirms a completed save on the frame.
func DrawSavedBanner(frame *gocv.Mat, filename string) {
	gocv.PutText(frame, "Saved: "+filename, image.Pt(50, 100),
		gocv.FontHersheySimplex, 1, savedColor, 2)
}

// drawZone fills the zone, outlines it and centers its label, clipped to
// the frame. Zones whose clipped area vanishes are skipped silently.
func drawZone(frame *gocv.Mat, z Zone) {
	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	r := z.Rect.Intersect(bounds)
	if r.Empty() {
		return
	}

	gocv.Rectangle(frame, r, z.Color, -1)
	gocv.Rectangle(frame, r, borderColor, 2)

	if z.Label == "" {
		return
	}
	size := gocv.GetTextSize(z.Label, gocv.FontHersheySimplex, 0.7, 2)
	org := image.Pt(r.Min.X+(r.Dx()-size.X)/2, r.Min.Y+(r.Dy()+size.Y)/2)
	gocv.PutText(frame, z.Label, org, gocv.FontHersheySimplex, 0.7, labelColor, 2)
}

func drawZoneBorder(frame *gocv.Mat, z Zone) {
	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	r := z.Rect.Intersect(bounds)
	if r.Empty() {
		return
	}
	gocv.Rectangle(frame, r, borderColor, 1)
}
