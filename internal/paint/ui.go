package paint

import (
	"image"
	"image/color"
	"strconv"

	"github.com/ayusman/airpaint/internal/gesture"
)

// Event is the one-shot discrete outcome of a frame's hit test. At most
// one event fires per frame; continuous modes (freehand drawing, shape
// preview) travel alongside it in Interaction.
type Event int

const (
	EventNone Event = iota
	EventColorsToggled
	EventShapesToggled
	EventPenSizesToggled
	EventSaveRequested
	EventClearCanvas
	EventColorSelected
	EventBrushSelected
	EventShapeSelected
	EventShapeAnchored
	EventShapeCommitted
)

// String returns a short name for the event, used by the state stream.
func (e Event) String() string {
	switch e {
	case EventColorsToggled:
		return "colors_toggled"
	case EventShapesToggled:
		return "shapes_toggled"
	case EventPenSizesToggled:
		return "pen_sizes_toggled"
	case EventSaveRequested:
		return "save_requested"
	case EventClearCanvas:
		return "clear_canvas"
	case EventColorSelected:
		return "color_selected"
	case EventBrushSelected:
		return "brush_selected"
	case EventShapeSelected:
		return "shape_selected"
	case EventShapeAnchored:
		return "shape_anchored"
	case EventShapeCommitted:
		return "shape_committed"
	default:
		return "none"
	}
}

// Interaction is the full result of resolving one frame's pointer against
// the UI. Drawing and ShapePreview can both be structurally set; shape
// preview takes precedence while a shape is selected, so the pipeline only
// routes to one of them.
type Interaction struct {
	Event        Event
	Drawing      bool
	ShapePreview bool

	// Anchor and Shape are valid while ShapePreview is set and on
	// EventShapeCommitted, which reports them one last time before the
	// selection resets.
	Anchor image.Point
	Shape  ShapeKind
}

// ToolState is the current stroke configuration.
type ToolState struct {
	Color     color.RGBA
	BrushSize int
	Shape     ShapeKind
}

type toggleAction int

const (
	toggleColors toggleAction = iota
	toggleShapes
	togglePenSizes
	actionSave
	actionClear
)

type toggleButton struct {
	Zone
	action toggleAction
}

type swatchButton struct {
	Zone
	color  color.RGBA
	eraser bool
}

type penButton struct {
	Zone
	size int
}

type shapeButton struct {
	Zone
	kind ShapeKind
}

// UI owns the zone groups, their visibility flags and the tool state, and
// resolves smoothed pointer positions into interactions. It is not
// goroutine safe; the frame loop is its only mutator.
type UI struct {
	toggles   []toggleButton
	swatches  []swatchButton
	penSizes  []penButton
	shapeBtns []shapeButton
	board     Zone

	// Visibility of the three toggleable groups. Toggles and the board
	// are always visible.
	ShowColors   bool
	ShowPenSizes bool
	ShowShapes   bool

	tool        ToolState
	shapeActive bool
	anchor      image.Point

	// One-shot latches for the Save and Clear buttons. A hovering
	// pointer re-fires every frame without them; the latch holds until
	// the pointer leaves the zone or the index finger drops.
	savePressed  bool
	clearPressed bool
}

// NewUI builds the fixed zone layout with all toggleable groups hidden
// and the default tool (first palette color, brush width 5).
func NewUI() *UI {
	u := &UI{
		tool: ToolState{
			Color:     Palette[0],
			BrushSize: DefaultBrushSize,
		},
		board: Zone{Rect: boardRect(), Color: color.RGBA{R: 240, G: 240, B: 240, A: 255}},
	}

	buttonGray := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	for i, t := range []struct {
		label  string
		action toggleAction
	}{
		{"Colors", toggleColors},
		{"Shapes", toggleShapes},
		{"Pen", togglePenSizes},
		{"Save", actionSave},
		{"Clear", actionClear},
	} {
		u.toggles = append(u.toggles, toggleButton{
			Zone:   Zone{Rect: buttonRect(i, toggleRowY, buttonWidth), Color: buttonGray, Label: t.label},
			action: t.action,
		})
	}

	for i, c := range Palette {
		u.swatches = append(u.swatches, swatchButton{
			Zone:  Zone{Rect: swatchRect(i), Color: c},
			color: c,
		})
	}
	u.swatches = append(u.swatches, swatchButton{
		Zone:   Zone{Rect: swatchRect(len(Palette)), Color: color.RGBA{R: 240, G: 240, B: 240, A: 255}, Label: "Eraser"},
		eraser: true,
	})

	penGray := color.RGBA{R: 70, G: 70, B: 70, A: 255}
	for i, size := range []int{5, 10, 15, 20} {
		u.penSizes = append(u.penSizes, penButton{
			Zone: Zone{Rect: buttonRect(i, penRowY, buttonWidth), Color: penGray, Label: strconv.Itoa(size)},
			size: size,
		})
	}

	shapeGray := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	for i, kind := range []ShapeKind{ShapeCircle, ShapeRectangle, ShapeTriangle} {
		u.shapeBtns = append(u.shapeBtns, shapeButton{
			Zone: Zone{Rect: buttonRect(i, shapeRowY, buttonWidth), Color: shapeGray, Label: kind.String()},
			kind: kind,
		})
	}

	return u
}

// Tool returns the current tool state.
func (u *UI) Tool() ToolState {
	return u.tool
}

// Board returns the canvas zone.
func (u *UI) Board() Zone {
	return u.board
}

// ShapeActive reports whether a shape preview is in progress.
func (u *UI) ShapeActive() bool {
	return u.shapeActive
}

// Resolve runs the hit test for one frame. pt is the smoothed pointer;
// fingers is the classified finger vector for the same frame.
//
// Group priority: toggles, then color swatches, then pen sizes, then shape
// buttons, then the board. A hit in any button group consumes the frame;
// the board is only considered when no button fired, so a pointer inside
// an overlapping swatch and the board resolves to the swatch alone.
func (u *UI) Resolve(pt image.Point, fingers gesture.FingerState) Interaction {
	var res Interaction

	u.releaseButtons(pt, fingers.IndexUp())
	if fingers.IndexUp() {
		res.Event = u.resolveButtons(pt)
	}
	if res.Event != EventNone {
		return res
	}

	if !u.board.Contains(pt) {
		return res
	}

	// Freehand: pointing with the thumb tucked. Thumb-up poses are
	// reserved for shape anchoring.
	if fingers.IndexUp() && !fingers.ThumbUp() {
		res.Drawing = true
	}

	// Shape phase transitions only apply while a shape is selected and
	// its button group is on screen.
	if u.ShowShapes && u.tool.Shape != ShapeNone {
		switch {
		case !u.shapeActive && fingers.ThumbUp():
			u.anchor = pt
			u.shapeActive = true
			res.Event = EventShapeAnchored
		case u.shapeActive && !fingers.ThumbUp():
			res.Event = EventShapeCommitted
			res.Anchor = u.anchor
			res.Shape = u.tool.Shape
			u.shapeActive = false
			u.tool.Shape = ShapeNone
		}
	}

	if u.shapeActive {
		res.ShapePreview = true
		res.Anchor = u.anchor
		res.Shape = u.tool.Shape
	}

	return res
}

// releaseButtons re-arms the one-shot Save and Clear buttons once the
// pointer leaves them or the index finger drops.
func (u *UI) releaseButtons(pt image.Point, indexUp bool) {
	for i := range u.toggles {
		b := &u.toggles[i]
		switch b.action {
		case actionSave:
			if !indexUp || !b.Contains(pt) {
				u.savePressed = false
			}
		case actionClear:
			if !indexUp || !b.Contains(pt) {
				u.clearPressed = false
			}
		}
	}
}

// resolveButtons hit-tests the button groups in priority order and
// applies the side effect of the first hit.
func (u *UI) resolveButtons(pt image.Point) Event {
	for i := range u.toggles {
		b := &u.toggles[i]
		if !b.Contains(pt) {
			continue
		}
		switch b.action {
		case toggleColors:
			u.ShowColors = !u.ShowColors
			return EventColorsToggled
		case toggleShapes:
			u.ShowShapes = !u.ShowShapes
			return EventShapesToggled
		case togglePenSizes:
			u.ShowPenSizes = !u.ShowPenSizes
			return EventPenSizesToggled
		case actionSave:
			if u.savePressed {
				return EventNone
			}
			u.savePressed = true
			return EventSaveRequested
		case actionClear:
			if u.clearPressed {
				return EventNone
			}
			u.clearPressed = true
			return EventClearCanvas
		}
	}

	if u.ShowColors {
		for i := range u.swatches {
			s := &u.swatches[i]
			if !s.Contains(pt) {
				continue
			}
			if s.eraser {
				u.tool.Color = CanvasBackground
				u.tool.BrushSize = EraserBrushSize
			} else {
				u.tool.Color = s.color
				u.tool.BrushSize = DefaultBrushSize
			}
			return EventColorSelected
		}
	}

	if u.ShowPenSizes {
		for i := range u.penSizes {
			p := &u.penSizes[i]
			if p.Contains(pt) {
				u.tool.BrushSize = p.size
				return EventBrushSelected
			}
		}
	}

	if u.ShowShapes {
		for i := range u.shapeBtns {
			s := &u.shapeBtns[i]
			if s.Contains(pt) {
				u.tool.Shape = s.kind
				// A fresh selection always starts a new shape phase.
				u.shapeActive = false
				return EventShapeSelected
			}
		}
	}

	return EventNone
}

// Snapshot is a read-only view of the UI state for the status API and the
// WebSocket stream.
type Snapshot struct {
	Color        [3]uint8 `json:"color"` // r, g, b
	BrushSize    int      `json:"brushSize"`
	Shape        string   `json:"shape"`
	ShowColors   bool     `json:"showColors"`
	ShowPenSizes bool     `json:"showPenSizes"`
	ShowShapes   bool     `json:"showShapes"`
	ShapeActive  bool     `json:"shapeActive"`
}

// Snapshot captures the current tool and visibility state.
func (u *UI) Snapshot() Snapshot {
	return Snapshot{
		Color:        [3]uint8{u.tool.Color.R, u.tool.Color.G, u.tool.Color.B},
		BrushSize:    u.tool.BrushSize,
		Shape:        u.tool.Shape.String(),
		ShowColors:   u.ShowColors,
		ShowPenSizes: u.ShowPenSizes,
		ShowShapes:   u.ShowShapes,
		ShapeActive:  u.shapeActive,
	}
}
