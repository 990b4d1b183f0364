package app

import (
	"image"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/airpaint/internal/detector"
	"github.com/ayusman/airpaint/internal/gesture"
	"github.com/ayusman/airpaint/internal/paint"
)

// runPipeline is the main frame loop. It adapts the frame rate to scene
// activity: while nothing moves, landmark inference is skipped and the
// loop drops to IdleFPS.
func (a *App) runPipeline(stopCh chan struct{}) {
	var window *gocv.Window
	if a.config.ShowWindow {
		window = gocv.NewWindow("Air Painter")
		defer window.Close()
	}

	activeMode := true
	lastMotion := time.Now()

	ticker := time.NewTicker(time.Second / ActiveFPS)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			log.Printf("Frame read error: %v", err)
			continue
		}
		if frame.Empty() {
			frame.Close()
			continue
		}

		// Mirror so on-screen motion matches the user's hand.
		gocv.Flip(*frame, frame, 1)

		moving, _ := a.motion.Detect(frame)
		if moving {
			lastMotion = time.Now()
			if !activeMode {
				activeMode = true
				ticker.Reset(time.Second / ActiveFPS)
				log.Println("Motion detected, resuming inference")
			}
		} else if activeMode && time.Since(lastMotion) > IdleTimeoutMs*time.Millisecond {
			activeMode = false
			ticker.Reset(time.Second / IdleFPS)
			log.Println("Scene idle, pausing inference")
		}

		a.mu.Lock()
		if a.enabled && activeMode {
			result, err := a.det.Detect(frame)
			if err != nil {
				log.Printf("Detection error: %v", err)
				a.renderPaused(frame)
			} else {
				a.processFrame(frame, result)
			}
		} else {
			a.renderPaused(frame)
		}
		a.publishFrame(frame)
		a.mu.Unlock()

		if window != nil {
			window.IMShow(*frame)
			key := window.WaitKey(1)
			if key == 27 || key == 'q' {
				frame.Close()
				go a.Stop()
				return
			}
		}
		frame.Close()
	}
}

// renderPaused composites the UI and canvas without any interaction.
// Called with the mutex held.
func (a *App) renderPaused(frame *gocv.Mat) {
	a.ui.Render(frame)
	paint.Composite(frame, a.board.Mat())
	a.drawStatus(frame)
}

// processFrame turns one detection result into interaction, canvas
// mutation and the composited output frame. Called with the mutex held.
func (a *App) processFrame(frame *gocv.Mat, result *detector.Result) {
	width, height := frame.Cols(), frame.Rows()

	// Mouth gesture runs independently of the hand.
	mouthOpen := false
	if result.Face != nil {
		mouthOpen = gesture.MouthOpen(result.Face.MouthPixels(width, height))
	}
	saveFired := a.trigger.Step(mouthOpen)

	var fingers gesture.FingerState
	pointer := image.Point{}
	havePointer := false
	if len(result.Hands) > 0 {
		points := result.Hands[0].ToPixels(width, height)
		if f, ok := gesture.Classify(points); ok {
			fingers = f
			if p, ok := gesture.Pointer(points); ok {
				pointer = p
				havePointer = true
			}
		}
	}

	a.ui.Render(frame)

	interaction := paint.Interaction{}
	smoothed := a.prev
	if havePointer {
		smoothed = a.smoother.Update(pointer)
		interaction = a.ui.Resolve(smoothed, fingers)

		switch interaction.Event {
		case paint.EventClearCanvas:
			a.board.Clear()
		case paint.EventSaveRequested:
			saveFired = true
		case paint.EventShapeCommitted:
			tool := a.ui.Tool()
			a.board.CommitShape(interaction.Anchor, smoothed, interaction.Shape, tool.Color, tool.BrushSize)
		}
	}

	if interaction.ShapePreview {
		tool := a.ui.Tool()
		preview := a.board.PreviewShape(interaction.Anchor, smoothed, tool.Shape, tool.Color, tool.BrushSize)
		paint.Composite(frame, &preview)
		preview.Close()
	} else {
		// A commit frame never also draws a freehand segment.
		if interaction.Drawing && interaction.Event != paint.EventShapeCommitted {
			tool := a.ui.Tool()
			a.board.AppendSegment(a.prev, smoothed, tool.Color, tool.BrushSize)
		}
		paint.Composite(frame, a.board.Mat())
	}

	if havePointer {
		a.prev = smoothed
	} else {
		// Lost the hand: break the stroke so it does not rubber-band
		// to wherever the hand reappears. The smoother keeps its state
		// so the pointer does not jump when tracking resumes.
		a.prev = image.Point{}
	}

	if saveFired {
		filename, err := a.saveCanvas()
		if err != nil {
			log.Printf("Save failed: %v", err)
		} else {
			a.lastSaved = filename
			a.savedBanner = savedBannerFrames
			log.Printf("Saved drawing %s", filename)
			if a.onSave != nil {
				a.onSave(filename)
			}
		}
	}

	a.lastEvent = interaction.Event
	a.drawStatus(frame)
	a.publishState(smoothed, interaction.Event, saveFired)
}

// drawStatus paints the help line and the transient save banner.
// Called with the mutex held.
func (a *App) drawStatus(frame *gocv.Mat) {
	paint.DrawHelp(frame)
	if a.savedBanner > 0 {
		paint.DrawSavedBanner(frame, a.lastSaved)
		a.savedBanner--
	}
}

// publishState pushes the per-frame state update to the subscriber, if
// any. Called with the mutex held.
func (a *App) publishState(pointer image.Point, event paint.Event, saveFired bool) {
	if a.onState == nil {
		return
	}
	a.onState(StateUpdate{
		Tool:      a.ui.Snapshot(),
		Pointer:   [2]int{pointer.X, pointer.Y},
		Event:     event.String(),
		SaveFired: saveFired,
		LastSaved: a.lastSaved,
	})
}

// publishFrame encodes the composited frame as JPEG for the preview
// stream subscriber, if any. Called with the mutex held.
func (a *App) publishFrame(frame *gocv.Mat) {
	if a.onFrame == nil {
		return
	}
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		log.Printf("Frame encode error: %v", err)
		return
	}
	defer buf.Close()
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	a.onFrame(data)
}
