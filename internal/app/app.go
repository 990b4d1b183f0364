// Package app provides the main application logic for the air painter.
package app

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/airpaint/internal/capture"
	"github.com/ayusman/airpaint/internal/detector"
	"github.com/ayusman/airpaint/internal/gesture"
	"github.com/ayusman/airpaint/internal/paint"
	"github.com/ayusman/airpaint/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while the scene is static.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active interaction.
	ActiveFPS = 30
	// IdleTimeoutMs is the time in milliseconds without motion before
	// landmark inference is paused.
	IdleTimeoutMs = 2000
	// savedBannerFrames is how long the save confirmation stays on screen.
	savedBannerFrames = 30
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	SaveDir      string
	CameraID     int
	MotionThresh float64
	Detector     detector.Config

	// Smoothing factor for the pointer; zero means gesture.DefaultAlpha.
	Alpha float64

	// Save trigger tuning; zero means the gesture package defaults.
	MouthOpenThreshold int
	SaveCooldownFrames int

	// ShowWindow controls whether the pipeline opens a preview window.
	ShowWindow bool
}

// StateUpdate is the per-frame state snapshot published to subscribers.
type StateUpdate struct {
	Tool      paint.Snapshot `json:"tool"`
	Pointer   [2]int         `json:"pointer"`
	Event     string         `json:"event"`
	SaveFired bool           `json:"saveFired"`
	LastSaved string         `json:"lastSaved,omitempty"`
}

// App orchestrates the camera, the landmark detector, the gesture layer
// and the painting surface. All per-frame state is mutated only by the
// pipeline goroutine; the mutex exists for the read-side accessors.
type App struct {
	config Config
	camera capture.Camera
	motion *capture.MotionDetector
	det    detector.Detector

	ui       *paint.UI
	board    *paint.Board
	smoother *gesture.Smoother
	trigger  *gesture.SaveTrigger

	// prev is the previous smoothed draw point; the zero value doubles
	// as the stroke-gap sentinel.
	prev image.Point

	lastSaved   string
	savedBanner int
	lastEvent   paint.Event

	onState func(StateUpdate)
	onFrame func([]byte)
	onSave  func(filename string)

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) (*App, error) {
	if err := detector.ValidateContract(); err != nil {
		return nil, fmt.Errorf("landmark contract: %w", err)
	}

	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		motion:   capture.NewMotionDetector(motionThreshold),
		ui:       paint.NewUI(),
		board:    paint.NewBoard(paint.FrameWidth, paint.FrameHeight, paint.CanvasBackground),
		smoother: gesture.NewSmoother(config.Alpha),
		trigger:  gesture.NewSaveTrigger(config.MouthOpenThreshold, config.SaveCooldownFrames),
		enabled:  true,
	}

	// Try MediaPipe first, fall back to the mock detector so the UI
	// still comes up without the Python service.
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.det = mp
		log.Println("Using MediaPipe hand/face detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.det = detector.NewMockDetector()
	}

	return a, nil
}

// SetEnabled enables or disables tracking. While disabled, frames are
// still displayed but no interaction happens.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether tracking is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the landmark detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.det = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnState registers a callback invoked with every frame's state update.
func (a *App) OnState(fn func(StateUpdate)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onState = fn
}

// OnFrame registers a callback invoked with every composited JPEG frame.
func (a *App) OnFrame(fn func([]byte)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onFrame = fn
}

// OnSave registers a callback invoked with the filename of each save.
func (a *App) OnSave(fn func(filename string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onSave = fn
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Snapshot returns the most recent state update.
func (a *App) Snapshot() StateUpdate {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return StateUpdate{
		Tool:      a.ui.Snapshot(),
		Pointer:   [2]int{a.prev.X, a.prev.Y},
		Event:     a.lastEvent.String(),
		LastSaved: a.lastSaved,
	}
}

// LastSaved returns the filename of the most recent save, if any.
func (a *App) LastSaved() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastSaved
}

// Start opens the camera and begins the frame pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Painter pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.det != nil {
		if err := a.det.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	a.board.Close()

	log.Println("Painter pipeline stopped")
}

// saveCanvas writes the canvas as a timestamped PNG under the save
// directory and records it in the store. Must be called with the mutex
// held.
func (a *App) saveCanvas() (string, error) {
	if a.config.SaveDir == "" {
		return "", fmt.Errorf("no save directory configured")
	}
	if err := os.MkdirAll(a.config.SaveDir, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("air_drawing_testing_%s.png", timestamp)
	path := filepath.Join(a.config.SaveDir, filename)

	if err := a.board.Save(path); err != nil {
		return "", err
	}

	if a.config.Store != nil {
		record := &store.Drawing{
			ID:       uuid.NewString(),
			Filename: filename,
			Path:     path,
			Width:    paint.FrameWidth,
			Height:   paint.FrameHeight,
		}
		if err := a.config.Store.Drawings().Create(record); err != nil {
			log.Printf("Failed to record drawing %s: %v", filename, err)
		}
	}

	return filename, nil
}
