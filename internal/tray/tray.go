// Package tray provides a system tray interface for the air painter.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle  func(enabled bool)
	onGallery func()
	onQuit    func()
	enabled   bool
	mu        sync.RWMutex

	// Menu items stored for later updates
	menuToggle    *systray.MenuItem
	menuLastSaved *systray.MenuItem
}

// New creates a new Tray instance with tracking enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when tracking is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnGallery sets the callback function to be called when the gallery menu
// item is clicked.
func (t *Tray) OnGallery(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onGallery = fn
}

// OnQuit sets the callback function to be called when the quit menu item
// is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("AirPaint")
	systray.SetTooltip("AirPaint hand-tracked drawing")

	t.menuToggle = systray.AddMenuItem("● Tracking", "Toggle hand tracking")
	systray.AddSeparator()

	t.menuLastSaved = systray.AddMenuItem("Last save: none", "Most recently saved drawing")
	t.menuLastSaved.Disable()
	systray.AddSeparator()

	menuGallery := systray.AddMenuItem("Open Gallery...", "Open saved drawings in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit AirPaint")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuGallery.ClickedCh:
				t.handleGallery()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Tracking")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleGallery handles the gallery menu item click.
func (t *Tray) handleGallery() {
	t.mu.RLock()
	callback := t.onGallery
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastSaved updates the last-saved display in the menu.
func (t *Tray) SetLastSaved(filename string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastSaved != nil {
		if filename == "" {
			t.menuLastSaved.SetTitle("Last save: none")
		} else {
			t.menuLastSaved.SetTitle("Last save: " + filename)
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
