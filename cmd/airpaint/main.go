package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ayusman/airpaint/internal/app"
	"github.com/ayusman/airpaint/internal/server"
	"github.com/ayusman/airpaint/internal/store"
	"github.com/ayusman/airpaint/internal/tray"
)

func main() {
	fmt.Println("AirPaint - Hand-Tracked Air Drawing")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".airpaint")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "airpaint.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	painter, err := app.New(app.Config{
		Store:      st,
		SaveDir:    filepath.Join(dataDir, "drawings"),
		ShowWindow: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize painter: %v", err)
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		State:     func() interface{} { return painter.Snapshot() },
	})
	painter.OnFrame(srv.PublishFrame)
	painter.OnState(func(u app.StateUpdate) { srv.BroadcastState(u) })

	addr := ":8080"
	go func() {
		fmt.Printf("Starting server on %s\n", addr)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Printf("Server failed: %v", err)
		}
	}()

	if err := painter.Start(); err != nil {
		log.Fatalf("Failed to start painter: %v", err)
	}

	// The tray owns the main goroutine; quitting it ends the process.
	tr := tray.New()
	tr.OnToggle(painter.SetEnabled)
	tr.OnGallery(func() { openBrowser("http://localhost:8080/api/drawings") })
	tr.OnQuit(painter.Stop)
	painter.OnSave(tr.SetLastSaved)

	tr.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.airpaint/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".airpaint", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
