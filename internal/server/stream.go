package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// StreamHandler serves the composited preview as MJPEG. The frame
// pipeline owns the camera, so the handler never reads frames itself; it
// replays whatever the pipeline last published.
type StreamHandler struct {
	mu     sync.RWMutex
	latest []byte
	seq    uint64
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler() *StreamHandler {
	return &StreamHandler{}
}

// Publish stores an encoded JPEG frame as the latest preview frame.
func (h *StreamHandler) Publish(frame []byte) {
	h.mu.Lock()
	h.latest = frame
	h.seq++
	h.mu.Unlock()
}

// frame returns the latest frame and its sequence number.
func (h *StreamHandler) frame() ([]byte, uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.seq
}

// ServeHTTP streams MJPEG frames to connected clients.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var lastSeq uint64
	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		frame, seq := h.frame()
		if frame == nil || seq == lastSeq {
			time.Sleep(33 * time.Millisecond)
			continue
		}
		lastSeq = seq

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(frame))
		if _, err := w.Write(frame); err != nil {
			return
		}
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		time.Sleep(66 * time.Millisecond) // ~15 FPS
	}
}
