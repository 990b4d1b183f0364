// Package server provides the HTTP status server for the air painter.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/airpaint/internal/server/api"
	"github.com/ayusman/airpaint/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store

	// State returns the current painter state for /api/state. The server
	// only registers the endpoint when it is set.
	State func() interface{}
}

// Server exposes the painter over HTTP: health and state endpoints, the
// drawings API, a WebSocket state stream and an MJPEG preview stream.
type Server struct {
	config Config
	mux    *http.ServeMux
	state  *StateHandler
	stream *StreamHandler
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		state:  NewStateHandler(),
		stream: NewStreamHandler(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.State != nil {
		s.mux.HandleFunc("/api/state", s.handleState)
	}

	if s.config.Store != nil {
		drawingsHandler := api.NewDrawingsHandler(s.config.Store)
		s.mux.Handle("/api/drawings", drawingsHandler)
		s.mux.Handle("/api/drawings/", drawingsHandler)
	}

	s.mux.Handle("/api/ws", s.state)
	s.mux.Handle("/api/stream", s.stream)

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// PublishFrame hands a composited JPEG frame to the MJPEG stream.
func (s *Server) PublishFrame(frame []byte) {
	s.stream.Publish(frame)
}

// BroadcastState pushes a state update to all WebSocket clients.
func (s *Server) BroadcastState(v interface{}) {
	s.state.Broadcast(v)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleState handles GET requests to /api/state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.config.State()); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
