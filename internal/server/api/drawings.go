// Package api provides HTTP API handlers for the air painter.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/ayusman/airpaint/internal/store"
)

// DrawingsHandler handles HTTP requests for saved drawings.
type DrawingsHandler struct {
	store *store.Store
}

// NewDrawingsHandler creates a new DrawingsHandler with the given store.
func NewDrawingsHandler(s *store.Store) *DrawingsHandler {
	return &DrawingsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *DrawingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/drawings or /api/drawings/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/drawings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/drawings
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w, r)
		return
	}

	// Item endpoint: /api/drawings/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type drawingResponse struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"created_at"`
}

type listDrawingsResponse struct {
	Drawings []drawingResponse `json:"drawings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Drawing to a drawingResponse.
func toResponse(d *store.Drawing) drawingResponse {
	return drawingResponse{
		ID:        d.ID,
		Filename:  d.Filename,
		Path:      d.Path,
		Width:     d.Width,
		Height:    d.Height,
		CreatedAt: d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/drawings and returns all saved drawings, newest
// first.
func (h *DrawingsHandler) list(w http.ResponseWriter, r *http.Request) {
	drawings, err := h.store.Drawings().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list drawings")
		return
	}

	response := listDrawingsResponse{
		Drawings: make([]drawingResponse, 0, len(drawings)),
	}

	for _, d := range drawings {
		response.Drawings = append(response.Drawings, toResponse(d))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/drawings/{id} and returns a single drawing record.
func (h *DrawingsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	drawing, err := h.store.Drawings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Drawing not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get drawing")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(drawing))
}

// delete handles DELETE /api/drawings/{id}. It removes both the record
// and the PNG on disk; a missing file is not an error.
func (h *DrawingsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	drawing, err := h.store.Drawings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Drawing not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get drawing")
		return
	}

	if err := h.store.Drawings().Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete drawing")
		return
	}

	if err := os.Remove(drawing.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove drawing file %s: %v", drawing.Path, err)
	}

	writeJSON(w, http.StatusNoContent, nil)
}
