package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/ayusman/airpaint/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedDrawing(t *testing.T, s *store.Store, dir string) *store.Drawing {
	t.Helper()

	d := &store.Drawing{
		ID:       uuid.NewString(),
		Filename: "air_drawing_testing_20260830_120000.png",
		Path:     filepath.Join(dir, "air_drawing_testing_20260830_120000.png"),
		Width:    1280,
		Height:   720,
	}
	if err := os.WriteFile(d.Path, []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("failed to write drawing file: %v", err)
	}
	if err := s.Drawings().Create(d); err != nil {
		t.Fatalf("failed to create drawing: %v", err)
	}
	return d
}

func TestDrawingsHandler_List(t *testing.T) {
	s := newTestStore(t)
	h := NewDrawingsHandler(s)

	t.Run("empty store returns empty list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/drawings", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response listDrawingsResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Drawings) != 0 {
			t.Errorf("expected 0 drawings, got %d", len(response.Drawings))
		}
	})

	t.Run("returns seeded drawings", func(t *testing.T) {
		seeded := seedDrawing(t, s, t.TempDir())

		req := httptest.NewRequest(http.MethodGet, "/api/drawings", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		var response listDrawingsResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Drawings) != 1 {
			t.Fatalf("expected 1 drawing, got %d", len(response.Drawings))
		}
		if response.Drawings[0].ID != seeded.ID {
			t.Errorf("expected ID %s, got %s", seeded.ID, response.Drawings[0].ID)
		}
		if response.Drawings[0].Width != 1280 || response.Drawings[0].Height != 720 {
			t.Errorf("unexpected dimensions %dx%d",
				response.Drawings[0].Width, response.Drawings[0].Height)
		}
	})

	t.Run("only allows GET on collection", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/drawings", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	})
}

func TestDrawingsHandler_Get(t *testing.T) {
	s := newTestStore(t)
	h := NewDrawingsHandler(s)
	seeded := seedDrawing(t, s, t.TempDir())

	t.Run("returns the drawing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/drawings/"+seeded.ID, nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response drawingResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Filename != seeded.Filename {
			t.Errorf("expected filename %s, got %s", seeded.Filename, response.Filename)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/drawings/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}

func TestDrawingsHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	h := NewDrawingsHandler(s)

	t.Run("removes record and file", func(t *testing.T) {
		seeded := seedDrawing(t, s, t.TempDir())

		req := httptest.NewRequest(http.MethodDelete, "/api/drawings/"+seeded.ID, nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
		if _, err := s.Drawings().GetByID(seeded.ID); err != store.ErrNotFound {
			t.Errorf("expected record gone, got err=%v", err)
		}
		if _, err := os.Stat(seeded.Path); !os.IsNotExist(err) {
			t.Errorf("expected file removed, got err=%v", err)
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		seeded := seedDrawing(t, s, t.TempDir())
		if err := os.Remove(seeded.Path); err != nil {
			t.Fatalf("failed to remove file: %v", err)
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/drawings/"+seeded.ID, nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/drawings/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}
