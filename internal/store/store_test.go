package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
		"drawings",
	).Scan(&name)
	if err != nil {
		t.Errorf("drawings table should exist after migrations: %v", err)
	}
}

func TestDrawingRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Drawings()

	d := &Drawing{
		ID:       "drawing-1",
		Filename: "air_drawing_testing_20260830_120000.png",
		Path:     "/tmp/saves/air_drawing_testing_20260830_120000.png",
		Width:    1280,
		Height:   720,
	}

	if err := repo.Create(d); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.CreatedAt.IsZero() {
		t.Error("Create() should set CreatedAt")
	}

	got, err := repo.GetByID("drawing-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Filename != d.Filename || got.Width != 1280 || got.Height != 720 {
		t.Errorf("GetByID() = %+v, want %+v", got, d)
	}
}

func TestDrawingRepository_GetByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Drawings().GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDrawingRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Drawings()

	for _, id := range []string{"a", "b", "c"} {
		d := &Drawing{ID: id, Filename: id + ".png", Path: "/tmp/" + id + ".png", Width: 1280, Height: 720}
		if err := repo.Create(d); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	drawings, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(drawings) != 3 {
		t.Errorf("List() returned %d drawings, want 3", len(drawings))
	}
}

func TestDrawingRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Drawings()

	d := &Drawing{ID: "doomed", Filename: "doomed.png", Path: "/tmp/doomed.png", Width: 1280, Height: 720}
	if err := repo.Create(d); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete("doomed"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID("doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.Delete("doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting twice should return ErrNotFound, got %v", err)
	}
}

func TestDrawingRepository_Count(t *testing.T) {
	s := newTestStore(t)
	repo := s.Drawings()

	if n, err := repo.Count(); err != nil || n != 0 {
		t.Fatalf("Count() = %d, %v; want 0, nil", n, err)
	}

	d := &Drawing{ID: "one", Filename: "one.png", Path: "/tmp/one.png", Width: 1280, Height: 720}
	if err := repo.Create(d); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if n, err := repo.Count(); err != nil || n != 1 {
		t.Errorf("Count() = %d, %v; want 1, nil", n, err)
	}
}
