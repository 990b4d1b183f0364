package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Drawing represents one saved canvas image.
type Drawing struct {
	ID        string
	Filename  string
	Path      string
	Width     int
	Height    int
	CreatedAt time.Time
}

// DrawingRepository provides CRUD operations for saved drawings.
type DrawingRepository struct {
	db *sql.DB
}

// Drawings returns the drawing repository for this store.
func (s *Store) Drawings() *DrawingRepository {
	return &DrawingRepository{db: s.db}
}

// Create inserts a new drawing record.
func (r *DrawingRepository) Create(d *Drawing) error {
	d.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO drawings (id, filename, path, width, height, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Filename, d.Path, d.Width, d.Height, d.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a drawing by its ID.
func (r *DrawingRepository) GetByID(id string) (*Drawing, error) {
	d := &Drawing{}

	err := r.db.QueryRow(
		`SELECT id, filename, path, width, height, created_at
		 FROM drawings WHERE id = ?`,
		id,
	).Scan(&d.ID, &d.Filename, &d.Path, &d.Width, &d.Height, &d.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return d, nil
}

// List retrieves all drawings, newest first.
func (r *DrawingRepository) List() ([]*Drawing, error) {
	rows, err := r.db.Query(
		`SELECT id, filename, path, width, height, created_at
		 FROM drawings ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drawings []*Drawing
	for rows.Next() {
		d := &Drawing{}
		if err := rows.Scan(&d.ID, &d.Filename, &d.Path, &d.Width, &d.Height, &d.CreatedAt); err != nil {
			return nil, err
		}
		drawings = append(drawings, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drawings, nil
}

// Delete removes a drawing record by its ID.
func (r *DrawingRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM drawings WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of saved drawings.
func (r *DrawingRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM drawings`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
