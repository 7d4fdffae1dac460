package genre

import (
	"database/sql"
	"errors"
	"fmt"

	"moviehub/pkg/model"

	"github.com/lib/pq"
)

// ErrConflict is returned when a name or slug is already taken.
var ErrConflict = errors.New("genre already exists")

// Repository defines the genre repository interface
type Repository interface {
	List(search string, limit, offset int) ([]model.Genre, int, error)
	GetBySlug(slug string) (*model.Genre, error)
	Create(genre *model.Genre) error
	Update(genre *model.Genre) error
	Delete(slug string) (bool, error)
}

// repository implements the genre repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new genre repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// List retrieves genres with optional name search and pagination
func (r *repository) List(search string, limit, offset int) ([]model.Genre, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var totalCount int
	err := r.db.QueryRow("SELECT COUNT(*) FROM genres "+where, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get genres count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, slug
		FROM genres %s
		ORDER BY name
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var genre model.Genre
		err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return genres, totalCount, nil
}

// GetBySlug retrieves a genre by slug
func (r *repository) GetBySlug(slug string) (*model.Genre, error) {
	genre := &model.Genre{}
	query := `
		SELECT id, name, slug
		FROM genres
		WHERE slug = $1`

	row := r.db.QueryRow(query, slug)
	err := row.Scan(&genre.ID, &genre.Name, &genre.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Genre not found
		}
		return nil, err
	}

	return genre, nil
}

// Create creates a new genre in the database
func (r *repository) Create(genre *model.Genre) error {
	query := `
		INSERT INTO genres (id, name, slug)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(query, genre.ID, genre.Name, genre.Slug)
	return mapConflict(err)
}

// Update updates a genre in the database
func (r *repository) Update(genre *model.Genre) error {
	query := `
		UPDATE genres
		SET name = $2, slug = $3
		WHERE id = $1`

	_, err := r.db.Exec(query, genre.ID, genre.Name, genre.Slug)
	return mapConflict(err)
}

// Delete deletes a genre by slug, reporting whether a row was removed
func (r *repository) Delete(slug string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM genres WHERE slug = $1", slug)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// mapConflict translates a postgres unique violation into ErrConflict
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrConflict
	}
	return err
}
