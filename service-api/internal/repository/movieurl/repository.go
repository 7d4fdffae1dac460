package movieurl

import (
	"database/sql"
	"errors"
	"fmt"

	"moviehub/pkg/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrPartTaken is returned when another link on the same movie already
// carries the requested part number.
var ErrPartTaken = errors.New("part already taken for this movie")

// Repository defines the movie URL repository interface
type Repository interface {
	ListByMovie(movieID uuid.UUID) ([]model.MovieURL, error)
	GetByID(id uuid.UUID) (*model.MovieURL, error)
	Create(url *model.MovieURL) error
	Update(url *model.MovieURL) error
	Delete(id uuid.UUID) (bool, error)
}

// repository implements the movie URL repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new movie URL repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// ListByMovie retrieves all links of one movie, series parts in order
func (r *repository) ListByMovie(movieID uuid.UUID) ([]model.MovieURL, error) {
	query := `
		SELECT id, movie_id, url_type, part, embed_input, embed_url, created_at
		FROM movie_urls
		WHERE movie_id = $1
		ORDER BY url_type, part NULLS FIRST`

	rows, err := r.db.Query(query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie urls: %w", err)
	}
	defer rows.Close()

	var urls []model.MovieURL
	for rows.Next() {
		var url model.MovieURL
		var part sql.NullInt64
		err := rows.Scan(&url.ID, &url.MovieID, &url.URLType, &part,
			&url.EmbedInput, &url.EmbedURL, &url.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie url: %w", err)
		}
		if part.Valid {
			p := int(part.Int64)
			url.Part = &p
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// GetByID retrieves a link by ID
func (r *repository) GetByID(id uuid.UUID) (*model.MovieURL, error) {
	url := &model.MovieURL{}
	var part sql.NullInt64
	query := `
		SELECT id, movie_id, url_type, part, embed_input, embed_url, created_at
		FROM movie_urls
		WHERE id = $1`

	row := r.db.QueryRow(query, id)
	err := row.Scan(&url.ID, &url.MovieID, &url.URLType, &part,
		&url.EmbedInput, &url.EmbedURL, &url.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Link not found
		}
		return nil, err
	}

	if part.Valid {
		p := int(part.Int64)
		url.Part = &p
	}

	return url, nil
}

// Create creates a new link in the database
func (r *repository) Create(url *model.MovieURL) error {
	query := `
		INSERT INTO movie_urls (id, movie_id, url_type, part, embed_input, embed_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query, url.ID, url.MovieID, url.URLType, nullablePart(url),
		url.EmbedInput, url.EmbedURL, url.CreatedAt)
	return mapConflict(err)
}

// Update updates a link in the database
func (r *repository) Update(url *model.MovieURL) error {
	query := `
		UPDATE movie_urls
		SET url_type = $2, part = $3, embed_input = $4, embed_url = $5
		WHERE id = $1`

	_, err := r.db.Exec(query, url.ID, url.URLType, nullablePart(url),
		url.EmbedInput, url.EmbedURL)
	return mapConflict(err)
}

// Delete deletes a link by ID, reporting whether a row was removed
func (r *repository) Delete(id uuid.UUID) (bool, error) {
	result, err := r.db.Exec("DELETE FROM movie_urls WHERE id = $1", id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func nullablePart(url *model.MovieURL) interface{} {
	if url.Part == nil {
		return nil
	}
	return *url.Part
}

// mapConflict translates the (movie_id, part) unique violation into
// ErrPartTaken
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrPartTaken
	}
	return err
}
