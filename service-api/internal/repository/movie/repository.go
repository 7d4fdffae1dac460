package movie

import (
	"database/sql"
	"errors"
	"fmt"

	"moviehub/pkg/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrConflict is returned when a title or slug is already taken.
var ErrConflict = errors.New("movie already exists")

// Repository defines the movie repository interface
type Repository interface {
	Create(movie *model.Movie, genreIDs []uuid.UUID) error
	GetBySlug(slug string) (*model.Movie, error)
	List(filter model.MovieFilter, limit, offset int) ([]model.Movie, int, error)
	Update(movie *model.Movie, genreIDs []uuid.UUID) error
	Delete(slug string) (bool, error)
	IncrementView(slug string) (int, bool, error)
}

// repository implements the movie repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new movie repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create creates a movie and its genre links in one transaction
func (r *repository) Create(movie *model.Movie, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO movies (id, title, slug, description, duration, language, year, age_limit,
			like_count, dislike_count, view_count, photo_path, country_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, 0, $9, $10, $11)`

	_, err = tx.Exec(query,
		movie.ID, movie.Title, movie.Slug, movie.Description, movie.Duration,
		movie.Language, movie.Year, movie.AgeLimit, movie.PhotoPath,
		countryID(movie), movie.CreatedAt)
	if err != nil {
		return mapConflict(err)
	}

	err = insertGenres(tx, movie.ID, genreIDs)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetBySlug retrieves a movie by slug with its country and genres
func (r *repository) GetBySlug(slug string) (*model.Movie, error) {
	query := `
		SELECT m.id, m.title, m.slug, m.description, m.duration, m.language, m.year, m.age_limit,
			m.like_count, m.dislike_count, m.view_count, m.photo_path, m.created_at,
			c.id, c.name, c.slug
		FROM movies m
		LEFT JOIN countries c ON c.id = m.country_id
		WHERE m.slug = $1`

	movie, err := scanMovie(r.db.QueryRow(query, slug))
	if err != nil || movie == nil {
		return nil, err
	}

	err = r.loadGenres([]*model.Movie{movie})
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// List retrieves movies matching the filter with pagination
func (r *repository) List(filter model.MovieFilter, limit, offset int) ([]model.Movie, int, error) {
	where := "WHERE TRUE"
	args := []interface{}{}

	if filter.Genre != "" {
		args = append(args, filter.Genre)
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM movie_genres mg
			JOIN genres g ON g.id = mg.genre_id
			WHERE mg.movie_id = m.id AND g.slug = $%d)`, len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		where += fmt.Sprintf(" AND m.year = $%d", len(args))
	}
	if filter.Country != "" {
		args = append(args, filter.Country)
		where += fmt.Sprintf(" AND c.slug = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND m.title ILIKE $%d", len(args))
	}

	countQuery := `
		SELECT COUNT(*)
		FROM movies m
		LEFT JOIN countries c ON c.id = m.country_id ` + where

	var totalCount int
	err := r.db.QueryRow(countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get movies count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT m.id, m.title, m.slug, m.description, m.duration, m.language, m.year, m.age_limit,
			m.like_count, m.dislike_count, m.view_count, m.photo_path, m.created_at,
			c.id, c.name, c.slug
		FROM movies m
		LEFT JOIN countries c ON c.id = m.country_id
		%s
		ORDER BY m.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []model.Movie
	for rows.Next() {
		movie, err := scanMovieRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *movie)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	refs := make([]*model.Movie, len(movies))
	for i := range movies {
		refs[i] = &movies[i]
	}

	err = r.loadGenres(refs)
	if err != nil {
		return nil, 0, err
	}

	return movies, totalCount, nil
}

// Update updates a movie and rewrites its genre links in one transaction.
// Counters are deliberately left untouched.
func (r *repository) Update(movie *model.Movie, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE movies
		SET title = $2, slug = $3, description = $4, duration = $5, language = $6,
			year = $7, age_limit = $8, photo_path = $9, country_id = $10
		WHERE id = $1`

	result, err := tx.Exec(query,
		movie.ID, movie.Title, movie.Slug, movie.Description, movie.Duration,
		movie.Language, movie.Year, movie.AgeLimit, movie.PhotoPath, countryID(movie))
	if err != nil {
		return mapConflict(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("movie not found")
	}

	_, err = tx.Exec("DELETE FROM movie_genres WHERE movie_id = $1", movie.ID)
	if err != nil {
		return err
	}

	err = insertGenres(tx, movie.ID, genreIDs)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete deletes a movie by slug, reporting whether a row was removed
func (r *repository) Delete(slug string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM movies WHERE slug = $1", slug)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// IncrementView atomically bumps the view counter and returns the new value.
// The increment runs inside the database so concurrent views never lose
// updates.
func (r *repository) IncrementView(slug string) (int, bool, error) {
	query := `
		UPDATE movies
		SET view_count = view_count + 1
		WHERE slug = $1
		RETURNING view_count`

	var viewCount int
	err := r.db.QueryRow(query, slug).Scan(&viewCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil // Movie not found
		}
		return 0, false, err
	}

	return viewCount, true, nil
}

// loadGenres attaches genres to the given movies with a single query
func (r *repository) loadGenres(movies []*model.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(movies))
	byID := make(map[uuid.UUID]*model.Movie, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
		byID[m.ID] = m
		m.Genres = []model.Genre{}
	}

	query := `
		SELECT mg.movie_id, g.id, g.name, g.slug
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1)
		ORDER BY g.name`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query movie genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID uuid.UUID
		var genre model.Genre
		err := rows.Scan(&movieID, &genre.ID, &genre.Name, &genre.Slug)
		if err != nil {
			return fmt.Errorf("failed to scan movie genre: %w", err)
		}
		if m, ok := byID[movieID]; ok {
			m.Genres = append(m.Genres, genre)
		}
	}

	return rows.Err()
}

func insertGenres(tx *sql.Tx, movieID uuid.UUID, genreIDs []uuid.UUID) error {
	for _, genreID := range genreIDs {
		_, err := tx.Exec(
			"INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)",
			movieID, genreID)
		if err != nil {
			return fmt.Errorf("failed to link genre: %w", err)
		}
	}
	return nil
}

func countryID(movie *model.Movie) interface{} {
	if movie.Country == nil {
		return nil
	}
	return movie.Country.ID
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row *sql.Row) (*model.Movie, error) {
	movie, err := scanMovieRows(row)
	if err == sql.ErrNoRows {
		return nil, nil // Movie not found
	}
	return movie, err
}

func scanMovieRows(row rowScanner) (*model.Movie, error) {
	movie := &model.Movie{}
	var countryIDVal uuid.NullUUID
	var countryName, countrySlug sql.NullString

	err := row.Scan(&movie.ID, &movie.Title, &movie.Slug, &movie.Description,
		&movie.Duration, &movie.Language, &movie.Year, &movie.AgeLimit,
		&movie.LikeCount, &movie.DislikeCount, &movie.ViewCount,
		&movie.PhotoPath, &movie.CreatedAt,
		&countryIDVal, &countryName, &countrySlug)
	if err != nil {
		return nil, err
	}

	if countryIDVal.Valid {
		movie.Country = &model.Country{
			ID:   countryIDVal.UUID,
			Name: countryName.String,
			Slug: countrySlug.String,
		}
	}

	return movie, nil
}

// mapConflict translates a postgres unique violation into ErrConflict
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrConflict
	}
	return err
}
