package country

import (
	"database/sql"
	"errors"
	"fmt"

	"moviehub/pkg/model"

	"github.com/lib/pq"
)

// ErrConflict is returned when a name or slug is already taken.
var ErrConflict = errors.New("country already exists")

// Repository defines the country repository interface
type Repository interface {
	List(search string, limit, offset int) ([]model.Country, int, error)
	GetBySlug(slug string) (*model.Country, error)
	Create(country *model.Country) error
	Update(country *model.Country) error
	Delete(slug string) (bool, error)
}

// repository implements the country repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new country repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// List retrieves countries with optional name search and pagination
func (r *repository) List(search string, limit, offset int) ([]model.Country, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var totalCount int
	err := r.db.QueryRow("SELECT COUNT(*) FROM countries "+where, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get countries count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, slug
		FROM countries %s
		ORDER BY name
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	var countries []model.Country
	for rows.Next() {
		var country model.Country
		err := rows.Scan(&country.ID, &country.Name, &country.Slug)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, country)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return countries, totalCount, nil
}

// GetBySlug retrieves a country by slug
func (r *repository) GetBySlug(slug string) (*model.Country, error) {
	country := &model.Country{}
	query := `
		SELECT id, name, slug
		FROM countries
		WHERE slug = $1`

	row := r.db.QueryRow(query, slug)
	err := row.Scan(&country.ID, &country.Name, &country.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Country not found
		}
		return nil, err
	}

	return country, nil
}

// Create creates a new country in the database
func (r *repository) Create(country *model.Country) error {
	query := `
		INSERT INTO countries (id, name, slug)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(query, country.ID, country.Name, country.Slug)
	return mapConflict(err)
}

// Update updates a country in the database
func (r *repository) Update(country *model.Country) error {
	query := `
		UPDATE countries
		SET name = $2, slug = $3
		WHERE id = $1`

	_, err := r.db.Exec(query, country.ID, country.Name, country.Slug)
	return mapConflict(err)
}

// Delete deletes a country by slug, reporting whether a row was removed
func (r *repository) Delete(slug string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM countries WHERE slug = $1", slug)
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
