package user

import (
	"database/sql"
	"errors"
	"strings"

	"moviehub/pkg/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Conflict sentinels for the users table's unique columns. Create maps the
// database violation onto these so a duplicate that slips past the service
// pre-checks still surfaces as a field error, not a 500.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
)

// Repository defines the user repository interface
type Repository interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByID(id uuid.UUID) (*model.User, error)
	Activate(id uuid.UUID) error
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

// repository implements the user repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

const userColumns = `id, username, first_name, last_name, email, password_hash, role, is_active, created_at`

// Create creates a new user in the database
func (r *repository) Create(user *model.User) error {
	query := `
		INSERT INTO users (id, username, first_name, last_name, email, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query, user.ID, user.Username, user.FirstName, user.LastName,
		user.Email, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt)
	return mapConflict(err)
}

// mapConflict translates a unique violation into the sentinel for the
// offending column
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}
	return err
}

// GetByUsername retrieves a user by username, case-insensitive
func (r *repository) GetByUsername(username string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(username) = LOWER($1)`

	return r.scanOne(r.db.QueryRow(query, username))
}

// GetByEmail retrieves a user by email
func (r *repository) GetByEmail(email string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	return r.scanOne(r.db.QueryRow(query, email))
}

// GetByID retrieves a user by ID
func (r *repository) GetByID(id uuid.UUID) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Activate marks a user's email as verified
func (r *repository) Activate(id uuid.UUID) error {
	query := `UPDATE users SET is_active = TRUE WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// UpdatePassword replaces a user's password hash
func (r *repository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`
	_, err := r.db.Exec(query, id, passwordHash)
	return err
}

func (r *repository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&user.Email, &user.PasswordHash, &user.Role, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, err
	}

	return user, nil
}

// VerifyPassword verifies a password against its hash
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
