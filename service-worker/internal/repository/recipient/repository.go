package recipient

import (
	"database/sql"
	"fmt"
)

// Repository resolves broadcast recipients
type Repository interface {
	Emails() ([]string, error)
}

// repository implements the recipient repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new recipient repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// Emails returns the addresses of every user with a non-empty email
func (r *repository) Emails() ([]string, error) {
	rows, err := r.db.Query(`SELECT email FROM users WHERE email <> ''`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipients: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		emails = append(emails, email)
	}

	return emails, rows.Err()
}
