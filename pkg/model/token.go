package model

import (
	"time"

	"github.com/google/uuid"
)

// Token is a stored refresh token. Value holds the SHA-256 hex of the raw
// token; the raw string never touches the database.
type Token struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Value     string    `json:"value" db:"value"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
