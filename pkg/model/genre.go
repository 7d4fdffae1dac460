package model

import "github.com/google/uuid"

// Genre is a named lookup entity addressed by slug.
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

// GenreRequest represents the payload for creating or updating a genre.
// Slug is derived from the name when omitted.
type GenreRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}
