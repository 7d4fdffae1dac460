package model

import "github.com/google/uuid"

// Country is a named lookup entity addressed by slug.
type Country struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

// CountryRequest represents the payload for creating or updating a country.
// Slug is derived from the name when omitted.
type CountryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}
