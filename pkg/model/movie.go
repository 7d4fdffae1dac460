package model

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// Movie represents a catalog entry. The like/dislike/view counters are
// mutated only by the reaction toggle and the view counter, never through
// plain CRUD updates.
type Movie struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	Duration     string    `json:"duration" db:"duration"` // HH:MM:SS
	Language     string    `json:"language" db:"language"`
	Year         int       `json:"year" db:"year"`
	AgeLimit     int       `json:"age_limit" db:"age_limit"`
	LikeCount    int       `json:"like" db:"like_count"`
	DislikeCount int       `json:"dislike" db:"dislike_count"`
	ViewCount    int       `json:"view" db:"view_count"`
	PhotoPath    string    `json:"photo" db:"photo_path"`
	Country      *Country  `json:"country" db:"-"`
	Genres       []Genre   `json:"genre" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// MovieRequest represents the multipart payload for creating or updating a movie.
// Counters are not accepted from clients.
type MovieRequest struct {
	Title       string                `form:"title" binding:"required"`
	Slug        string                `form:"slug"`
	Description string                `form:"description"`
	Duration    string                `form:"duration"`
	Language    string                `form:"language"`
	Year        int                   `form:"year"`
	AgeLimit    int                   `form:"age_limit"`
	Country     string                `form:"country"` // country slug
	Genres      []string              `form:"genre"`   // genre slugs
	Photo       *multipart.FileHeader `form:"photo"`
}

// MovieFilter carries the supported list filters.
type MovieFilter struct {
	Genre   string `form:"genre"`   // genre slug, exact match
	Year    int    `form:"year"`    // exact match
	Country string `form:"country"` // country slug, exact match
	Search  string `form:"search"`  // free-text match on title
}

// ReactionCounters is the payload returned by the like/dislike endpoints.
type ReactionCounters struct {
	Like    int `json:"like"`
	Dislike int `json:"dislike"`
}
