package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieURL link types
const (
	URLTypeTrailer = "trailer"
	URLTypeMovie   = "movie"
	URLTypeSeries  = "series"
)

// MovieURL is an embedded video link belonging to one movie. EmbedInput is
// the raw user submission; EmbedURL is the validated canonical URL derived
// from it. Part is set only for series links and is unique per movie.
type MovieURL struct {
	ID         uuid.UUID `json:"id" db:"id"`
	MovieID    uuid.UUID `json:"movie_id" db:"movie_id"`
	URLType    string    `json:"url_type" db:"url_type"`
	Part       *int      `json:"part" db:"part"`
	EmbedInput string    `json:"embed_input" db:"embed_input"`
	EmbedURL   string    `json:"embed_url" db:"embed_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// MovieURLRequest represents the payload for creating or updating a movie URL.
type MovieURLRequest struct {
	URLType    string `json:"url_type" binding:"required"`
	Part       *int   `json:"part"`
	EmbedInput string `json:"embed_input" binding:"required"`
}
