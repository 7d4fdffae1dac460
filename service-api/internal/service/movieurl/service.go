package movieurl

import (
	"errors"
	"time"

	"moviehub/pkg/embed"
	"moviehub/pkg/model"
	movieRepo "moviehub/service-api/internal/repository/movie"
	movieurlRepo "moviehub/service-api/internal/repository/movieurl"

	"github.com/google/uuid"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrLinkNotFound  = errors.New("movie url not found")
)

// Service defines the movie URL service interface
type Service interface {
	ListByMovieSlug(slug string) ([]model.MovieURL, error)
	Create(slug string, req *model.MovieURLRequest) (*model.MovieURL, error)
	Update(slug string, id uuid.UUID, req *model.MovieURLRequest) (*model.MovieURL, error)
	Delete(slug string, id uuid.UUID) error
}

// movieURLService provides embed-link services.
type movieURLService struct {
	movieRepo    movieRepo.Repository
	movieURLRepo movieurlRepo.Repository
}

// NewMovieURLService creates a new movie URL service instance.
func NewMovieURLService(movieRepo movieRepo.Repository, movieURLRepo movieurlRepo.Repository) Service {
	return &movieURLService{
		movieRepo:    movieRepo,
		movieURLRepo: movieURLRepo,
	}
}

// ListByMovieSlug returns all links of one movie
func (s *movieURLService) ListByMovieSlug(slug string) ([]model.MovieURL, error) {
	movie, err := s.getMovie(slug)
	if err != nil {
		return nil, err
	}

	return s.movieURLRepo.ListByMovie(movie.ID)
}

// Create validates and stores a new embed link under a movie. The embed
// input is normalized before every persist.
func (s *movieURLService) Create(slug string, req *model.MovieURLRequest) (*model.MovieURL, error) {
	movie, err := s.getMovie(slug)
	if err != nil {
		return nil, err
	}

	embedURL, err := embed.Normalize(req.URLType, req.Part, req.EmbedInput)
	if err != nil {
		return nil, err
	}

	url := &model.MovieURL{
		ID:         uuid.New(),
		MovieID:    movie.ID,
		URLType:    req.URLType,
		Part:       req.Part,
		EmbedInput: req.EmbedInput,
		EmbedURL:   embedURL,
		CreatedAt:  time.Now(),
	}

	err = s.movieURLRepo.Create(url)
	if err != nil {
		if err == movieurlRepo.ErrPartTaken {
			return nil, model.NewValidationError("part", "This part number is already taken for this movie.")
		}
		return nil, err
	}

	return url, nil
}

// Update re-validates and replaces an existing link
func (s *movieURLService) Update(slug string, id uuid.UUID, req *model.MovieURLRequest) (*model.MovieURL, error) {
	movie, err := s.getMovie(slug)
	if err != nil {
		return nil, err
	}

	url, err := s.getLink(movie.ID, id)
	if err != nil {
		return nil, err
	}

	embedURL, err := embed.Normalize(req.URLType, req.Part, req.EmbedInput)
	if err != nil {
		return nil, err
	}

	url.URLType = req.URLType
	url.Part = req.Part
	url.EmbedInput = req.EmbedInput
	url.EmbedURL = embedURL

	err = s.movieURLRepo.Update(url)
	if err != nil {
		if err == movieurlRepo.ErrPartTaken {
			return nil, model.NewValidationError("part", "This part number is already taken for this movie.")
		}
		return nil, err
	}

	return url, nil
}

// Delete removes a link from a movie
func (s *movieURLService) Delete(slug string, id uuid.UUID) error {
	movie, err := s.getMovie(slug)
	if err != nil {
		return err
	}

	if _, err := s.getLink(movie.ID, id); err != nil {
		return err
	}

	deleted, err := s.movieURLRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLinkNotFound
	}
	return nil
}

func (s *movieURLService) getMovie(slug string) (*model.Movie, error) {
	movie, err := s.movieRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// getLink resolves a link and checks it belongs to the addressed movie.
func (s *movieURLService) getLink(movieID, id uuid.UUID) (*model.MovieURL, error) {
	url, err := s.movieURLRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if url == nil || url.MovieID != movieID {
		return nil, ErrLinkNotFound
	}
	return url, nil
}
