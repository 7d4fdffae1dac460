package genre

import (
	"errors"

	"moviehub/pkg/model"
	"moviehub/pkg/utils"
	genreRepo "moviehub/service-api/internal/repository/genre"

	"github.com/google/uuid"
)

var ErrGenreNotFound = errors.New("genre not found")

// Service defines the genre service interface
type Service interface {
	List(search string, limit, offset int) ([]model.Genre, int, error)
	GetBySlug(slug string) (*model.Genre, error)
	Create(req *model.GenreRequest) (*model.Genre, error)
	Update(slug string, req *model.GenreRequest) (*model.Genre, error)
	Delete(slug string) error
}

// genreService provides genre-related services.
type genreService struct {
	genreRepo genreRepo.Repository
}

// NewGenreService creates a new genre service instance.
func NewGenreService(genreRepo genreRepo.Repository) Service {
	return &genreService{
		genreRepo: genreRepo,
	}
}

// List returns a page of genres with the total count
func (s *genreService) List(search string, limit, offset int) ([]model.Genre, int, error) {
	return s.genreRepo.List(search, limit, offset)
}

// GetBySlug retrieves a genre by slug
func (s *genreService) GetBySlug(slug string) (*model.Genre, error) {
	genre, err := s.genreRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}
	return genre, nil
}

// Create creates a new genre, deriving the slug from the name when omitted
func (s *genreService) Create(req *model.GenreRequest) (*model.Genre, error) {
	genre := &model.Genre{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: slugOf(req),
	}

	err := s.genreRepo.Create(genre)
	if err != nil {
		if err == genreRepo.ErrConflict {
			return nil, model.NewValidationError("name", "A genre with that name or slug already exists.")
		}
		return nil, err
	}

	return genre, nil
}

// Update replaces a genre's name and slug
func (s *genreService) Update(slug string, req *model.GenreRequest) (*model.Genre, error) {
	genre, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	genre.Name = req.Name
	genre.Slug = slugOf(req)

	err = s.genreRepo.Update(genre)
	if err != nil {
		if err == genreRepo.ErrConflict {
			return nil, model.NewValidationError("name", "A genre with that name or slug already exists.")
		}
		return nil, err
	}

	return genre, nil
}

// Delete removes a genre by slug
func (s *genreService) Delete(slug string) error {
	deleted, err := s.genreRepo.Delete(slug)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGenreNotFound
	}
	return nil
}

func slugOf(req *model.GenreRequest) string {
	if req.Slug != "" {
		return req.Slug
	}
	return utils.Slugify(req.Name)
}
