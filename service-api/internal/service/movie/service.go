package movie

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"moviehub/pkg/logger"
	"moviehub/pkg/model"
	"moviehub/pkg/queue"
	"moviehub/pkg/reaction"
	"moviehub/pkg/storage"
	"moviehub/pkg/utils"
	countryRepo "moviehub/service-api/internal/repository/country"
	genreRepo "moviehub/service-api/internal/repository/genre"
	movieRepo "moviehub/service-api/internal/repository/movie"
	reactionRepo "moviehub/service-api/internal/repository/reaction"

	"github.com/google/uuid"
)

var ErrMovieNotFound = errors.New("movie not found")

// Service defines the movie service interface
type Service interface {
	List(filter model.MovieFilter, limit, offset int) ([]model.Movie, int, error)
	GetBySlug(ctx context.Context, slug string) (*model.Movie, error)
	Create(ctx context.Context, req *model.MovieRequest) (*model.Movie, error)
	Update(ctx context.Context, slug string, req *model.MovieRequest) (*model.Movie, error)
	Delete(ctx context.Context, slug string) error
	React(slug string, userID uuid.UUID, kind reaction.Kind) (model.ReactionCounters, error)
	View(slug string) (int, error)
}

// movieService provides movie-related services.
type movieService struct {
	movieRepo    movieRepo.Repository
	genreRepo    genreRepo.Repository
	countryRepo  countryRepo.Repository
	reactionRepo reactionRepo.Repository
	storage      storage.Provider
	publisher    *queue.Publisher
}

// NewMovieService creates a new movie service instance.
func NewMovieService(
	movieRepo movieRepo.Repository,
	genreRepo genreRepo.Repository,
	countryRepo countryRepo.Repository,
	reactionRepo reactionRepo.Repository,
	storageProvider storage.Provider,
	publisher *queue.Publisher,
) Service {
	return &movieService{
		movieRepo:    movieRepo,
		genreRepo:    genreRepo,
		countryRepo:  countryRepo,
		reactionRepo: reactionRepo,
		storage:      storageProvider,
		publisher:    publisher,
	}
}

// List returns a page of movies matching the filter, with the total count
func (s *movieService) List(filter model.MovieFilter, limit, offset int) ([]model.Movie, int, error) {
	return s.movieRepo.List(filter, limit, offset)
}

// GetBySlug retrieves a movie by slug, photo path resolved to a public URL
func (s *movieService) GetBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	movie, err := s.movieRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	s.resolvePhotoURL(ctx, movie)
	return movie, nil
}

// Create creates a movie, uploads its photo and queues the new-movie
// broadcast.
func (s *movieService) Create(ctx context.Context, req *model.MovieRequest) (*model.Movie, error) {
	movie := &model.Movie{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}

	genreIDs, err := s.applyRequest(ctx, movie, req)
	if err != nil {
		return nil, err
	}

	err = s.movieRepo.Create(movie, genreIDs)
	if err != nil {
		if err == movieRepo.ErrConflict {
			return nil, model.NewValidationError("title", "A movie with that title or slug already exists.")
		}
		return nil, err
	}

	s.queueMovieCreated(movie)
	s.resolvePhotoURL(ctx, movie)

	return movie, nil
}

// Update replaces a movie's fields and genre links. Counters are never
// touched here.
func (s *movieService) Update(ctx context.Context, slug string, req *model.MovieRequest) (*model.Movie, error) {
	movie, err := s.movieRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	genreIDs, err := s.applyRequest(ctx, movie, req)
	if err != nil {
		return nil, err
	}

	err = s.movieRepo.Update(movie, genreIDs)
	if err != nil {
		if err == movieRepo.ErrConflict {
			return nil, model.NewValidationError("title", "A movie with that title or slug already exists.")
		}
		return nil, err
	}

	s.resolvePhotoURL(ctx, movie)
	return movie, nil
}

// Delete removes a movie by slug along with its stored photo
func (s *movieService) Delete(ctx context.Context, slug string) error {
	movie, err := s.movieRepo.GetBySlug(slug)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	deleted, err := s.movieRepo.Delete(slug)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMovieNotFound
	}

	if movie.PhotoPath != "" {
		if err := s.storage.Delete(ctx, movie.PhotoPath); err != nil {
			logger.Error(err, "failed to delete movie photo")
		}
	}

	return nil
}

// React toggles the caller's like or dislike on a movie and returns the
// fresh counters.
func (s *movieService) React(slug string, userID uuid.UUID, kind reaction.Kind) (model.ReactionCounters, error) {
	movie, err := s.movieRepo.GetBySlug(slug)
	if err != nil {
		return model.ReactionCounters{}, err
	}
	if movie == nil {
		return model.ReactionCounters{}, ErrMovieNotFound
	}

	return s.reactionRepo.Toggle(movie.ID, userID, kind)
}

// View increments the view counter and returns the new value
func (s *movieService) View(slug string) (int, error) {
	views, found, err := s.movieRepo.IncrementView(slug)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrMovieNotFound
	}
	return views, nil
}

// applyRequest copies request fields onto the movie, resolves country and
// genre slugs and uploads the photo when one was sent. Returns the resolved
// genre IDs.
func (s *movieService) applyRequest(ctx context.Context, movie *model.Movie, req *model.MovieRequest) ([]uuid.UUID, error) {
	movie.Title = req.Title
	movie.Description = req.Description
	movie.Duration = req.Duration
	movie.Language = req.Language
	movie.Year = req.Year
	movie.AgeLimit = req.AgeLimit

	movie.Slug = req.Slug
	if movie.Slug == "" {
		movie.Slug = utils.Slugify(req.Title)
	}

	movie.Country = nil
	if req.Country != "" {
		country, err := s.countryRepo.GetBySlug(req.Country)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, model.NewValidationError("country", "Unknown country slug.")
		}
		movie.Country = country
	}

	genreIDs := make([]uuid.UUID, 0, len(req.Genres))
	movie.Genres = movie.Genres[:0]
	for _, slug := range req.Genres {
		genre, err := s.genreRepo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if genre == nil {
			return nil, model.NewValidationError("genre", fmt.Sprintf("Unknown genre slug: %s.", slug))
		}
		genreIDs = append(genreIDs, genre.ID)
		movie.Genres = append(movie.Genres, *genre)
	}

	if req.Photo != nil {
		filename := storage.MoviePhotoPrefix + movie.ID.String() + filepath.Ext(req.Photo.Filename)
		path, err := s.storage.Upload(ctx, req.Photo, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %w", err)
		}
		movie.PhotoPath = path
	}

	return genreIDs, nil
}

// resolvePhotoURL swaps the stored object path for a public URL. A failed
// lookup leaves the raw path in place.
func (s *movieService) resolvePhotoURL(ctx context.Context, movie *model.Movie) {
	if movie.PhotoPath == "" {
		return
	}

	url, err := s.storage.GetPublicURL(ctx, movie.PhotoPath)
	if err != nil {
		logger.Error(err, "failed to resolve photo url")
		return
	}
	movie.PhotoPath = url
}

// queueMovieCreated publishes the broadcast event without blocking the
// request; failures are logged and swallowed.
func (s *movieService) queueMovieCreated(movie *model.Movie) {
	event := queue.MovieCreatedEvent{
		Title:    movie.Title,
		Duration: movie.Duration,
		Language: movie.Language,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.publisher.PublishMovieCreated(ctx, event); err != nil {
			logger.Error(err, "failed to queue new-movie broadcast")
		}
	}()
}
