package country

import (
	"errors"

	"moviehub/pkg/model"
	"moviehub/pkg/utils"
	countryRepo "moviehub/service-api/internal/repository/country"

	"github.com/google/uuid"
)

var ErrCountryNotFound = errors.New("country not found")

// Service defines the country service interface
type Service interface {
	List(search string, limit, offset int) ([]model.Country, int, error)
	GetBySlug(slug string) (*model.Country, error)
	Create(req *model.CountryRequest) (*model.Country, error)
	Update(slug string, req *model.CountryRequest) (*model.Country, error)
	Delete(slug string) error
}

// countryService provides country-related services.
type countryService struct {
	countryRepo countryRepo.Repository
}

// NewCountryService creates a new country service instance.
func NewCountryService(countryRepo countryRepo.Repository) Service {
	return &countryService{
		countryRepo: countryRepo,
	}
}

// List returns a page of countries with the total count
func (s *countryService) List(search string, limit, offset int) ([]model.Country, int, error) {
	return s.countryRepo.List(search, limit, offset)
}

// GetBySlug retrieves a country by slug
func (s *countryService) GetBySlug(slug string) (*model.Country, error) {
	country, err := s.countryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

// Create creates a new country, deriving the slug from the name when omitted
func (s *countryService) Create(req *model.CountryRequest) (*model.Country, error) {
	country := &model.Country{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: slugOf(req),
	}

	err := s.countryRepo.Create(country)
	if err != nil {
		if err == countryRepo.ErrConflict {
			return nil, model.NewValidationError("name", "A country with that name or slug already exists.")
		}
		return nil, err
	}

	return country, nil
}

// Update replaces a country's name and slug
func (s *countryService) Update(slug string, req *model.CountryRequest) (*model.Country, error) {
	country, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	country.Name = req.Name
	country.Slug = slugOf(req)

	err = s.countryRepo.Update(country)
	if err != nil {
		if err == countryRepo.ErrConflict {
			return nil, model.NewValidationError("name", "A country with that name or slug already exists.")
		}
		return nil, err
	}

	return country, nil
}

// Delete removes a country by slug
func (s *countryService) Delete(slug string) error {
	deleted, err := s.countryRepo.Delete(slug)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCountryNotFound
	}
	return nil
}

func slugOf(req *model.CountryRequest) string {
	if req.Slug != "" {
		return req.Slug
	}
	return utils.Slugify(req.Name)
}
