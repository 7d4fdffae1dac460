package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviehub/pkg/model"
	genreService "moviehub/service-api/internal/service/genre"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenreService struct {
	genres []model.Genre
}

func (f *fakeGenreService) List(search string, limit, offset int) ([]model.Genre, int, error) {
	return f.genres, len(f.genres), nil
}

func (f *fakeGenreService) GetBySlug(slug string) (*model.Genre, error) {
	for i := range f.genres {
		if f.genres[i].Slug == slug {
			return &f.genres[i], nil
		}
	}
	return nil, genreService.ErrGenreNotFound
}

func (f *fakeGenreService) Create(req *model.GenreRequest) (*model.Genre, error) {
	genre := model.Genre{ID: uuid.New(), Name: req.Name, Slug: req.Slug}
	f.genres = append(f.genres, genre)
	return &genre, nil
}

func (f *fakeGenreService) Update(slug string, req *model.GenreRequest) (*model.Genre, error) {
	return nil, genreService.ErrGenreNotFound
}

func (f *fakeGenreService) Delete(slug string) error {
	return genreService.ErrGenreNotFound
}

func newGenreRouter(svc genreService.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &controller{genreService: svc}

	router := gin.New()
	router.GET("/api/v1/genre", ctrl.ListGenres)
	router.GET("/api/v1/genre/:slug", ctrl.GetGenre)
	router.POST("/api/v1/genre", ctrl.CreateGenre)
	return router
}

func TestListGenresEnvelope(t *testing.T) {
	svc := &fakeGenreService{genres: []model.Genre{
		{ID: uuid.New(), Name: "Drama", Slug: "drama"},
		{ID: uuid.New(), Name: "Horror", Slug: "horror"},
	}}
	router := newGenreRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/genre", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Total   int           `json:"total"`
			Results []model.Genre `json:"results"`
		} `json:"data"`
		Error   *model.ErrorInfo `json:"error"`
		Success bool             `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)
	assert.Equal(t, 2, envelope.Data.Total)
	assert.Len(t, envelope.Data.Results, 2)
}

func TestGetGenreNotFoundEnvelope(t *testing.T) {
	router := newGenreRouter(&fakeGenreService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/genre/nope", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope model.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, http.StatusNotFound, envelope.Error.ErrorID)
	assert.True(t, envelope.Error.IsFriendly)
	assert.Equal(t, "Genre not found.", envelope.Error.ErrorMsg)
}

func TestCreateGenreEnvelope(t *testing.T) {
	router := newGenreRouter(&fakeGenreService{})

	body := strings.NewReader(`{"name": "Sci-Fi", "slug": "sci-fi"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genre", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data    model.Genre `json:"data"`
		Success bool        `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "sci-fi", envelope.Data.Slug)
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantLimit: 10, wantOffset: 0},
		{name: "second page", query: "page=2&page_size=20", wantLimit: 20, wantOffset: 20},
		{name: "garbage falls back", query: "page=x&page_size=y", wantLimit: 10, wantOffset: 0},
		{name: "size capped", query: "page_size=5000", wantLimit: 100, wantOffset: 0},
		{name: "page floor", query: "page=0", wantLimit: 10, wantOffset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			limit, offset := pageParams(c)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
