package controller

import (
	"errors"
	"net/http"
	"strconv"

	"moviehub/pkg/embed"
	"moviehub/pkg/logger"
	"moviehub/pkg/model"
	authService "moviehub/service-api/internal/service/auth"
	countryService "moviehub/service-api/internal/service/country"
	genreService "moviehub/service-api/internal/service/genre"
	movieService "moviehub/service-api/internal/service/movie"
	movieurlService "moviehub/service-api/internal/service/movieurl"
	userService "moviehub/service-api/internal/service/user"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// respondData writes a success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, model.Envelope{
		Data:    data,
		Error:   nil,
		Success: true,
	})
}

// respondError writes an error envelope. errorMsg is either a string or a
// field map.
func respondError(c *gin.Context, status int, friendly bool, errorMsg interface{}) {
	c.JSON(status, model.Envelope{
		Data: nil,
		Error: &model.ErrorInfo{
			ErrorID:    status,
			IsFriendly: friendly,
			ErrorMsg:   errorMsg,
		},
		Success: false,
	})
}

// respondServiceError maps a service-layer error onto the envelope.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		respondError(c, http.StatusBadRequest, true, validationErr.Fields)
		return
	}

	var fieldErr *embed.FieldError
	if errors.As(err, &fieldErr) {
		respondError(c, http.StatusBadRequest, true, map[string]string{fieldErr.Field: fieldErr.Message})
		return
	}

	switch {
	case errors.Is(err, movieService.ErrMovieNotFound),
		errors.Is(err, movieurlService.ErrMovieNotFound):
		respondError(c, http.StatusNotFound, true, "Movie not found.")
	case errors.Is(err, genreService.ErrGenreNotFound):
		respondError(c, http.StatusNotFound, true, "Genre not found.")
	case errors.Is(err, countryService.ErrCountryNotFound):
		respondError(c, http.StatusNotFound, true, "Country not found.")
	case errors.Is(err, movieurlService.ErrLinkNotFound):
		respondError(c, http.StatusNotFound, true, "Movie url not found.")
	case errors.Is(err, userService.ErrInvalidLink):
		respondError(c, http.StatusBadRequest, true, "Invalid or expired verification link.")
	case errors.Is(err, authService.ErrInvalidRefreshToken):
		respondError(c, http.StatusBadRequest, true, "Invalid refresh token.")
	default:
		logger.Error(err, "request failed")
		respondError(c, http.StatusInternalServerError, false, "Internal server error.")
	}
}

// respondBindError surfaces a malformed payload as a 400 envelope.
func respondBindError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, true, err.Error())
}

// pageParams reads page/page_size query params and converts them to
// limit/offset.
func pageParams(c *gin.Context) (limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return size, (page - 1) * size
}
