package controller

import (
	authService "moviehub/service-api/internal/service/auth"
	countryService "moviehub/service-api/internal/service/country"
	genreService "moviehub/service-api/internal/service/genre"
	movieService "moviehub/service-api/internal/service/movie"
	movieurlService "moviehub/service-api/internal/service/movieurl"
	userService "moviehub/service-api/internal/service/user"

	"github.com/gin-gonic/gin"
)

// ControllerProvider defines the controller interface
type ControllerProvider interface {
	// auth
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Verify(c *gin.Context)
	ResendVerification(c *gin.Context)
	ChangePassword(c *gin.Context)

	// genres
	ListGenres(c *gin.Context)
	GetGenre(c *gin.Context)
	CreateGenre(c *gin.Context)
	UpdateGenre(c *gin.Context)
	DeleteGenre(c *gin.Context)

	// countries
	ListCountries(c *gin.Context)
	GetCountry(c *gin.Context)
	CreateCountry(c *gin.Context)
	UpdateCountry(c *gin.Context)
	DeleteCountry(c *gin.Context)

	// movies
	ListMovies(c *gin.Context)
	GetMovie(c *gin.Context)
	CreateMovie(c *gin.Context)
	UpdateMovie(c *gin.Context)
	DeleteMovie(c *gin.Context)
	LikeMovie(c *gin.Context)
	DislikeMovie(c *gin.Context)
	ViewMovie(c *gin.Context)

	// movie urls
	ListMovieURLs(c *gin.Context)
	CreateMovieURL(c *gin.Context)
	UpdateMovieURL(c *gin.Context)
	DeleteMovieURL(c *gin.Context)

	HealthCheck(c *gin.Context)
}

// controller implements the controller interface
type controller struct {
	userService     userService.Service
	authService     authService.Service
	genreService    genreService.Service
	countryService  countryService.Service
	movieService    movieService.Service
	movieURLService movieurlService.Service
}

// NewController creates a new controller instance
func NewController(
	userService userService.Service,
	authService authService.Service,
	genreService genreService.Service,
	countryService countryService.Service,
	movieService movieService.Service,
	movieURLService movieurlService.Service,
) ControllerProvider {
	return &controller{
		userService:     userService,
		authService:     authService,
		genreService:    genreService,
		countryService:  countryService,
		movieService:    movieService,
		movieURLService: movieURLService,
	}
}
