package controller

import (
	"net/http"

	"moviehub/pkg/model"
	"moviehub/pkg/reaction"

	"github.com/gin-gonic/gin"
)

// ListMovies returns a paginated movie list with optional filters
func (ctrl *controller) ListMovies(c *gin.Context) {
	var filter model.MovieFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	limit, offset := pageParams(c)

	movies, total, err := ctrl.movieService.List(filter, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, model.PagedData{Total: total, Results: movies})
}

// GetMovie returns one movie by slug
func (ctrl *controller) GetMovie(c *gin.Context) {
	movie, err := ctrl.movieService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, movie)
}

// CreateMovie creates a movie from a multipart form (admin only)
func (ctrl *controller) CreateMovie(c *gin.Context) {
	var req model.MovieRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := ctrl.movieService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, movie)
}

// UpdateMovie updates a movie by slug (admin only)
func (ctrl *controller) UpdateMovie(c *gin.Context) {
	var req model.MovieRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := ctrl.movieService.Update(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, movie)
}

// DeleteMovie deletes a movie by slug (admin only)
func (ctrl *controller) DeleteMovie(c *gin.Context) {
	err := ctrl.movieService.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Movie deleted successfully."})
}

// LikeMovie toggles the caller's like on a movie
func (ctrl *controller) LikeMovie(c *gin.Context) {
	ctrl.react(c, reaction.Like)
}

// DislikeMovie toggles the caller's dislike on a movie
func (ctrl *controller) DislikeMovie(c *gin.Context) {
	ctrl.react(c, reaction.Dislike)
}

func (ctrl *controller) react(c *gin.Context, kind reaction.Kind) {
	userID, ok := contextUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, true, "Authentication required.")
		return
	}

	counters, err := ctrl.movieService.React(c.Param("slug"), userID, kind)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, counters)
}

// ViewMovie increments the view counter unconditionally
func (ctrl *controller) ViewMovie(c *gin.Context) {
	views, err := ctrl.movieService.View(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"view": views})
}
