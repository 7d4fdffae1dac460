package controller

import (
	"net/http"

	"moviehub/pkg/model"

	"github.com/gin-gonic/gin"
)

// ListGenres returns a paginated genre list
func (ctrl *controller) ListGenres(c *gin.Context) {
	limit, offset := pageParams(c)

	genres, total, err := ctrl.genreService.List(c.Query("search"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, model.PagedData{Total: total, Results: genres})
}

// GetGenre returns one genre by slug
func (ctrl *controller) GetGenre(c *gin.Context) {
	genre, err := ctrl.genreService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, genre)
}

// CreateGenre creates a genre (admin only)
func (ctrl *controller) CreateGenre(c *gin.Context) {
	var req model.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := ctrl.genreService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, genre)
}

// UpdateGenre updates a genre by slug (admin only)
func (ctrl *controller) UpdateGenre(c *gin.Context) {
	var req model.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := ctrl.genreService.Update(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, genre)
}

// DeleteGenre deletes a genre by slug (admin only)
func (ctrl *controller) DeleteGenre(c *gin.Context) {
	err := ctrl.genreService.Delete(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Genre deleted successfully."})
}
