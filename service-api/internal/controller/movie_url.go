package controller

import (
	"net/http"

	"moviehub/pkg/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListMovieURLs returns all embed links of one movie
func (ctrl *controller) ListMovieURLs(c *gin.Context) {
	urls, err := ctrl.movieURLService.ListByMovieSlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, urls)
}

// CreateMovieURL adds an embed link to a movie (admin only)
func (ctrl *controller) CreateMovieURL(c *gin.Context) {
	var req model.MovieURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	url, err := ctrl.movieURLService.Create(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, url)
}

// UpdateMovieURL replaces an embed link (admin only)
func (ctrl *controller) UpdateMovieURL(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	var req model.MovieURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	url, err := ctrl.movieURLService.Update(c.Param("slug"), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, url)
}

// DeleteMovieURL removes an embed link (admin only)
func (ctrl *controller) DeleteMovieURL(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	err := ctrl.movieURLService.Delete(c.Param("slug"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Movie url deleted successfully."})
}

func linkID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, true, "Invalid movie url id.")
		return uuid.Nil, false
	}
	return id, true
}
