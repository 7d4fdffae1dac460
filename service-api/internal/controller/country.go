package controller

import (
	"net/http"

	"moviehub/pkg/model"

	"github.com/gin-gonic/gin"
)

// ListCountries returns a paginated country list
func (ctrl *controller) ListCountries(c *gin.Context) {
	limit, offset := pageParams(c)

	countries, total, err := ctrl.countryService.List(c.Query("search"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, model.PagedData{Total: total, Results: countries})
}

// GetCountry returns one country by slug
func (ctrl *controller) GetCountry(c *gin.Context) {
	country, err := ctrl.countryService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, country)
}

// CreateCountry creates a country (admin only)
func (ctrl *controller) CreateCountry(c *gin.Context) {
	var req model.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	country, err := ctrl.countryService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, country)
}

// UpdateCountry updates a country by slug (admin only)
func (ctrl *controller) UpdateCountry(c *gin.Context) {
	var req model.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	country, err := ctrl.countryService.Update(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, country)
}

// DeleteCountry deletes a country by slug (admin only)
func (ctrl *controller) DeleteCountry(c *gin.Context) {
	err := ctrl.countryService.Delete(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Country deleted successfully."})
}
