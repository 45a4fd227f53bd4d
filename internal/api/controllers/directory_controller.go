package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

func (d *DirectoryController) GetCountries(c *gin.Context) {
	countries := d.directoryService.Countries(c.Request.Context())
	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

func (d *DirectoryController) GetCities(c *gin.Context) {
	country := c.Param("country")
	if country == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country is required")
		return
	}

	cities := d.directoryService.Cities(country)
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}
