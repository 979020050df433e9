package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gameregistry/backend/internal/models"
)

type RegionInput struct {
	Name string `json:"name" binding:"required"`
}

// GetAllRegions godoc
// @Summary      List all regions
// @Description  Retrieves every region known to the registry.
// @Tags         regions
// @Produce      json
// @Success      200  {object}  ListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /region/all [get]
func (h *Handler) GetAllRegions(c *gin.Context) {
	regions, err := h.Regions.List()
	if err != nil {
		log.Printf("Could not execute query in GetAllRegions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve regions"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{Results: regions, Size: len(regions)})
}

// AddRegion godoc
// @Summary      Add a region
// @Description  Registers a new region name. Names are unique; a duplicate fails the insert.
// @Tags         regions
// @Accept       json
// @Produce      json
// @Param        input body RegionInput true "Region name"
// @Success      200  {string}  string "Region `us-east` added to DB!"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /region/add [post]
func (h *Handler) AddRegion(c *gin.Context) {
	var input RegionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region := models.Region{Name: input.Name}
	if err := h.Regions.Insert(&region); err != nil {
		log.Printf("Failed to insert new region into regions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert region"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf("Region `%s` added to DB!", region.Name))
}
