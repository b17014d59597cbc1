package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// BuildingController handles campus map operations
type BuildingController struct {
	buildingService services.BuildingService
	logger          zerolog.Logger
}

// NewBuildingController creates a new BuildingController
func NewBuildingController(buildingService services.BuildingService, logger zerolog.Logger) *BuildingController {
	return &BuildingController{
		buildingService: buildingService,
		logger:          logger,
	}
}

// ListBuildings returns the campus map
// @Summary List campus buildings
// @Tags campus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=[]models.CampusBuilding} "Buildings"
// @Router /buildings [get]
func (c *BuildingController) ListBuildings(ctx *gin.Context) {
	buildings, err := c.buildingService.ListBuildings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(buildings, "Buildings"))
}

// GetBuilding returns one building
// @Summary Get a building
// @Tags campus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Building ID"
// @Success 200 {object} dto.StructuredResponse{data=models.CampusBuilding} "Building"
// @Failure 404 {object} dto.ErrorResponse "Building not found"
// @Router /buildings/{id} [get]
func (c *BuildingController) GetBuilding(ctx *gin.Context) {
	building, err := c.buildingService.GetBuilding(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(building, "Building"))
}

// CreateBuilding adds a building to the map
// @Summary Create a building
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBuildingRequest true "Building"
// @Success 201 {object} dto.StructuredResponse{data=models.CampusBuilding} "Created building"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /admin/buildings [post]
func (c *BuildingController) CreateBuilding(ctx *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	building, err := c.buildingService.CreateBuilding(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(building, "Building created"))
}

// UpdateBuilding replaces a building record
// @Summary Update a building
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Building ID"
// @Param request body dto.UpdateBuildingRequest true "Building"
// @Success 200 {object} dto.StructuredResponse{data=models.CampusBuilding} "Updated building"
// @Failure 404 {object} dto.ErrorResponse "Building not found"
// @Router /admin/buildings/{id} [put]
func (c *BuildingController) UpdateBuilding(ctx *gin.Context) {
	var req dto.UpdateBuildingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	building, err := c.buildingService.UpdateBuilding(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(building, "Building updated"))
}

// DeleteBuilding removes a building from the map
// @Summary Delete a building
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Building ID"
// @Success 200 {object} dto.SuccessResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Building not found"
// @Router /admin/buildings/{id} [delete]
func (c *BuildingController) DeleteBuilding(ctx *gin.Context) {
	if err := c.buildingService.DeleteBuilding(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Building deleted"})
}
