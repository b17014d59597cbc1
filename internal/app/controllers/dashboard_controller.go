package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// DashboardController handles the member home feed
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetFeed returns the home dashboard
// @Summary Get the home dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=services.DashboardFeed} "Feed"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /dashboard [get]
func (c *DashboardController) GetFeed(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	feed, err := c.dashboardService.GetFeed(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(feed, "Dashboard"))
}
