package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// AdminController handles the admin console: user management, platform
// settings and dashboard reports
type AdminController struct {
	userService     services.UserService
	settingsService services.SettingsService
	reportService   services.ReportService
	logger          zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	userService services.UserService,
	settingsService services.SettingsService,
	reportService services.ReportService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		userService:     userService,
		settingsService: settingsService,
		reportService:   reportService,
		logger:          logger,
	}
}

// ListUsers returns one role list for the admin console
// @Summary List users
// @Description Returns one role list including suspended accounts.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param list query string true "Which list to return" Enums(students, faculty)
// @Success 200 {object} dto.StructuredResponse{data=dto.UserListResponse} "Users"
// @Failure 400 {object} dto.ErrorResponse "Unknown list"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context(), ctx.Query("list"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.UserListResponse{Users: users}, "Users"))
}

// CreateUser adds a record to one role list
// @Summary Create a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param list query string true "Which list to add to" Enums(students, faculty)
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.StructuredResponse{data=models.User} "Created user"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or unknown list"
// @Router /admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), ctx.Query("list"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(user, "User created"))
}

// ToggleUserStatus flips a user between Active and Suspended
// @Summary Toggle user status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.StructuredResponse{data=models.User} "Updated user"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/status [post]
func (c *AdminController) ToggleUserStatus(ctx *gin.Context) {
	user, err := c.userService.ToggleStatus(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(user, "User status updated"))
}

// DeleteUser removes one user record
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.SuccessResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User deleted"})
}

// GetSettings returns the platform settings
// @Summary Get platform settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=models.Settings} "Settings"
// @Router /admin/settings [get]
func (c *AdminController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(settings, "Settings"))
}

// UpdateSettings applies settings changes
// @Summary Update platform settings
// @Description Applies the provided fields on top of the stored settings. Absent fields are left unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Settings changes"
// @Success 200 {object} dto.StructuredResponse{data=models.Settings} "Updated settings"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /admin/settings [put]
func (c *AdminController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	settings, err := c.settingsService.UpdateSettings(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(settings, "Settings updated"))
}

// GetReports returns the admin dashboard aggregates
// @Summary Get platform reports
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=dto.ReportsResponse} "Reports"
// @Router /admin/reports [get]
func (c *AdminController) GetReports(ctx *gin.Context) {
	reports, err := c.reportService.GetReports(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(reports, "Reports"))
}
