package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// UserController handles profile and directory operations
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the signed-in user's record
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=models.User} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(user, "Profile"))
}

// UpdateProfile replaces the editable profile fields
// @Summary Update own profile
// @Description Replaces the editable profile fields. Identity fields (id, role, email) and academic counters cannot be changed here.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.StructuredResponse{data=models.User} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(user, "Profile updated"))
}

// SearchDirectory searches the people directory
// @Summary Search the people directory
// @Description Case-insensitive name search across students and faculty. Suspended accounts never appear in results.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Restrict to one role" Enums(student, faculty)
// @Param q query string false "Name fragment"
// @Success 200 {object} dto.StructuredResponse{data=dto.DirectoryResponse} "Matches"
// @Failure 400 {object} dto.ErrorResponse "Unknown role filter"
// @Router /directory [get]
func (c *UserController) SearchDirectory(ctx *gin.Context) {
	results, err := c.userService.SearchDirectory(ctx.Request.Context(), ctx.Query("role"), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.DirectoryResponse{Results: results}, "Directory results"))
}
