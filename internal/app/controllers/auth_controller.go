// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles sign-in and open self-registration
// @Summary Sign in to the portal
// @Description Resolves the account for an email and role choice. Unknown emails containing "@" self-register while registration is open. There is no password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Sign-in information"
// @Success 200 {object} dto.StructuredResponse{data=dto.LoginResponse} "Signed in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "No account matches this email"
// @Failure 403 {object} dto.ErrorResponse "Account suspended or registration closed"
// @Failure 503 {object} dto.ErrorResponse "Platform in maintenance mode"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(resp, "Signed in"))
}

// Logout ends the session
// @Summary Sign out of the portal
// @Description Signing out always succeeds. Sessions are stateless tokens; the client discards its copy.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse "Signed out"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	c.logger.Info().Str("userID", userID).Msg("User signed out")

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Signed out"})
}
