package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// Maintenance rejects member traffic while the platform is in maintenance
// mode. Admin sessions pass through so the flag can be turned off again.
// The flag is read per request; flipping it takes effect immediately.
func Maintenance(settingsRepo *repositories.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := settingsRepo.Get()
		if err != nil {
			c.Next()
			return
		}

		if settings.MaintenanceMode && models.UserRole(c.GetString(ContextRole)) != models.RoleAdmin {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeMaintenanceMode, "The platform is down for maintenance")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
