package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/unistone/campus/internal/middleware"
)

// Handlers are never invoked here; only the registered route table is
// checked, so zero-value controllers are enough.
func TestSetupRouterRegistersFullSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRouter(router, Controllers{}, middleware.NewAuthMiddleware(nil), func(*gin.Context) {})

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /api/v1/health",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",

		"GET /api/v1/dashboard",
		"GET /api/v1/profile",
		"PUT /api/v1/profile",
		"GET /api/v1/directory",

		"GET /api/v1/buildings",
		"GET /api/v1/buildings/:id",
		"GET /api/v1/courses",
		"GET /api/v1/courses/:id",
		"GET /api/v1/events",
		"GET /api/v1/events/:id",
		"GET /api/v1/news",
		"GET /api/v1/news/:id",
		"POST /api/v1/chat",

		"POST /api/v1/events/:id/register",
		"GET /api/v1/jobs",
		"GET /api/v1/jobs/:id",
		"POST /api/v1/jobs/:id/apply",
		"GET /api/v1/attendance/watch",
		"POST /api/v1/attendance/present",
		"POST /api/v1/attendance/sessions",
		"GET /api/v1/attendance/sessions/current",
		"DELETE /api/v1/attendance/sessions/current",

		"GET /api/v1/admin/users",
		"POST /api/v1/admin/users",
		"POST /api/v1/admin/users/:id/status",
		"DELETE /api/v1/admin/users/:id",
		"POST /api/v1/admin/buildings",
		"PUT /api/v1/admin/buildings/:id",
		"DELETE /api/v1/admin/buildings/:id",
		"POST /api/v1/admin/courses",
		"PUT /api/v1/admin/courses/:id",
		"DELETE /api/v1/admin/courses/:id",
		"POST /api/v1/admin/events",
		"PUT /api/v1/admin/events/:id",
		"DELETE /api/v1/admin/events/:id",
		"POST /api/v1/admin/jobs",
		"PUT /api/v1/admin/jobs/:id",
		"DELETE /api/v1/admin/jobs/:id",
		"POST /api/v1/admin/news",
		"PUT /api/v1/admin/news/:id",
		"DELETE /api/v1/admin/news/:id",
		"GET /api/v1/admin/settings",
		"PUT /api/v1/admin/settings",
		"GET /api/v1/admin/reports",
	}

	for _, route := range want {
		assert.True(t, routes[route], "missing route %s", route)
	}
}
