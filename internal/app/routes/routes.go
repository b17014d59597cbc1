package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistone/campus/internal/app/controllers"
	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/middleware"
)

// Controllers bundles everything SetupRouter needs to wire
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Dashboard  *controllers.DashboardController
	Building   *controllers.BuildingController
	Course     *controllers.CourseController
	Event      *controllers.EventController
	Job        *controllers.JobController
	News       *controllers.NewsController
	Admin      *controllers.AdminController
	Chat       *controllers.ChatController
	Attendance *controllers.AttendanceController
}

// SetupRouter configures all application routes. Members (students and
// faculty) and the administrator see disjoint surfaces: admin sessions are
// valid only under /admin, member sessions everywhere else.
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	maintenance gin.HandlerFunc,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Liveness probe, no auth
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Sign-out is a client-side token discard; the endpoint exists so every
	// role has a uniform logout call that always succeeds.
	authenticated.POST("/auth/logout", c.Auth.Logout)

	// --- Member routes (students and faculty) ---
	members := authenticated.Group("")
	members.Use(authMiddleware.RoleRequired(models.RoleStudent, models.RoleFaculty))
	members.Use(maintenance)
	{
		members.GET("/dashboard", c.Dashboard.GetFeed)

		members.GET("/profile", c.User.GetProfile)
		members.PUT("/profile", c.User.UpdateProfile)
		members.GET("/directory", c.User.SearchDirectory)

		members.GET("/buildings", c.Building.ListBuildings)
		members.GET("/buildings/:id", c.Building.GetBuilding)

		members.GET("/courses", c.Course.ListCourses)
		members.GET("/courses/:id", c.Course.GetCourse)

		members.GET("/events", c.Event.ListEvents)
		members.GET("/events/:id", c.Event.GetEvent)

		members.GET("/news", c.News.ListNews)
		members.GET("/news/:id", c.News.GetNews)

		members.POST("/chat", c.Chat.Ask)

		// Student-only actions
		students := members.Group("")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			students.POST("/events/:id/register", c.Event.RegisterForEvent)
			students.GET("/jobs", c.Job.ListJobs)
			students.GET("/jobs/:id", c.Job.GetJob)
			students.POST("/jobs/:id/apply", c.Job.Apply)
			students.GET("/attendance/watch", c.Attendance.Watch)
			students.POST("/attendance/present", c.Attendance.MarkPresent)
		}

		// Faculty-only actions
		faculty := members.Group("/attendance")
		faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			faculty.POST("/sessions", c.Attendance.StartSession)
			faculty.DELETE("/sessions/current", c.Attendance.CloseSession)
		}

		members.GET("/attendance/sessions/current", c.Attendance.CurrentSession)
	}

	// --- Admin console ---
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", c.Admin.ListUsers)
		admin.POST("/users", c.Admin.CreateUser)
		admin.POST("/users/:id/status", c.Admin.ToggleUserStatus)
		admin.DELETE("/users/:id", c.Admin.DeleteUser)

		admin.POST("/buildings", c.Building.CreateBuilding)
		admin.PUT("/buildings/:id", c.Building.UpdateBuilding)
		admin.DELETE("/buildings/:id", c.Building.DeleteBuilding)

		admin.POST("/courses", c.Course.CreateCourse)
		admin.PUT("/courses/:id", c.Course.UpdateCourse)
		admin.DELETE("/courses/:id", c.Course.DeleteCourse)

		admin.POST("/events", c.Event.CreateEvent)
		admin.PUT("/events/:id", c.Event.UpdateEvent)
		admin.DELETE("/events/:id", c.Event.DeleteEvent)

		admin.POST("/jobs", c.Job.CreateJob)
		admin.PUT("/jobs/:id", c.Job.UpdateJob)
		admin.DELETE("/jobs/:id", c.Job.DeleteJob)

		admin.POST("/news", c.News.CreateNews)
		admin.PUT("/news/:id", c.News.UpdateNews)
		admin.DELETE("/news/:id", c.News.DeleteNews)

		admin.GET("/settings", c.Admin.GetSettings)
		admin.PUT("/settings", c.Admin.UpdateSettings)
		admin.GET("/reports", c.Admin.GetReports)
	}
}
