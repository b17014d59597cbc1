// Package bootstrap wires the application together: configuration, logging,
// the persistent store, repositories, services, controllers and the router.
package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/unistone/campus/internal/app/controllers"
	appRepos "github.com/unistone/campus/internal/app/repositories"
	appRoutes "github.com/unistone/campus/internal/app/routes"
	appServices "github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/config"
	appMiddleware "github.com/unistone/campus/internal/middleware"
	"github.com/unistone/campus/internal/pkg/assistant"
	pkgAuth "github.com/unistone/campus/internal/pkg/auth"
	"github.com/unistone/campus/internal/pkg/logger"
	"github.com/unistone/campus/internal/pkg/notify"
	"github.com/unistone/campus/internal/seed"
	"github.com/unistone/campus/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService       // Interface type
	UserService       appServices.UserService       // Interface type
	DashboardService  appServices.DashboardService  // Interface type
	BuildingService   appServices.BuildingService   // Interface type
	CourseService     appServices.CourseService     // Interface type
	EventService      appServices.EventService      // Interface type
	JobService        appServices.JobService        // Interface type
	NewsService       appServices.NewsService       // Interface type
	SettingsService   appServices.SettingsService   // Interface type
	ReportService     appServices.ReportService     // Interface type
	ChatService       appServices.ChatService       // Interface type
	AttendanceService appServices.AttendanceService // Interface type
	Controllers       appRoutes.Controllers
	AuthMiddleware    *appMiddleware.AuthMiddleware // Pointer to middleware struct
	Repos             *appRepos.Repositories        // Include the main repo container
	JWTService        *pkgAuth.JWTService
	Hub               *notify.Hub
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the persistent slice store and seeds the default campus
// data on first run.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	db, err := store.New(cfg.Storage.DataDir, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("dataDir", cfg.Storage.DataDir).Msg("Failed to open store")
		return nil, err
	}
	lgr.Info().Str("dataDir", db.Dir()).Msg("Store opened")

	seed.CreateDefaultData(db, lgr)

	return db, nil
}

// BuildDependencies constructs all repositories, services and controllers.
func BuildDependencies(cfg *config.Config, db *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(db)

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = 12 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Hub = notify.NewHub(lgr)
	go deps.Hub.Run()

	// The assistant is optional: without an API key the chat service falls
	// back to its canned reply instead of calling out.
	var generator assistant.Generator
	if cfg.Assistant.APIKey != "" {
		gem, err := assistant.NewGemini(context.Background(), assistant.Config{
			APIKey:      cfg.Assistant.APIKey,
			Model:       cfg.Assistant.Model,
			Temperature: cfg.Assistant.Temperature,
		})
		if err != nil {
			lgr.Warn().Err(err).Msg("Assistant unavailable, chat will use fallback replies")
		} else {
			generator = gem
			lgr.Info().Str("model", cfg.Assistant.Model).Msg("Assistant configured")
		}
	} else {
		lgr.Warn().Msg("No assistant API key set, chat will use fallback replies")
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.SettingsRepository,
		deps.JWTService,
		lgr,
	)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.UserRepository,
		deps.Repos.EventRepository,
		deps.Repos.NewsRepository,
		lgr,
	)
	deps.BuildingService = appServices.NewBuildingService(deps.Repos.BuildingRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, deps.Repos.UserRepository, lgr)
	deps.NewsService = appServices.NewNewsService(deps.Repos.NewsRepository, lgr)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.UserRepository, lgr)
	deps.ChatService = appServices.NewChatService(generator, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.UserRepository, deps.Hub, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(deps.AuthService, lgr),
		User:      appControllers.NewUserController(deps.UserService, lgr),
		Dashboard: appControllers.NewDashboardController(deps.DashboardService, lgr),
		Building:  appControllers.NewBuildingController(deps.BuildingService, lgr),
		Course:    appControllers.NewCourseController(deps.CourseService, lgr),
		Event:     appControllers.NewEventController(deps.EventService, lgr),
		Job:       appControllers.NewJobController(deps.JobService, lgr),
		News:      appControllers.NewNewsController(deps.NewsService, lgr),
		Admin: appControllers.NewAdminController(
			deps.UserService,
			deps.SettingsService,
			deps.ReportService,
			lgr,
		),
		Chat:       appControllers.NewChatController(deps.ChatService, lgr),
		Attendance: appControllers.NewAttendanceController(deps.AttendanceService, deps.Hub, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.Controllers,
		deps.AuthMiddleware, // Pass the middleware struct itself
		appMiddleware.Maintenance(deps.Repos.SettingsRepository),
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
