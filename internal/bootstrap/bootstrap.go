package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/university/internal/app/auth"
	appControllers "github.com/yigit/university/internal/app/controllers"
	appMigrations "github.com/yigit/university/internal/app/migrations"
	appRepos "github.com/yigit/university/internal/app/repositories"
	appRoutes "github.com/yigit/university/internal/app/routes"
	appServices "github.com/yigit/university/internal/app/services"
	"github.com/yigit/university/internal/config"
	"github.com/yigit/university/internal/db"
	appMiddleware "github.com/yigit/university/internal/middleware"
	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	CoursePolicy      appAuth.CoursePolicy
	CourseController  *appControllers.CourseController
	StudentController *appControllers.StudentController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations when
// auto_migrate is on and seeds demo data when seed.demo is on.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Migrations.AutoMigrate {
		if err := RunMigrations(cfg, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	if cfg.Seed.Demo {
		if err := seed.CreateDemoData(ctx, appRepos.NewRepositories(database.Pool), lgr); err != nil {
			// Startup continues without demo data
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// RunMigrations applies every pending embedded migration
func RunMigrations(cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(cfg.GetMigrationURL(), lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialise migrator")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close migrator")
		}
	}()

	if err := migrator.Up(); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	version, _, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	lgr.Info().Uint("version", version).Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes services and controllers on top of repos.
func BuildDependencies(repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.CoursePolicy = appAuth.NewCoursePolicy()
	deps.Services = appServices.NewServices(repos, deps.CoursePolicy)

	deps.CourseController = appControllers.NewCourseController(deps.Services.Courses, deps.Services.Enrollments)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Students, deps.Services.Reports)

	return deps
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
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.CourseController, deps.StudentController)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
