package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/learnhub/internal/app/auth"
	appControllers "github.com/yigit/learnhub/internal/app/controllers"
	appMigrations "github.com/yigit/learnhub/internal/app/migrations"
	appRepos "github.com/yigit/learnhub/internal/app/repositories"
	appRoutes "github.com/yigit/learnhub/internal/app/routes"
	appServices "github.com/yigit/learnhub/internal/app/services"
	"github.com/yigit/learnhub/internal/config"
	"github.com/yigit/learnhub/internal/db"
	appMiddleware "github.com/yigit/learnhub/internal/middleware"
	pkgAuth "github.com/yigit/learnhub/internal/pkg/auth"
	"github.com/yigit/learnhub/internal/pkg/cache"
	"github.com/yigit/learnhub/internal/pkg/helpers"
	"github.com/yigit/learnhub/internal/pkg/logger"
	"github.com/yigit/learnhub/internal/pkg/validation"
	"github.com/yigit/learnhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Cache          *cache.Cache
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("dir", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database)

	// Seeding failures are logged, startup continues
	admin := seed.AdminAccount{Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword}
	if err := seed.CreateDefaultData(ctx, deps.Repos.UserRepository, admin, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.Cache = cache.New(ctx, cache.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		Prefix:   "learnhub:",
	}, logger.WithField("component", "cache"))

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.CourseRepository)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	repos := deps.Repos
	authService := appServices.NewAuthService(repos.UserRepository, repos.TokenRepository, deps.JWTService, lgr)
	userService := appServices.NewUserService(repos.UserRepository, lgr)
	courseService := appServices.NewCourseService(repos.CourseRepository, deps.Cache, lgr)
	lectureService := appServices.NewLectureService(repos.LectureRepository, deps.Cache, lgr)
	enrollmentService := appServices.NewEnrollmentService(repos.EnrollmentRepository, repos.UserRepository, deps.Cache, lgr)
	quizResultService := appServices.NewQuizResultService(repos.QuizResultRepository, repos.LectureRepository, deps.Cache, lgr)
	finalTestService := appServices.NewFinalTestService(repos.FinalTestRepository, lgr)
	statisticsService := appServices.NewStatisticsService(
		repos.LectureRepository,
		repos.QuizResultRepository,
		repos.EnrollmentRepository,
		deps.Cache,
		helpers.ParseDuration(cfg.Cache.StatisticsTTL, time.Minute),
		cfg.QueryTimeout(),
		lgr,
	)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(authService, lgr),
		Course:     appControllers.NewCourseController(courseService, deps.AuthzService),
		Lecture:    appControllers.NewLectureController(lectureService, quizResultService, deps.AuthzService),
		User:       appControllers.NewUserController(enrollmentService, userService),
		QuizResult: appControllers.NewQuizResultController(quizResultService),
		Statistics: appControllers.NewStatisticsController(statisticsService, deps.AuthzService),
		FinalTest:  appControllers.NewFinalTestController(finalTestService, deps.AuthzService),
	}

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

	validation.Register()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

// StartTokenCleanup periodically deletes expired refresh tokens until ctx is done.
func StartTokenCleanup(ctx context.Context, tokens *appRepos.TokenRepository, interval time.Duration, lgr zerolog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				deleted, err := tokens.DeleteExpired(ctx, now)
				if err != nil {
					lgr.Error().Err(err).Msg("Failed to delete expired refresh tokens")
					continue
				}
				if deleted > 0 {
					lgr.Info().Int64("deleted", deleted).Msg("Expired refresh tokens removed")
				}
			}
		}
	}()
}
