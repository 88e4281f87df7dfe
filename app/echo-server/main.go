package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/app/echo-server/router"
	"github.com/KothuruDhansukh/ECO-MART/business/catalog"
	"github.com/KothuruDhansukh/ECO-MART/business/preference"
	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/business/sustainability"
	"github.com/KothuruDhansukh/ECO-MART/internal/middleware"
	psqlRepo "github.com/KothuruDhansukh/ECO-MART/internal/repository/postgres"
	redisRepo "github.com/KothuruDhansukh/ECO-MART/internal/repository/redis"
	"github.com/KothuruDhansukh/ECO-MART/internal/rest"
	"github.com/KothuruDhansukh/ECO-MART/pkg/config"
	"github.com/KothuruDhansukh/ECO-MART/pkg/database"
	redisdb "github.com/KothuruDhansukh/ECO-MART/pkg/database/redis"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
	"github.com/KothuruDhansukh/ECO-MART/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting ECO-MART", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get sql handle", "error", err)
	}

	healthChecks := map[string]rest.HealthCheck{
		"postgres": sqlDB.PingContext,
	}

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(db)
	profileRepo := psqlRepo.NewUserProfileRepository(db)
	eventRepo := psqlRepo.NewPreferenceEventRepository(db)
	scoringRepo := psqlRepo.NewScoringConfigRepository(db)

	var profileCache preference.ProfileCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer func() {
			if err := redisdb.CloseRedisClient(client); err != nil {
				logger.Error("Failed to close redis", "error", err)
			}
		}()

		profileCache = redisRepo.NewProfileCache(client, cfg.Redis.ProfileTTL)
		healthChecks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		logger.Info("Redis profile cache enabled", "ttl", cfg.Redis.ProfileTTL.String())
	}

	// Init service
	tablesLoader := scoring.NewLoader(scoringRepo, scoring.DefaultTables())
	if err := tablesLoader.Load(context.Background()).Validate(); err != nil {
		logger.Fatal("Scoring tables are invalid", "error", err)
	}

	picker := sustainability.NewRandomPicker(cfg.Scoring.MessageSeed)

	catalogService := catalog.NewService(productsRepo)
	sustainabilityService := sustainability.NewService(productsRepo, tablesLoader, picker)
	preferenceService := preference.NewService(
		profileRepo,
		profileCache,
		eventRepo,
		productsRepo,
		tablesLoader,
		cfg.Scoring.MinTolerance,
		cfg.Scoring.MaxTolerance,
	)
	scoringAdminService := scoring.NewAdminService(scoringRepo, tablesLoader)

	// Init handler
	productHandler := rest.NewProductHandler(catalogService)
	sustainabilityHandler := rest.NewSustainabilityHandler(sustainabilityService)
	preferenceHandler := rest.NewPreferenceHandler(preferenceService)
	scoringAdminHandler := rest.NewScoringAdminHandler(scoringAdminService)
	healthHandler := rest.NewHealthHandler(healthChecks)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderTraceID},
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", healthHandler.Check)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetSustainabilityRoutes(api, sustainabilityHandler, authRequired)
	router.SetPreferenceRoutes(api, preferenceHandler, authRequired)
	router.SetScoringAdminRoutes(api, scoringAdminHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	logger.Info("Server stopped")
}
