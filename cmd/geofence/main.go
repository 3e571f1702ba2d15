package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pratama/zonewatch/internal/pkg/config"
	"github.com/pratama/zonewatch/internal/pkg/database"
	"github.com/pratama/zonewatch/internal/pkg/health"
	"github.com/pratama/zonewatch/internal/pkg/logger"
	natspkg "github.com/pratama/zonewatch/internal/pkg/nats"
	"github.com/pratama/zonewatch/internal/pkg/server"
	"github.com/pratama/zonewatch/services/geofence/gateway"
	"github.com/pratama/zonewatch/services/geofence/handler"
	"github.com/pratama/zonewatch/services/geofence/repository"
	"github.com/pratama/zonewatch/services/geofence/usecase"
)

func main() {
	appName := "geofence-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/geofence.env")
	configs := config.InitConfig(configPath)

	// Initialize Zap logger
	zapLogger, err := logger.NewZapLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	zoneRepo := repository.NewZoneRepository(postgresClient.GetDB(), configs.Geofence.ZoneCacheTTL)
	sampleRepo := repository.NewSampleRepository(postgresClient.GetDB())
	hitRepo := repository.NewHitRepository(postgresClient.GetDB())
	suppressionRepo := repository.NewSuppressionRepository(redisClient)
	presenceRepo := repository.NewPresenceRepository(redisClient)

	// Initialize gateway
	notifierGW := gateway.NewNotifierGW(natsClient, configs.NATS.RequestTimeout)

	// Initialize usecases
	geofenceUC := usecase.NewGeofenceUC(zoneRepo, sampleRepo, hitRepo, suppressionRepo, presenceRepo, notifierGW, configs.Geofence)
	catchupEvaluator := usecase.NewCatchupEvaluator(geofenceUC, configs.Geofence)

	// Start the catch-up scheduler
	scheduler := usecase.NewScheduler(catchupEvaluator, configs.Geofence.Interval)
	scheduler.Start()

	// Initialize handlers
	httpHandler := handler.NewHTTPHandler(geofenceUC, scheduler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(logger.RequestLogger())

	// Register health endpoint
	e.GET("/health", health.NewPingHandler(appName))

	// Register service routes
	apiKey := config.GetEnv("API_KEY", "")
	httpHandler.RegisterRoutes(e, apiKey)

	// Register component shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		scheduler.Stop()
		return nil
	})

	// Start server and block until shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
