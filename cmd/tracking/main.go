package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/openfleet/fleettrack/internal/pkg/config"
	"github.com/openfleet/fleettrack/internal/pkg/database"
	"github.com/openfleet/fleettrack/internal/pkg/health"
	"github.com/openfleet/fleettrack/internal/pkg/logger"
	natspkg "github.com/openfleet/fleettrack/internal/pkg/nats"
	"github.com/openfleet/fleettrack/internal/pkg/nsq"
	"github.com/openfleet/fleettrack/internal/pkg/server"
	"github.com/openfleet/fleettrack/services/tracking/gateway"
	"github.com/openfleet/fleettrack/services/tracking/handler"
	"github.com/openfleet/fleettrack/services/tracking/repository"
	"github.com/openfleet/fleettrack/services/tracking/usecase"
	"github.com/openfleet/fleettrack/services/tracking/worker"
)

const serviceName = "tracking-service"

func main() {
	configs := config.InitConfig("")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    logLevel(configs.App.Debug),
		FilePath: "",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize Postgres client
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Wire the service
	trackingRepo := repository.NewTrackingRepository(redisClient)
	historyRepo := repository.NewHistoryRepository(postgresClient)
	trackingGW := gateway.NewTrackingGW(natsClient, producer)
	trackingUC := usecase.NewTrackingUC(configs, trackingRepo, historyRepo, trackingGW)

	// Start the history archiver
	archiver := worker.NewArchiver(trackingUC, configs.NSQ, zapLogger)
	if err := archiver.Start(); err != nil {
		logger.Fatal("Failed to start archiver", logger.Err(err))
	}
	defer archiver.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName, map[string]health.Pinger{
		"redis":    redisClient,
		"postgres": postgresClient,
		"nats":     natsClient,
	})

	trackingHandler := handler.NewHandler(trackingUC, natsClient, configs)
	trackingHandler.RegisterRoutes(e)

	// Register shutdown hooks
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		archiver.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)

	logger.Info("Starting tracking service",
		logger.String("service", serviceName),
		logger.Int("port", configs.Server.Port))

	if err := gracefulServer.Start(); err != nil {
		logger.Fatal("Server stopped unexpectedly", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}

func logLevel(debug bool) string {
	if debug {
		return "debug"
	}
	return "info"
}
