package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/config"
	"github.com/tutorcito/tutorcito/internal/pkg/database"
	"github.com/tutorcito/tutorcito/internal/pkg/health"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/mercadopago"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/moderation"
	natspkg "github.com/tutorcito/tutorcito/internal/pkg/nats"
	"github.com/tutorcito/tutorcito/internal/pkg/server"
	bookingHandler "github.com/tutorcito/tutorcito/services/bookings/handler"
	bookingRepo "github.com/tutorcito/tutorcito/services/bookings/repository"
	bookingUsecase "github.com/tutorcito/tutorcito/services/bookings/usecase"
	paymentGateway "github.com/tutorcito/tutorcito/services/payments/gateway"
	paymentHandler "github.com/tutorcito/tutorcito/services/payments/handler"
	paymentRepo "github.com/tutorcito/tutorcito/services/payments/repository"
	paymentUsecase "github.com/tutorcito/tutorcito/services/payments/usecase"
	profileGateway "github.com/tutorcito/tutorcito/services/profiles/gateway"
	profileHandler "github.com/tutorcito/tutorcito/services/profiles/handler"
	profileRepo "github.com/tutorcito/tutorcito/services/profiles/repository"
	profileUsecase "github.com/tutorcito/tutorcito/services/profiles/usecase"
	tutorHandler "github.com/tutorcito/tutorcito/services/tutors/handler"
	tutorRepo "github.com/tutorcito/tutorcito/services/tutors/repository"
	tutorUsecase "github.com/tutorcito/tutorcito/services/tutors/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "tutorcito-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	shutdown.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	// External provider clients
	mpClient := mercadopago.NewClient(configs.MercadoPago)
	moderationClient := moderation.NewClient(configs.Moderation)

	// Repositories
	transactionRepo := paymentRepo.NewPaymentRepository(postgresClient.GetDB())
	profilesRepo := profileRepo.NewProfileRepository(postgresClient.GetDB())
	tutorsRepo := tutorRepo.NewPostgresTutorRepo(postgresClient)
	bookingsRepo := bookingRepo.NewPostgresBookingRepo(postgresClient)

	// Gateways
	paymentEvents := paymentGateway.NewEventsGW(natsClient)
	profileEvents := profileGateway.NewEventsGW(natsClient)

	// Use cases. Account deletion cancels pending transactions through the
	// payment repository so construction stays acyclic.
	bookingUC := bookingUsecase.NewBookingUC(bookingsRepo)
	tutorUC := tutorUsecase.NewTutorUC(configs, tutorsRepo, redisClient)
	profileUC := profileUsecase.NewProfileUC(configs, profilesRepo, moderationClient, transactionRepo, bookingUC, profileEvents)
	paymentUC := paymentUsecase.NewPaymentUC(configs, transactionRepo, mpClient, paymentEvents, profileUC, bookingUC, redisClient)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.GetClient().Ping(ctx).Err()
		},
		"nats": func(ctx context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return natspkg.ErrNotConnected
			}
			return nil
		},
	})

	// Register service routes
	paymentHandler.NewHandler(paymentUC, configs).RegisterRoutes(e)
	profileHandler.NewHandler(profileUC, configs).RegisterRoutes(e)
	tutorHandler.NewHandler(tutorUC, configs).RegisterRoutes(e)
	bookingHandler.NewHandler(bookingUC, configs).RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}
