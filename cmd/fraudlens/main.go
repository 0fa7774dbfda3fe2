package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adityaw/fraudlens/internal/pkg/config"
	"github.com/adityaw/fraudlens/internal/pkg/database"
	"github.com/adityaw/fraudlens/internal/pkg/health"
	"github.com/adityaw/fraudlens/internal/pkg/logger"
	"github.com/adityaw/fraudlens/internal/pkg/middleware"
	"github.com/adityaw/fraudlens/internal/pkg/mlmodel"
	"github.com/adityaw/fraudlens/internal/pkg/session"
	accountsHandler "github.com/adityaw/fraudlens/services/accounts/handler"
	accountsHTTP "github.com/adityaw/fraudlens/services/accounts/handler/http"
	accountsRepository "github.com/adityaw/fraudlens/services/accounts/repository"
	accountsUsecase "github.com/adityaw/fraudlens/services/accounts/usecase"
	analyticsHandler "github.com/adityaw/fraudlens/services/analytics/handler"
	analyticsHTTP "github.com/adityaw/fraudlens/services/analytics/handler/http"
	analyticsUsecase "github.com/adityaw/fraudlens/services/analytics/usecase"
	transactionsHandler "github.com/adityaw/fraudlens/services/transactions/handler"
	transactionsHTTP "github.com/adityaw/fraudlens/services/transactions/handler/http"
	transactionsRepository "github.com/adityaw/fraudlens/services/transactions/repository"
	transactionsUsecase "github.com/adityaw/fraudlens/services/transactions/usecase"
	"github.com/adityaw/fraudlens/web"
)

func main() {
	appName := "fraudlens"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/fraudlens.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	if err := postgresClient.RunMigrations(context.Background()); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Load the classifier artifact; the process cannot serve without it
	forest, err := mlmodel.Load(configs.Model.Path)
	if err != nil {
		zapLogger.Fatal("Failed to load model artifact",
			zap.String("path", configs.Model.Path),
			zap.Error(err),
		)
	}
	zapLogger.Info("Loaded model artifact",
		zap.String("path", configs.Model.Path),
		zap.Int("trees", len(forest.Trees)),
	)

	// Initialize repositories
	userRepo := accountsRepository.NewUserRepo(postgresClient.GetDB())
	txnRepo := transactionsRepository.NewTransactionRepo(postgresClient.GetDB())

	// Initialize usecases
	accountUC := accountsUsecase.NewAccountUC(userRepo, configs)
	txnUC := transactionsUsecase.NewTransactionUC(txnRepo, forest, configs)
	analyticsUC := analyticsUsecase.NewAnalyticsUC(txnRepo, configs)

	// Sessions are signed cookies backed by Redis records
	sessions := session.NewManager(configs.Session, redisClient)

	// Initialize handlers
	authHandler := accountsHTTP.NewAuthHandler(accountUC, sessions)
	txnHandler := transactionsHTTP.NewTransactionHandler(txnUC, sessions)
	chartHandler := analyticsHTTP.NewAnalyticsHandler(analyticsUC)

	accounts := accountsHandler.NewHandler(authHandler)
	transactions := transactionsHandler.NewHandler(txnHandler, sessions)
	analytics := analyticsHandler.NewHandler(chartHandler, sessions)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		zapLogger.Fatal("Failed to initialize template renderer", zap.Error(err))
	}
	e.Renderer = renderer

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	// Register service routes
	accounts.RegisterRoutes(e)
	transactions.RegisterRoutes(e)
	analytics.RegisterRoutes(e)

	// Start server
	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.String("addr", addr),
	)

	if err := e.Start(addr); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
