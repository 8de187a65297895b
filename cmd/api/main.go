package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tradelog/internal/auth"
	"tradelog/internal/config"
	"tradelog/internal/database"
	"tradelog/internal/logger"
	"tradelog/internal/metrics"
	"tradelog/internal/server"
	"tradelog/internal/services"
	"tradelog/internal/validator"
)

// @title           Tradelog API
// @version         1.0
// @description     Tradelog tracks trades, accounts, expenses, todos and daily plans for a single trader.

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if appConfig.JWTSecret == config.DevJWTSecret {
		log.Warn("JWT_SECRET is not set; using the development secret")
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	registry, collector := metrics.NewWithRuntime()

	router := server.NewRouter(server.Dependencies{
		Users:          services.NewUserService(db),
		Trades:         services.NewTradeService(db),
		Accounts:       accountService,
		Expenses:       services.NewExpenseService(db, accountService),
		Todos:          services.NewTodoService(db),
		Plans:          services.NewPlanService(db),
		Audit:          services.NewAuditService(db),
		Tokens:         auth.NewTokenService(appConfig.JWTSecret, appConfig.JWTExpirationDur),
		Database:       dbManager,
		Registry:       registry,
		Metrics:        collector,
		AllowedOrigins: appConfig.AllowedOrigins,
		RequestTimeout: appConfig.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Tradelog server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
