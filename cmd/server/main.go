package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gobank/internal/adapter/http"
	"github.com/iho/gobank/internal/adapter/http/handler"
	fileRepo "github.com/iho/gobank/internal/adapter/repository/file"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/auth"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	adminMap, err := cfg.AdminDirectory()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to parse admin directory")
	}
	admins := domain.AdminDirectory(adminMap)

	// Load the ledger
	ctx := context.Background()
	store := fileRepo.NewStore(cfg.DataFile, appLogger)
	if err := store.Load(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load ledger")
	}

	// Initialize use cases
	locks := usecase.NewAccountLocks()
	idGen := fileRepo.NewULIDGenerator()
	numGen := fileRepo.NewNumberGenerator()

	authUC := usecase.NewAuthUseCase(store, admins, locks)
	accountUC := usecase.NewAccountUseCase(store, admins, numGen, idGen, locks)
	atmUC := usecase.NewATMUseCase(store, idGen, locks)

	// Initialize handlers
	sessions := auth.NewSessionManager(cfg.JWTSecret, cfg.JWTExpiration)
	m := metrics.New(prometheus.DefaultRegisterer)

	authHandler := handler.NewAuthHandler(authUC, sessions, m)
	accountHandler := handler.NewAccountHandler(accountUC, m)
	atmHandler := handler.NewATMHandler(atmUC, m)
	healthHandler := handler.NewHealthHandler(func() bool { return true })

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:    authHandler,
		AccountHandler: accountHandler,
		ATMHandler:     atmHandler,
		HealthHandler:  healthHandler,
		Sessions:       sessions,
		Logger:         appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Str("ledger", store.Path()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
