package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/vixus/vixus/internal/adapter/http"
	"github.com/vixus/vixus/internal/adapter/http/handler"
	"github.com/vixus/vixus/internal/adapter/http/middleware"
	postgresRepo "github.com/vixus/vixus/internal/adapter/repository/postgres"
	redisRepo "github.com/vixus/vixus/internal/adapter/repository/redis"
	"github.com/vixus/vixus/internal/infrastructure/config"
	"github.com/vixus/vixus/internal/infrastructure/logger"
	"github.com/vixus/vixus/internal/infrastructure/metrics"
	"github.com/vixus/vixus/internal/infrastructure/postgres"
	"github.com/vixus/vixus/internal/infrastructure/redis"
	"github.com/vixus/vixus/internal/usecase"
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

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Metrics registry
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	retrier := postgresRepo.NewRetrier(appLogger)
	idGen := postgresRepo.NewULIDGenerator()
	reportCache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	reportUC := usecase.NewReportUseCase(entryRepo, categoryRepo, accountRepo, reportCache, m, usecase.ReportOptions{
		MaxBuckets: cfg.ReportMaxBuckets,
		CacheTTL:   cfg.ReportCacheTTL,
	})
	entryUC := usecase.NewEntryUseCase(entryRepo, categoryRepo, idGen, reportUC, m)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen)
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, retrier, idGen, m)

	// Initialize handlers
	entryHandler := handler.NewEntryHandler(entryUC)
	categoryHandler := handler.NewCategoryHandler(categoryUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EntryHandler:     entryHandler,
		CategoryHandler:  categoryHandler,
		AccountHandler:   accountHandler,
		ReportHandler:    reportHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
