// Package main is the entry point for the BizSuite statements API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bizsuite/backend/config"
	"github.com/bizsuite/backend/internal/application/usecase/manualentry"
	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/infra/db"
	"github.com/bizsuite/backend/internal/infra/server/router"
	"github.com/bizsuite/backend/internal/integration/adapters"
	"github.com/bizsuite/backend/internal/integration/entrypoint/controller"
	"github.com/bizsuite/backend/internal/integration/entrypoint/middleware"
	"github.com/bizsuite/backend/internal/integration/persistence"
	"github.com/bizsuite/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting BizSuite statements API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Database connection and migrations
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.BusinessRecordModel{},
		&model.SalaryPaymentModel{},
		&model.AgencySaleModel{},
		&model.ManualEntryModel{},
		&model.InvestmentModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Optional redis snapshot cache. The engine recomputes per request
	// when the cache is absent, so startup never blocks on redis.
	var snapshotCache statement.SnapshotCache
	var cacheHealthChecker func() bool

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB

		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		snapshotCache = adapters.NewRedisSnapshotCache(redisClient, cfg.Cache.SnapshotTTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
		slog.Info("Snapshot cache enabled", "ttl", cfg.Cache.SnapshotTTL.String())
	} else {
		slog.Info("Snapshot cache disabled, statements recomputed per request")
	}

	// Repositories over the five source subsystems
	businessSales := persistence.NewBusinessSalesRepository(database.DB())
	payroll := persistence.NewPayrollRepository(database.DB())
	agencySales := persistence.NewAgencySalesRepository(database.DB())
	manualEntries := persistence.NewManualEntryRepository(database.DB())
	investments := persistence.NewInvestmentRepository(database.DB())

	// Statement engine
	sources := []statement.Source{
		statement.NewBusinessSalesAdapter(businessSales),
		statement.NewPayrollAdapter(payroll),
		statement.NewAgencyCommissionAdapter(agencySales),
		statement.NewManualEntryAdapter(manualEntries),
		statement.NewInvestmentAdapter(investments),
	}
	computeStatementUseCase := statement.NewComputeStatementUseCase(sources, snapshotCache)
	computeSummaryUseCase := statement.NewComputeSummaryUseCase(payroll, agencySales)

	// Manual entry use cases
	createEntryUseCase := manualentry.NewCreateEntryUseCase(manualEntries, snapshotCache)
	listEntriesUseCase := manualentry.NewListEntriesUseCase(manualEntries)
	updateEntryUseCase := manualentry.NewUpdateEntryUseCase(manualEntries, snapshotCache)
	deleteEntryUseCase := manualentry.NewDeleteEntryUseCase(manualEntries, snapshotCache)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck, cacheHealthChecker)
	statementController := controller.NewStatementController(computeStatementUseCase, computeSummaryUseCase)
	manualEntryController := controller.NewManualEntryController(
		createEntryUseCase,
		listEntriesUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)
	statementRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Router and HTTP server
	r := router.NewRouter(
		healthController,
		statementController,
		manualEntryController,
		statementRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
