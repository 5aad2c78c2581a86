package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stemsi/workforce-api/internal/config"
	"github.com/stemsi/workforce-api/internal/database"
	"github.com/stemsi/workforce-api/internal/export"
	"github.com/stemsi/workforce-api/internal/handler"
	"github.com/stemsi/workforce-api/internal/logger"
	"github.com/stemsi/workforce-api/internal/metrics"
	"github.com/stemsi/workforce-api/internal/repository"
	"github.com/stemsi/workforce-api/internal/router"
	"github.com/stemsi/workforce-api/internal/service"
	"github.com/stemsi/workforce-api/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("output_dir", cfg.OutputDir).
		Msg("Starting Workforce API")

	// ─── Initialize Validator & Metrics ────────────────────────────────
	validator.Setup()
	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	departmentRepo := repository.NewDepartmentRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	tableRepo := repository.NewTableRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	departmentService := service.NewDepartmentService(departmentRepo, log)
	jobService := service.NewJobService(jobRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	exportStore := export.NewRedisStore(rdb, cfg.ExportLockTTL, log)
	exporter := export.NewExporter(tableRepo, departmentRepo, exportStore, exportStore, export.Config{
		OutputDir:    cfg.OutputDir,
		DefaultTable: cfg.ExportTable,
	}, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Department: handler.NewDepartmentHandler(departmentService),
		Job:        handler.NewJobHandler(jobService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Export:     handler.NewExportHandler(exporter),
		System:     handler.NewSystemHandler(pool, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// In-flight exports finish inside this window; their Redis locks
	// expire on their own if they do not.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Server stopped")
}
