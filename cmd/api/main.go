package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"examdocs/internal/config"
	"examdocs/internal/database"
	"examdocs/internal/database/migration"
	handlers "examdocs/internal/http/handler"
	"examdocs/internal/http/middleware"
	"examdocs/internal/logging"
	"examdocs/internal/otel"
	"examdocs/internal/render"
	"examdocs/internal/repository/postgres"
	"examdocs/internal/service"
	"examdocs/internal/session"
	"examdocs/internal/storage"
)

const maxUploadBytes = 32 << 20

// @title Exam Documents API
// @version 1.0
// @description Room assignment and exam document generation.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location(), logging.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("tracing_init_failed", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	font, err := render.LoadFont(cfg.Exam.FontFamily, cfg.Exam.FontPath, cfg.Exam.FontBoldPath)
	if err != nil {
		// Missing fonts fall back to transliterated Helvetica.
		logger.Warn("font_load_failed", zap.Error(err))
	}
	if font == nil {
		logger.Info("font_fallback", zap.String("font", "Helvetica"))
	}

	var (
		db        *sql.DB
		bundleSvc service.BundleService
	)
	if cfg.ArchiveEnabled {
		db, err = database.NewPostgres(ctx, cfg.Database, logger.Named("database"))
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, logger.Named("migration"), cfg.Database.Host); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}

		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			logger.Fatal("failed to initialize object storage", zap.Error(err))
		}
		bundleSvc = service.NewBundleService(objStore, postgres.NewBundlePostgres(db))
	}

	sessions := session.NewStore(session.Options{
		MaxCapacity: cfg.Exam.MaxRoomCapacity,
		TTL:         time.Duration(cfg.Session.TTLSec) * time.Second,
	}, logger.Named("session"))
	go sessions.Run(ctx, time.Duration(cfg.Session.SweepIntervalSec)*time.Second)

	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}
	examSvc := service.NewExamService(sessions, bundleSvc, metrics, service.ExamOptions{
		Font:     font,
		PageSize: cfg.Exam.PageSize,
	}, logger)

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             maxUploadBytes,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Sessions: service.NewSessionService(sessions),
		Exams:    examSvc,
		Bundles:  bundleSvc,
	})

	handlers.RegisterDocs(app, cfg.AppHost)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logger.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server_starting",
		zap.String("addr", addr),
		zap.Bool("archive_enabled", cfg.ArchiveEnabled),
	)
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
	logger.Info("server_stopped")
}
