package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagebuilder/docs"
	"pagebuilder/internal/config"
	"pagebuilder/internal/database"
	"pagebuilder/internal/database/migration"
	handlers "pagebuilder/internal/http/handler"
	"pagebuilder/internal/http/middleware"
	"pagebuilder/internal/logging"
	"pagebuilder/internal/otel"
	"pagebuilder/internal/repository"
	"pagebuilder/internal/repository/memory"
	"pagebuilder/internal/repository/postgres"
	pageredis "pagebuilder/internal/repository/redis"
	"pagebuilder/internal/repository/sqlite"
	"pagebuilder/internal/service"
	"pagebuilder/internal/storage"
)

// @title Page Builder API
// @version 1.0
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", "err", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", "err", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open page store", "driver", cfg.Store.Driver, "err", err)
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := service.NewMetrics(reg)
	if err != nil {
		logger.Fatal("failed to register page metrics", "err", err)
	}
	opts := []service.Option{service.WithMetrics(metrics)}

	// Archiving is optional; it needs an S3-compatible endpoint.
	if cfg.MinIO.Endpoint != "" {
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			logger.Fatal("failed to initialize object storage", "err", err)
		}
		opts = append(opts, service.WithArchive(objStore, time.Duration(cfg.MinIO.PresignTTLSec)*time.Second))
		logger.Info("archive storage enabled", "endpoint", cfg.MinIO.Endpoint, "bucket", cfg.MinIO.Bucket)
	}

	pageSvc := service.NewPageService(repo, opts...)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal("failed to register http metrics", "err", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             8 * 1024 * 1024,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, repo, pageSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "store", cfg.Store.Driver)
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", "err", err)
	}
}

// openStore connects the configured page store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.AppConfig, logger *log.Logger) (repository.PageRepository, func() error, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewPagePostgres(db), db.Close, nil

	case config.DriverSQLite:
		db, err := database.NewSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("sqlite store opened", "path", cfg.SQLite.Path)
		return sqlite.NewPageSQLite(db), db.Close, nil

	case config.DriverRedis:
		r, err := pageredis.NewPageRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil

	case config.DriverMemory:
		logger.Warn("memory store selected; pages are lost on restart")
		return memory.NewPageMemory(), func() error { return nil }, nil

	case "":
		return nil, nil, errors.New("store driver is required")
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
