package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"laptopxplorer/config"
	_ "laptopxplorer/docs" // Swagger docs
	"laptopxplorer/internal/httpserver"
	"laptopxplorer/internal/laptop"
	laptopUC "laptopxplorer/internal/laptop/usecase"
	"laptopxplorer/internal/middleware"
	"laptopxplorer/internal/migration"
	"laptopxplorer/internal/seo"
	"laptopxplorer/pkg/cache"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/scope"
	"laptopxplorer/pkg/sqldb"
)

// @title       LaptopXplorer API
// @description Laptop catalog with faceted search, reviews, favorites, price tracking and SEO metadata.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LaptopXplorer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqldb.Open(ctx, sqldb.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(ctx, migration.All()); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "Database ready (%s)", db.Driver())

	// 4. Catalog snapshot cache
	snapshots, closeCache, err := newSnapshotCache(ctx, cfg.Cache, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize cache: ", err)
		return
	}
	defer closeCache()

	// 5. Token verification
	scopeManager, err := scope.New(scope.Config{
		SecretKey: cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.Issuer,
		Audience:  cfg.Auth.Audience,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize scope manager: ", err)
		return
	}

	// 6. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Snapshots:       snapshots,
		ScopeManager:    scopeManager,
		Registry:        registry,
		Middleware: middleware.Config{
			AllowedOrigins:    cfg.CORS.AllowedOrigins,
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		},
		Catalog: laptopUC.Config{
			PageSize:          cfg.Catalog.PageSize,
			AutocompleteLimit: cfg.Catalog.AutocompleteLimit,
			CompareLimit:      cfg.Catalog.CompareLimit,
		},
		Site: seo.Config{
			BaseURL:  cfg.Site.BaseURL,
			SiteName: cfg.Site.SiteName,
			Currency: cfg.Site.Currency,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newSnapshotCache(ctx context.Context, cfg config.CacheConfig, l log.Logger) (cache.Cache[[]laptop.Laptop], func(), error) {
	if cfg.Backend != "redis" {
		l.Infof(ctx, "Catalog cache: memory (ttl %s)", cfg.TTL)
		return cache.NewMemory[[]laptop.Laptop](cfg.Size, cfg.TTL), func() {}, nil
	}

	client, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	l.Infof(ctx, "Catalog cache: redis (ttl %s)", cfg.TTL)
	return cache.NewRedis[[]laptop.Laptop](client, "laptopxplorer:", cfg.TTL, l), func() { client.Close() }, nil
}
