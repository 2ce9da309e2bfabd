package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"laptopxplorer/internal/laptop"
	laptopUC "laptopxplorer/internal/laptop/usecase"
	"laptopxplorer/internal/middleware"
	"laptopxplorer/internal/pricing"
	"laptopxplorer/internal/seo"
	"laptopxplorer/pkg/cache"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/scope"
	"laptopxplorer/pkg/sqldb"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	db           *sqldb.DB
	snapshots    cache.Cache[[]laptop.Laptop]
	scopeManager scope.Manager
	registry     *prometheus.Registry

	// Domain settings
	middleware middleware.Config
	catalog    laptopUC.Config
	site       seo.Config
	notifier   pricing.Notifier
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB           *sqldb.DB
	Snapshots    cache.Cache[[]laptop.Laptop]
	ScopeManager scope.Manager
	Registry     *prometheus.Registry

	Middleware middleware.Config
	Catalog    laptopUC.Config
	Site       seo.Config
	// Notifier delivers price alerts. Defaults to logging them.
	Notifier pricing.Notifier
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		snapshots:       cfg.Snapshots,
		scopeManager:    cfg.ScopeManager,
		registry:        cfg.Registry,
		middleware:      cfg.Middleware,
		catalog:         cfg.Catalog,
		site:            cfg.Site,
		notifier:        cfg.Notifier,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.registry == nil {
		srv.registry = prometheus.NewRegistry()
	}
	if srv.notifier == nil {
		srv.notifier = pricing.NewLogNotifier(logger)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.snapshots == nil {
		return errors.New("snapshot cache is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	return nil
}
