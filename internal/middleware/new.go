package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/scope"
)

// Config holds the cross-cutting HTTP settings.
type Config struct {
	AllowedOrigins    []string
	RequestsPerMinute int
}

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	config       Config
	limiter      *rateLimiter
	metrics      *httpMetrics
}

// New builds the middleware set. reg receives the HTTP metrics; nil skips
// metric registration.
func New(l log.Logger, scopeManager scope.Manager, cfg Config, reg prometheus.Registerer) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		config:       cfg,
		limiter:      newRateLimiter(cfg.RequestsPerMinute),
		metrics:      newHTTPMetrics(reg),
	}
}
