package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/response"
)

// Handler builds the routing tree. Run calls it; tests can serve it directly.
func (srv *HTTPServer) Handler() (*gin.Engine, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv.gin, nil
}

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.scopeManager, srv.middleware, srv.registry)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Metrics())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.middleware.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(response.NotFound)
}

// registerDomainRoutes wires every domain under /api/v1 and the crawler
// files at the root.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	catalog := srv.setupLaptopDomain(ctx, api, mw)
	reviews := srv.setupReviewDomain(ctx, api, mw, catalog)
	catalog.SetRatingProvider(reviews)
	articles := srv.setupArticleDomain(ctx, api, mw, catalog)
	catalog.SetArticleProvider(articles)

	accounts := srv.setupAccountDomain(ctx, api, mw, catalog, reviews)
	srv.setupPricingDomain(ctx, api, mw, catalog, accounts)
	srv.setupSEODomain(ctx, api, catalog, reviews, articles)

	return nil
}
