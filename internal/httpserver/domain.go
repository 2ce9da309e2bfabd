package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/account"
	accountHTTP "laptopxplorer/internal/account/delivery/http"
	accountRepo "laptopxplorer/internal/account/repository/sqlstore"
	accountUC "laptopxplorer/internal/account/usecase"
	"laptopxplorer/internal/article"
	articleHTTP "laptopxplorer/internal/article/delivery/http"
	articleRepo "laptopxplorer/internal/article/repository/sqlstore"
	articleUC "laptopxplorer/internal/article/usecase"
	"laptopxplorer/internal/laptop"
	laptopHTTP "laptopxplorer/internal/laptop/delivery/http"
	laptopRepo "laptopxplorer/internal/laptop/repository/sqlstore"
	laptopUC "laptopxplorer/internal/laptop/usecase"
	"laptopxplorer/internal/middleware"
	pricingHTTP "laptopxplorer/internal/pricing/delivery/http"
	pricingRepo "laptopxplorer/internal/pricing/repository/sqlstore"
	pricingUC "laptopxplorer/internal/pricing/usecase"
	"laptopxplorer/internal/review"
	reviewHTTP "laptopxplorer/internal/review/delivery/http"
	reviewRepo "laptopxplorer/internal/review/repository/sqlstore"
	reviewUC "laptopxplorer/internal/review/usecase"
	seoHTTP "laptopxplorer/internal/seo/delivery/http"
	seoUC "laptopxplorer/internal/seo/usecase"
)

// catalogUseCase is the laptop use case plus the setters that close the
// laptop <-> review and laptop <-> article dependency cycles.
type catalogUseCase interface {
	laptop.UseCase
	SetRatingProvider(p laptop.RatingProvider)
	SetArticleProvider(p laptop.ArticleProvider)
}

// Each setup function follows the same steps: repository, use case, HTTP
// handler, routes.

func (srv *HTTPServer) setupLaptopDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) catalogUseCase {
	repo := laptopRepo.New(srv.db, srv.l)
	uc := laptopUC.New(repo, srv.l, srv.snapshots, srv.catalog)
	h := laptopHTTP.New(srv.l, uc)
	laptopHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Laptop domain registered")
	return uc
}

func (srv *HTTPServer) setupReviewDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, catalog laptop.UseCase) review.UseCase {
	repo := reviewRepo.New(srv.db, srv.l)
	uc := reviewUC.New(repo, catalog, srv.l)
	h := reviewHTTP.New(srv.l, uc)
	reviewHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Review domain registered")
	return uc
}

func (srv *HTTPServer) setupArticleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, catalog laptop.UseCase) article.UseCase {
	repo := articleRepo.New(srv.db, srv.l)
	uc := articleUC.New(repo, catalog, srv.l)
	h := articleHTTP.New(srv.l, uc)
	articleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Article domain registered")
	return uc
}

func (srv *HTTPServer) setupAccountDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, catalog laptop.UseCase, reviews review.UseCase) account.UseCase {
	repo := accountRepo.New(srv.db, srv.l)
	uc := accountUC.New(repo, catalog, reviews, srv.l)
	h := accountHTTP.New(srv.l, uc)
	accountHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Account domain registered")
	return uc
}

func (srv *HTTPServer) setupPricingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, catalog laptop.UseCase, accounts account.UseCase) {
	repo := pricingRepo.New(srv.db, srv.l)
	uc := pricingUC.New(repo, catalog, srv.notifier, accounts, srv.l)
	h := pricingHTTP.New(srv.l, uc)
	pricingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Pricing domain registered")
}

func (srv *HTTPServer) setupSEODomain(ctx context.Context, api *gin.RouterGroup, catalog laptop.UseCase, reviews review.UseCase, articles article.UseCase) {
	uc := seoUC.New(catalog, reviews, articles, srv.site, srv.l)
	h := seoHTTP.New(srv.l, uc)
	seoHTTP.RegisterRoutes(srv.gin, api, h)

	srv.l.Infof(ctx, "SEO domain registered")
}
