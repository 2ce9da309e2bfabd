package usecase

import (
	"strings"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/seo"
	"laptopxplorer/pkg/log"
)

type implUseCase struct {
	catalog  seo.Catalog
	ratings  laptop.RatingProvider
	articles seo.ArticleLister
	cfg      seo.Config
	l        log.Logger
}

// New creates a new seo UseCase implementation. ratings may be nil, in which
// case no aggregate rating is published, and articles may be nil, in which
// case the sitemap has no article entries.
func New(catalog seo.Catalog, ratings laptop.RatingProvider, articles seo.ArticleLister, cfg seo.Config, l log.Logger) *implUseCase {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Currency == "" {
		cfg.Currency = seo.DefaultCurrency
	}
	return &implUseCase{
		catalog:  catalog,
		ratings:  ratings,
		articles: articles,
		cfg:      cfg,
		l:        l,
	}
}

func (uc *implUseCase) url(path string) string {
	return uc.cfg.BaseURL + path
}
