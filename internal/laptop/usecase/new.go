package usecase

import (
	"sync/atomic"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/cache"
	"laptopxplorer/pkg/catalog"
	"laptopxplorer/pkg/log"
)

const (
	snapshotKey = "laptops:snapshot"

	defaultAutocompleteLimit = 8
	minAutocompleteLength    = 2
	minCompare               = 2
	defaultMaxCompare        = 4
	featuredLimit            = 6
	featuredArticleLimit     = 3
	homeBrandLimit           = 8
	relatedLimit             = 4
)

// Config tunes listing behaviour. Zero values fall back to defaults.
type Config struct {
	PageSize          int
	AutocompleteLimit int
	CompareLimit      int
}

// implUseCase is the private implementation of laptop.UseCase.
type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	snapshots cache.Cache[[]laptop.Laptop]
	ratings   laptop.RatingProvider
	articles  laptop.ArticleProvider
	cfg       Config

	// generation counts snapshot invalidations. A load that overlapped one
	// must not leave its result in the cache.
	generation atomic.Uint64
}

// New creates a new laptop UseCase implementation.
func New(repo repository.Repository, l log.Logger, snapshots cache.Cache[[]laptop.Laptop], cfg Config) *implUseCase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = catalog.DefaultPageSize
	}
	if cfg.AutocompleteLimit <= 0 {
		cfg.AutocompleteLimit = defaultAutocompleteLimit
	}
	if cfg.CompareLimit < minCompare {
		cfg.CompareLimit = defaultMaxCompare
	}
	return &implUseCase{
		repo:      repo,
		l:         l,
		snapshots: snapshots,
		cfg:       cfg,
	}
}

// SetRatingProvider wires the review aggregates shown on detail pages.
// The review domain resolves laptops through this use case, so it is
// attached after both are built.
func (uc *implUseCase) SetRatingProvider(p laptop.RatingProvider) {
	uc.ratings = p
}

// SetArticleProvider wires the featured articles shown on the home page.
func (uc *implUseCase) SetArticleProvider(p laptop.ArticleProvider) {
	uc.articles = p
}
