package laptop

import (
	"context"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Browsing
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, slug string) (DetailOutput, error)
	Autocomplete(ctx context.Context, query string) ([]Suggestion, error)
	Compare(ctx context.Context, ids []string) ([]Laptop, error)
	Brands(ctx context.Context) ([]Brand, error)
	BrandDetail(ctx context.Context, input BrandDetailInput) (BrandDetailOutput, error)
	Categories(ctx context.Context) ([]Category, error)
	Home(ctx context.Context) (HomeOutput, error)

	// Lookups for other domains
	GetBySlug(ctx context.Context, slug string) (Laptop, error)
	GetByIDs(ctx context.Context, ids []string) ([]Laptop, error)
	All(ctx context.Context) ([]Laptop, error)

	// Catalog maintenance
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
	InvalidateSnapshot(ctx context.Context)
	CreateBrand(ctx context.Context, input CreateBrandInput) (Brand, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (Category, error)
	CreateProcessor(ctx context.Context, input CreateProcessorInput) (Processor, error)
	CreateLaptop(ctx context.Context, input CreateLaptopInput) (Laptop, error)
}

// RatingProvider supplies review aggregates for the detail page.
type RatingProvider interface {
	Summary(ctx context.Context, laptopID string) (model.RatingSummary, error)
}

// ArticleProvider supplies the featured articles of the home page.
type ArticleProvider interface {
	FeaturedArticles(ctx context.Context, limit int) ([]model.ArticleCard, error)
}
