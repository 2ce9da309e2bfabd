package article

import (
	"context"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns a page of published articles, newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Detail returns a published article and counts the view.
	Detail(ctx context.Context, slug string) (Article, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Article, error)

	// Lookups for other domains
	FeaturedArticles(ctx context.Context, limit int) ([]model.ArticleCard, error)
	Published(ctx context.Context) ([]Article, error)
}

// LaptopFinder resolves the laptop an article is about.
type LaptopFinder interface {
	GetBySlug(ctx context.Context, slug string) (laptop.Laptop, error)
}
