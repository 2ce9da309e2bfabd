package seo

import (
	"context"

	"laptopxplorer/internal/article"
	"laptopxplorer/internal/laptop"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Meta(ctx context.Context, slug string) (Meta, error)
	Sitemap(ctx context.Context) (URLSet, error)
	Robots(ctx context.Context) string
}

// Catalog is the read side of the catalog the metadata is built from.
type Catalog interface {
	GetBySlug(ctx context.Context, slug string) (laptop.Laptop, error)
	All(ctx context.Context) ([]laptop.Laptop, error)
	Brands(ctx context.Context) ([]laptop.Brand, error)
	Categories(ctx context.Context) ([]laptop.Category, error)
}

// ArticleLister lists the articles published on the site.
type ArticleLister interface {
	Published(ctx context.Context) ([]article.Article, error)
}
