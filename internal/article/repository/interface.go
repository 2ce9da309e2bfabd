package repository

import (
	"context"

	"laptopxplorer/internal/article"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateArticle returns ErrDuplicate when the slug is taken.
	CreateArticle(ctx context.Context, opt CreateArticleOptions) (article.Article, error)
	// GetOneArticle returns the zero Article when nothing matches.
	GetOneArticle(ctx context.Context, opt GetOneArticleOptions) (article.Article, error)
	ListArticles(ctx context.Context, opt ListArticlesOptions) ([]article.Article, int, error)
	IncrementViews(ctx context.Context, id string) error
}
