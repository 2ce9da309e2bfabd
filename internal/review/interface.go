package review

import (
	"context"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Rate(ctx context.Context, sc model.Scope, input RateInput) (Review, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Summary(ctx context.Context, laptopID string) (model.RatingSummary, error)
	ListByUser(ctx context.Context, sc model.Scope, limit int) ([]Review, error)
	Stats(ctx context.Context, sc model.Scope) (UserStats, error)
}

// LaptopFinder resolves the laptop a review is attached to.
type LaptopFinder interface {
	GetBySlug(ctx context.Context, slug string) (laptop.Laptop, error)
}
