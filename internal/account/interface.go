package account

import (
	"context"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/internal/review"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ToggleFavorite adds the laptop to the caller's favorites, or removes it
	// when already there. Returns whether the laptop is now a favorite.
	ToggleFavorite(ctx context.Context, sc model.Scope, laptopID string) (bool, error)
	Favorites(ctx context.Context, sc model.Scope) ([]FavoriteLaptop, error)
	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)

	// Profile
	Profile(ctx context.Context, sc model.Scope) (Profile, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (Profile, error)
	// EmailOptOuts returns the subset of userIDs that turned email
	// notifications off.
	EmailOptOuts(ctx context.Context, userIDs []string) (map[string]bool, error)
}

// LaptopFinder resolves favorited laptop ids.
type LaptopFinder interface {
	GetByIDs(ctx context.Context, ids []string) ([]laptop.Laptop, error)
}

// ReviewReader exposes the caller's review history.
type ReviewReader interface {
	ListByUser(ctx context.Context, sc model.Scope, limit int) ([]review.Review, error)
	Stats(ctx context.Context, sc model.Scope) (review.UserStats, error)
}
