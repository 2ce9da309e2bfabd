package repository

import (
	"context"

	"laptopxplorer/internal/account"
)

//go:generate mockery --name Repository
type Repository interface {
	// ToggleFavorite removes the favorite if present and inserts it
	// otherwise, atomically. Returns true when the favorite now exists.
	ToggleFavorite(ctx context.Context, userID, laptopID string) (bool, error)
	ListFavorites(ctx context.Context, opt ListFavoritesOptions) ([]account.Favorite, error)
	CountFavorites(ctx context.Context, userID string) (int, error)

	// GetProfile returns the zero Profile when the user never saved one.
	GetProfile(ctx context.Context, userID string) (account.Profile, error)
	UpsertProfile(ctx context.Context, opt UpsertProfileOptions) (account.Profile, error)
	// ListEmailOptOuts returns which of userIDs disabled email notifications.
	ListEmailOptOuts(ctx context.Context, userIDs []string) ([]string, error)
}
