package usecase

import (
	"context"

	"laptopxplorer/internal/account"
	repo "laptopxplorer/internal/account/repository"
	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
)

func (uc *implUseCase) ToggleFavorite(ctx context.Context, sc model.Scope, laptopID string) (bool, error) {
	if sc.UserID == "" {
		return false, account.ErrMissingIdentity
	}

	found, err := uc.laptops.GetByIDs(ctx, []string{laptopID})
	if err != nil {
		return false, err
	}
	if len(found) == 0 {
		return false, laptop.ErrLaptopNotFound
	}

	favorited, err := uc.repo.ToggleFavorite(ctx, sc.UserID, laptopID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleFavorite ToggleFavorite: %v", err)
		return false, err
	}
	return favorited, nil
}

// Favorites returns the caller's favorites, most recently added first.
func (uc *implUseCase) Favorites(ctx context.Context, sc model.Scope) ([]account.FavoriteLaptop, error) {
	if sc.UserID == "" {
		return nil, account.ErrMissingIdentity
	}
	return uc.favorites(ctx, sc.UserID, 0)
}

func (uc *implUseCase) favorites(ctx context.Context, userID string, limit int) ([]account.FavoriteLaptop, error) {
	favs, err := uc.repo.ListFavorites(ctx, repo.ListFavoritesOptions{UserID: userID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.favorites ListFavorites: %v", err)
		return nil, err
	}

	ids := make([]string, len(favs))
	for i, f := range favs {
		ids[i] = f.LaptopID
	}
	laptops, err := uc.laptops.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]laptop.Laptop, len(laptops))
	for _, lp := range laptops {
		byID[lp.ID] = lp
	}
	out := make([]account.FavoriteLaptop, 0, len(favs))
	for _, f := range favs {
		if lp, ok := byID[f.LaptopID]; ok {
			out = append(out, account.FavoriteLaptop{Laptop: lp, FavoritedAt: f.CreatedAt})
		}
	}
	return out, nil
}
