package usecase

import (
	"context"

	"laptopxplorer/internal/account"
	"laptopxplorer/internal/model"
)

// Dashboard summarizes the caller's activity: favorite and review counts,
// the average score they give, and their latest favorites and reviews.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (account.DashboardOutput, error) {
	if sc.UserID == "" {
		return account.DashboardOutput{}, account.ErrMissingIdentity
	}

	count, err := uc.repo.CountFavorites(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard CountFavorites: %v", err)
		return account.DashboardOutput{}, err
	}

	recent, err := uc.favorites(ctx, sc.UserID, account.DashboardFavorites)
	if err != nil {
		return account.DashboardOutput{}, err
	}

	stats, err := uc.reviews.Stats(ctx, sc)
	if err != nil {
		return account.DashboardOutput{}, err
	}

	reviews, err := uc.reviews.ListByUser(ctx, sc, account.DashboardReviews)
	if err != nil {
		return account.DashboardOutput{}, err
	}

	return account.DashboardOutput{
		FavoritesCount:  count,
		ReviewsCount:    stats.Count,
		AverageRating:   stats.AverageScore,
		RecentFavorites: recent,
		RecentReviews:   reviews,
	}, nil
}
