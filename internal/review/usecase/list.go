package usecase

import (
	"context"
	"math"

	"laptopxplorer/internal/model"
	"laptopxplorer/internal/review"
	repo "laptopxplorer/internal/review/repository"
)

// List returns a page of a laptop's reviews, newest first.
func (uc *implUseCase) List(ctx context.Context, input review.ListInput) (review.ListOutput, error) {
	lp, err := uc.laptops.GetBySlug(ctx, input.LaptopSlug)
	if err != nil {
		return review.ListOutput{}, err
	}

	page := min(max(1, input.Page), review.MaxPage)
	size := input.PageSize
	if size <= 0 || size > review.MaxPageSize {
		size = review.DefaultPageSize
	}

	reviews, total, err := uc.repo.ListReviews(ctx, repo.ListReviewsOptions{
		LaptopID: lp.ID,
		Limit:    size,
		Offset:   (page - 1) * size,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListReviews: %v", err)
		return review.ListOutput{}, err
	}

	out := review.ListOutput{
		Reviews:    reviews,
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: max(1, (total+size-1)/size),
	}

	if input.ViewerID != "" {
		mine, _, err := uc.repo.ListReviews(ctx, repo.ListReviewsOptions{LaptopID: lp.ID, UserID: input.ViewerID, Limit: 1})
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListReviews mine: %v", err)
			return review.ListOutput{}, err
		}
		if len(mine) > 0 {
			out.Mine = &mine[0]
		}
	}
	return out, nil
}

// Summary returns the average score, review count and per-score counts.
func (uc *implUseCase) Summary(ctx context.Context, laptopID string) (model.RatingSummary, error) {
	dist, err := uc.repo.ScoreDistribution(ctx, laptopID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ScoreDistribution: %v", err)
		return model.RatingSummary{}, err
	}

	summary := model.EmptyRatingSummary()
	sum := 0
	for score, n := range dist {
		summary.Distribution[score] = n
		summary.Count += n
		sum += score * n
	}
	if summary.Count > 0 {
		summary.Average = math.Round(float64(sum)/float64(summary.Count)*100) / 100
	}
	return summary, nil
}

// ListByUser returns the caller's most recent reviews.
func (uc *implUseCase) ListByUser(ctx context.Context, sc model.Scope, limit int) ([]review.Review, error) {
	if sc.UserID == "" {
		return nil, review.ErrMissingIdentity
	}
	if limit <= 0 || limit > review.MaxPageSize {
		limit = review.DefaultPageSize
	}

	reviews, _, err := uc.repo.ListReviews(ctx, repo.ListReviewsOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByUser ListReviews: %v", err)
		return nil, err
	}
	return reviews, nil
}

// Stats returns how many reviews the caller wrote and their average score.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (review.UserStats, error) {
	if sc.UserID == "" {
		return review.UserStats{}, review.ErrMissingIdentity
	}
	stats, err := uc.repo.UserStats(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats UserStats: %v", err)
		return review.UserStats{}, err
	}
	stats.AverageScore = math.Round(stats.AverageScore*100) / 100
	return stats, nil
}
