package repository

import (
	"context"

	"laptopxplorer/internal/review"
)

//go:generate mockery --name Repository
type Repository interface {
	// UpsertReview inserts the review or replaces the user's existing one.
	UpsertReview(ctx context.Context, opt UpsertReviewOptions) (review.Review, error)
	ListReviews(ctx context.Context, opt ListReviewsOptions) ([]review.Review, int, error)
	// ScoreDistribution returns score -> number of reviews for a laptop.
	ScoreDistribution(ctx context.Context, laptopID string) (map[int]int, error)
	UserStats(ctx context.Context, userID string) (review.UserStats, error)
}
