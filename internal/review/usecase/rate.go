package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"laptopxplorer/internal/model"
	"laptopxplorer/internal/review"
	repo "laptopxplorer/internal/review/repository"
)

// Rate records the caller's score for a laptop, replacing any earlier one.
func (uc *implUseCase) Rate(ctx context.Context, sc model.Scope, input review.RateInput) (review.Review, error) {
	if sc.UserID == "" {
		return review.Review{}, review.ErrMissingIdentity
	}
	if input.Score < review.MinScore || input.Score > review.MaxScore {
		return review.Review{}, review.ErrInvalidScore
	}
	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > review.MaxCommentLength {
		return review.Review{}, review.ErrCommentTooLong
	}

	lp, err := uc.laptops.GetBySlug(ctx, input.LaptopSlug)
	if err != nil {
		return review.Review{}, err
	}

	rv, err := uc.repo.UpsertReview(ctx, repo.UpsertReviewOptions{
		LaptopID:  lp.ID,
		UserID:    sc.UserID,
		UserEmail: sc.Email,
		Score:     input.Score,
		Comment:   comment,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rate UpsertReview: %v", err)
		return review.Review{}, err
	}
	return rv, nil
}
