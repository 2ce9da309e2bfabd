package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"laptopxplorer/internal/review"
	repo "laptopxplorer/internal/review/repository"
)

const reviewSelect = `
	SELECT r.id, r.laptop_id, l.name, l.slug, r.user_id, r.user_email,
		r.score, r.comment, r.created_at, r.updated_at
	FROM reviews r
	JOIN laptops l ON l.id = r.laptop_id`

// UpsertReview relies on the (laptop_id, user_id) unique key so concurrent
// ratings by the same user collapse into one row.
func (r *implRepository) UpsertReview(ctx context.Context, opt repo.UpsertReviewOptions) (review.Review, error) {
	const query = `
		INSERT INTO reviews (id, laptop_id, user_id, user_email, score, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (laptop_id, user_id) DO UPDATE SET
			score = excluded.score,
			comment = excluded.comment,
			user_email = excluded.user_email,
			updated_at = excluded.updated_at`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		uuid.NewString(), opt.LaptopID, opt.UserID, opt.UserEmail, opt.Score, opt.Comment, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertReview"), err)
		return review.Review{}, repo.ErrFailedToUpsert
	}

	reviews, _, err := r.ListReviews(ctx, repo.ListReviewsOptions{LaptopID: opt.LaptopID, UserID: opt.UserID, Limit: 1})
	if err != nil {
		return review.Review{}, err
	}
	if len(reviews) == 0 {
		r.l.Errorf(ctx, "%s: review vanished after upsert", r.dsn("UpsertReview"))
		return review.Review{}, repo.ErrFailedToGet
	}
	return reviews[0], nil
}

func buildListQuery(opt repo.ListReviewsOptions) (string, []any) {
	var conditions []string
	var args []any
	if opt.LaptopID != "" {
		conditions = append(conditions, "r.laptop_id = ?")
		args = append(args, opt.LaptopID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "r.user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// ListReviews returns a page of reviews, newest first, and the total count.
func (r *implRepository) ListReviews(ctx context.Context, opt repo.ListReviewsOptions) ([]review.Review, int, error) {
	where, args := buildListQuery(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reviews r WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(countQuery), args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListReviews"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY r.updated_at DESC, r.id", reviewSelect, where)
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opt.Limit, max(0, opt.Offset))
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReviews"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	reviews := []review.Review{}
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(
			&rv.ID, &rv.LaptopID, &rv.LaptopName, &rv.LaptopSlug, &rv.UserID, &rv.UserEmail,
			&rv.Score, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListReviews"), err)
			return nil, 0, repo.ErrFailedToList
		}
		reviews = append(reviews, rv)
	}
	return reviews, total, rows.Err()
}

// ScoreDistribution counts reviews per score for a laptop.
func (r *implRepository) ScoreDistribution(ctx context.Context, laptopID string) (map[int]int, error) {
	const query = `SELECT score, COUNT(*) FROM reviews WHERE laptop_id = ? GROUP BY score`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), laptopID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ScoreDistribution"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	dist := map[int]int{}
	for rows.Next() {
		var score, n int
		if err := rows.Scan(&score, &n); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ScoreDistribution"), err)
			return nil, repo.ErrFailedToGet
		}
		dist[score] = n
	}
	return dist, rows.Err()
}

// UserStats counts a user's reviews and averages the scores given.
func (r *implRepository) UserStats(ctx context.Context, userID string) (review.UserStats, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(score), 0) FROM reviews WHERE user_id = ?`

	var count, sum int
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(query), userID).Scan(&count, &sum); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserStats"), err)
		return review.UserStats{}, repo.ErrFailedToGet
	}

	stats := review.UserStats{Count: count}
	if count > 0 {
		stats.AverageScore = float64(sum) / float64(count)
	}
	return stats, nil
}
