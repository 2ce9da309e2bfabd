package http

import (
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/account"
	"laptopxplorer/internal/review"
)

// --- Request DTOs ---

// updateProfileReq leaves absent fields unchanged.
type updateProfileReq struct {
	Bio                    *string `json:"bio"`
	Location               *string `json:"location"`
	Website                *string `json:"website"`
	NewsletterSubscription *bool   `json:"newsletter_subscription"`
	EmailNotifications     *bool   `json:"email_notifications"`
}

func (r updateProfileReq) toInput() account.UpdateProfileInput {
	return account.UpdateProfileInput{
		Bio:                    r.Bio,
		Location:               r.Location,
		Website:                r.Website,
		NewsletterSubscription: r.NewsletterSubscription,
		EmailNotifications:     r.EmailNotifications,
	}
}

// --- Response DTOs ---

type toggleResp struct {
	LaptopID  string `json:"laptop_id"`
	Favorited bool   `json:"favorited"`
}

type favoriteResp struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	BrandName   string          `json:"brand_name"`
	ImageURL    string          `json:"image_url,omitempty"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"in_stock"`
	FavoritedAt time.Time       `json:"favorited_at"`
}

func newFavoriteResps(favs []account.FavoriteLaptop) []favoriteResp {
	out := make([]favoriteResp, len(favs))
	for i, f := range favs {
		out[i] = favoriteResp{
			ID:          f.Laptop.ID,
			Name:        f.Laptop.Name,
			Slug:        f.Laptop.Slug,
			BrandName:   f.Laptop.BrandName,
			ImageURL:    f.Laptop.ImageURL,
			Price:       f.Laptop.Price,
			InStock:     f.Laptop.InStock,
			FavoritedAt: f.FavoritedAt,
		}
	}
	return out
}

type recentReviewResp struct {
	ID         string    `json:"id"`
	LaptopName string    `json:"laptop_name"`
	LaptopSlug string    `json:"laptop_slug"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newRecentReviewResps(reviews []review.Review) []recentReviewResp {
	out := make([]recentReviewResp, len(reviews))
	for i, rv := range reviews {
		out[i] = recentReviewResp{
			ID:         rv.ID,
			LaptopName: rv.LaptopName,
			LaptopSlug: rv.LaptopSlug,
			Score:      rv.Score,
			Comment:    rv.Comment,
			UpdatedAt:  rv.UpdatedAt,
		}
	}
	return out
}

type dashboardResp struct {
	FavoritesCount  int                `json:"favorites_count"`
	ReviewsCount    int                `json:"reviews_count"`
	AverageRating   float64            `json:"average_rating"`
	RecentFavorites []favoriteResp     `json:"recent_favorites"`
	RecentReviews   []recentReviewResp `json:"recent_reviews"`
}

func newDashboardResp(out account.DashboardOutput) dashboardResp {
	return dashboardResp{
		FavoritesCount:  out.FavoritesCount,
		ReviewsCount:    out.ReviewsCount,
		AverageRating:   out.AverageRating,
		RecentFavorites: newFavoriteResps(out.RecentFavorites),
		RecentReviews:   newRecentReviewResps(out.RecentReviews),
	}
}

type profileResp struct {
	UserID                 string     `json:"user_id"`
	Bio                    string     `json:"bio"`
	Location               string     `json:"location"`
	Website                string     `json:"website"`
	NewsletterSubscription bool       `json:"newsletter_subscription"`
	EmailNotifications     bool       `json:"email_notifications"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
}

func newProfileResp(p account.Profile) profileResp {
	resp := profileResp{
		UserID:                 p.UserID,
		Bio:                    p.Bio,
		Location:               p.Location,
		Website:                p.Website,
		NewsletterSubscription: p.NewsletterSubscription,
		EmailNotifications:     p.EmailNotifications,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}
