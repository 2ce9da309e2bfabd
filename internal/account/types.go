package account

import (
	"time"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/review"
)

const (
	DashboardFavorites = 6
	DashboardReviews   = 5

	MaxBioLength      = 500
	MaxLocationLength = 100
	MaxWebsiteLength  = 200
)

// Favorite is a laptop a user bookmarked.
type Favorite struct {
	UserID    string
	LaptopID  string
	CreatedAt time.Time
}

// FavoriteLaptop pairs a bookmarked laptop with when it was bookmarked.
type FavoriteLaptop struct {
	Laptop      laptop.Laptop
	FavoritedAt time.Time
}

// Profile holds a user's public details and contact preferences. Users who
// never saved one get DefaultProfile.
type Profile struct {
	UserID                 string
	Bio                    string
	Location               string
	Website                string
	NewsletterSubscription bool
	EmailNotifications     bool
	UpdatedAt              time.Time
}

// DefaultProfile is the profile of a user who has not saved one yet.
func DefaultProfile(userID string) Profile {
	return Profile{UserID: userID, EmailNotifications: true}
}

// --- UseCase Inputs ---

// UpdateProfileInput changes the fields that are set and keeps the rest.
type UpdateProfileInput struct {
	Bio                    *string
	Location               *string
	Website                *string
	NewsletterSubscription *bool
	EmailNotifications     *bool
}

// --- UseCase Outputs ---

type DashboardOutput struct {
	FavoritesCount  int
	ReviewsCount    int
	AverageRating   float64
	RecentFavorites []FavoriteLaptop
	RecentReviews   []review.Review
}
