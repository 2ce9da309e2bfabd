package repository

import "time"

// ListFavoritesOptions lists a user's favorites, newest first.
// Limit <= 0 means no limit.
type ListFavoritesOptions struct {
	UserID string
	Limit  int
}

// UpsertProfileOptions replaces every stored field of the user's profile.
type UpsertProfileOptions struct {
	UserID                 string
	Bio                    string
	Location               string
	Website                string
	NewsletterSubscription bool
	EmailNotifications     bool
	UpdatedAt              time.Time
}
