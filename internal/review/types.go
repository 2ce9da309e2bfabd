package review

import "time"

const (
	MinScore = 1
	MaxScore = 5

	MaxCommentLength = 2000
	DefaultPageSize  = 10
	MaxPageSize      = 50
	// MaxPage bounds the requested page so the row offset cannot overflow.
	MaxPage = 10000
)

// Review is one user's score and comment on one laptop. A user has at most
// one review per laptop; rating again replaces it.
type Review struct {
	ID         string
	LaptopID   string
	LaptopName string
	LaptopSlug string
	UserID     string
	UserEmail  string
	Score      int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserStats aggregates the reviews a user has written.
type UserStats struct {
	Count        int
	AverageScore float64
}

// --- UseCase Inputs ---

type RateInput struct {
	LaptopSlug string
	Score      int
	Comment    string
}

type ListInput struct {
	LaptopSlug string
	Page       int
	PageSize   int
	// ViewerID, when set, also looks up that user's own review.
	ViewerID string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Reviews    []Review
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Mine       *Review
}
