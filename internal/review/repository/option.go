package repository

type UpsertReviewOptions struct {
	LaptopID  string
	UserID    string
	UserEmail string
	Score     int
	Comment   string
}

// ListReviewsOptions filters reviews, newest first. Non-empty fields are
// AND-ed; Limit <= 0 means no limit.
type ListReviewsOptions struct {
	LaptopID string
	UserID   string
	Limit    int
	Offset   int
}
