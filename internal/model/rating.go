package model

// RatingSummary aggregates the review scores of one laptop.
type RatingSummary struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution"` // score (1..5) -> number of reviews
}

// EmptyRatingSummary returns a summary with a zeroed 1..5 distribution.
func EmptyRatingSummary() RatingSummary {
	return RatingSummary{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
}
