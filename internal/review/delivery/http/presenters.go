package http

import (
	"time"

	"laptopxplorer/internal/review"
)

// --- Request DTOs ---

type rateReq struct {
	Slug    string `json:"-"`
	Score   int    `json:"score"   binding:"required"`
	Comment string `json:"comment" binding:"max=2000"`
}

func (r rateReq) toInput() review.RateInput {
	return review.RateInput{LaptopSlug: r.Slug, Score: r.Score, Comment: r.Comment}
}

type listReq struct {
	Slug     string `form:"-"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	ViewerID string `form:"-"`
}

func (r listReq) toInput() review.ListInput {
	return review.ListInput{LaptopSlug: r.Slug, Page: r.Page, PageSize: r.PageSize, ViewerID: r.ViewerID}
}

// --- Response DTOs ---

type reviewResp struct {
	ID         string    `json:"id"`
	LaptopID   string    `json:"laptop_id"`
	LaptopName string    `json:"laptop_name"`
	LaptopSlug string    `json:"laptop_slug"`
	UserID     string    `json:"user_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newReviewResp(rv review.Review) reviewResp {
	return reviewResp{
		ID:         rv.ID,
		LaptopID:   rv.LaptopID,
		LaptopName: rv.LaptopName,
		LaptopSlug: rv.LaptopSlug,
		UserID:     rv.UserID,
		Score:      rv.Score,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
		UpdatedAt:  rv.UpdatedAt,
	}
}

func newReviewResps(reviews []review.Review) []reviewResp {
	out := make([]reviewResp, len(reviews))
	for i, rv := range reviews {
		out[i] = newReviewResp(rv)
	}
	return out
}

type paginationResp struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type listResp struct {
	Items      []reviewResp   `json:"items"`
	Pagination paginationResp `json:"pagination"`
	Mine       *reviewResp    `json:"mine,omitempty"`
}

func (h *handler) newListResp(out review.ListOutput) listResp {
	var mine *reviewResp
	if out.Mine != nil {
		r := newReviewResp(*out.Mine)
		mine = &r
	}
	return listResp{
		Mine:  mine,
		Items: newReviewResps(out.Reviews),
		Pagination: paginationResp{
			Page:       out.Page,
			PageSize:   out.PageSize,
			TotalItems: out.TotalItems,
			TotalPages: out.TotalPages,
		},
	}
}
