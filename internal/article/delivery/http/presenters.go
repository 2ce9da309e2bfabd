package http

import (
	"time"

	"laptopxplorer/internal/article"
)

// --- Request DTOs ---

type listReq struct {
	Page int `form:"page"`
}

func (r listReq) toInput() article.ListInput {
	return article.ListInput{Page: r.Page}
}

type createReq struct {
	Title      string `json:"title"       binding:"required"`
	Slug       string `json:"slug"`
	LaptopSlug string `json:"laptop_slug"`
	AuthorName string `json:"author_name"`
	AuthorBio  string `json:"author_bio"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	ReadTime   int    `json:"read_time"`
	Published  bool   `json:"published"`
	Featured   bool   `json:"featured"`
}

func (r createReq) toInput() article.CreateInput {
	return article.CreateInput{
		Title:      r.Title,
		Slug:       r.Slug,
		LaptopSlug: r.LaptopSlug,
		AuthorName: r.AuthorName,
		AuthorBio:  r.AuthorBio,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		ReadTime:   r.ReadTime,
		Published:  r.Published,
		Featured:   r.Featured,
	}
}

// --- Response DTOs ---

type laptopRefResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newLaptopRef(a article.Article) *laptopRefResp {
	if a.LaptopID == "" {
		return nil
	}
	return &laptopRefResp{ID: a.LaptopID, Name: a.LaptopName, Slug: a.LaptopSlug}
}

// articleSummaryResp is a list entry; it leaves out the body.
type articleSummaryResp struct {
	Title      string         `json:"title"`
	Slug       string         `json:"slug"`
	Excerpt    string         `json:"excerpt"`
	AuthorName string         `json:"author_name"`
	ReadTime   int            `json:"read_time"`
	Featured   bool           `json:"featured"`
	Laptop     *laptopRefResp `json:"laptop,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type articleResp struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Slug       string         `json:"slug"`
	Excerpt    string         `json:"excerpt"`
	Content    string         `json:"content"`
	AuthorName string         `json:"author_name"`
	AuthorBio  string         `json:"author_bio"`
	ReadTime   int            `json:"read_time"`
	Published  bool           `json:"published"`
	Featured   bool           `json:"featured"`
	Views      int64          `json:"views"`
	Laptop     *laptopRefResp `json:"laptop,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func newArticleResp(a article.Article) articleResp {
	return articleResp{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Excerpt:    a.Excerpt,
		Content:    a.Content,
		AuthorName: a.AuthorName,
		AuthorBio:  a.AuthorBio,
		ReadTime:   a.ReadTime,
		Published:  a.Published,
		Featured:   a.Featured,
		Views:      a.Views,
		Laptop:     newLaptopRef(a),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type listResp struct {
	Articles   []articleSummaryResp `json:"articles"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalItems int                  `json:"total_items"`
	TotalPages int                  `json:"total_pages"`
}

func newListResp(out article.ListOutput) listResp {
	items := make([]articleSummaryResp, len(out.Articles))
	for i, a := range out.Articles {
		items[i] = articleSummaryResp{
			Title:      a.Title,
			Slug:       a.Slug,
			Excerpt:    a.Excerpt,
			AuthorName: a.AuthorName,
			ReadTime:   a.ReadTime,
			Featured:   a.Featured,
			Laptop:     newLaptopRef(a),
			CreatedAt:  a.CreatedAt,
		}
	}
	return listResp{
		Articles:   items,
		Page:       out.Page,
		PageSize:   out.PageSize,
		TotalItems: out.TotalItems,
		TotalPages: out.TotalPages,
	}
}
