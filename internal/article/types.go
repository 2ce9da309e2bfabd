package article

import (
	"time"

	"laptopxplorer/internal/model"
)

const (
	DefaultPageSize = 9
	// MaxPage bounds the requested page so the row offset cannot overflow.
	MaxPage = 10000

	MaxTitleLength   = 200
	MaxExcerptLength = 500
	WordsPerMinute   = 200
)

// Article is an editorial piece, usually a review of one laptop. Drafts are
// stored but never served.
type Article struct {
	ID         string
	Title      string
	Slug       string
	LaptopID   string
	LaptopName string
	LaptopSlug string
	AuthorName string
	AuthorBio  string
	Excerpt    string
	Content    string
	ReadTime   int // minutes
	Published  bool
	Featured   bool
	Views      int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Card returns the teaser shown on other pages.
func (a Article) Card() model.ArticleCard {
	return model.ArticleCard{
		Title:      a.Title,
		Slug:       a.Slug,
		Excerpt:    a.Excerpt,
		AuthorName: a.AuthorName,
		ReadTime:   a.ReadTime,
		CreatedAt:  a.CreatedAt,
	}
}

// --- UseCase Inputs ---

type ListInput struct {
	Page int
}

// CreateInput describes a new article. Slug defaults to the title and
// ReadTime to an estimate from the content length.
type CreateInput struct {
	Title      string
	Slug       string
	LaptopSlug string
	AuthorName string
	AuthorBio  string
	Excerpt    string
	Content    string
	ReadTime   int
	Published  bool
	Featured   bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Articles   []Article
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}
