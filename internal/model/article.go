package model

import "time"

// ArticleCard is the teaser of a published article shown outside the
// article pages.
type ArticleCard struct {
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	AuthorName string    `json:"author_name"`
	ReadTime   int       `json:"read_time"`
	CreatedAt  time.Time `json:"created_at"`
}
