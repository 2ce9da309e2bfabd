package repository

type CreateArticleOptions struct {
	Title      string
	Slug       string
	LaptopID   string
	AuthorName string
	AuthorBio  string
	Excerpt    string
	Content    string
	ReadTime   int
	Published  bool
	Featured   bool
}

type GetOneArticleOptions struct {
	Slug          string
	PublishedOnly bool
}

// ListArticlesOptions filters articles, newest first. Limit <= 0 means no
// limit.
type ListArticlesOptions struct {
	PublishedOnly bool
	FeaturedOnly  bool
	Limit         int
	Offset        int
}
