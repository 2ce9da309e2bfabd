package article

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrDuplicateSlug   = errors.New("an article with this slug already exists")
	ErrInvalidTitle    = errors.New("title is required and must be at most 200 characters")
	ErrInvalidSlug     = errors.New("slug must contain a letter or digit")
	ErrExcerptTooLong  = errors.New("excerpt is too long")
	ErrInvalidReadTime = errors.New("read time cannot be negative")
	ErrMissingIdentity = errors.New("user identity is required")
	ErrForbidden       = errors.New("only admins can publish articles")
)
