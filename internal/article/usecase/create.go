package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"laptopxplorer/internal/article"
	repo "laptopxplorer/internal/article/repository"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/slugify"
)

// Create stores a new article. Only admins may create articles.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input article.CreateInput) (article.Article, error) {
	if sc.UserID == "" {
		return article.Article{}, article.ErrMissingIdentity
	}
	if !sc.IsAdmin() {
		return article.Article{}, article.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > article.MaxTitleLength {
		return article.Article{}, article.ErrInvalidTitle
	}
	excerpt := strings.TrimSpace(input.Excerpt)
	if utf8.RuneCountInString(excerpt) > article.MaxExcerptLength {
		return article.Article{}, article.ErrExcerptTooLong
	}
	if input.ReadTime < 0 {
		return article.Article{}, article.ErrInvalidReadTime
	}

	slug := slugify.Make(input.Slug)
	if strings.TrimSpace(input.Slug) == "" {
		slug = slugify.Make(title)
	}
	if slug == "" {
		return article.Article{}, article.ErrInvalidSlug
	}

	var laptopID string
	if input.LaptopSlug != "" {
		lp, err := uc.laptops.GetBySlug(ctx, input.LaptopSlug)
		if err != nil {
			return article.Article{}, err
		}
		laptopID = lp.ID
	}

	readTime := input.ReadTime
	if readTime == 0 {
		readTime = estimateReadTime(input.Content)
	}

	a, err := uc.repo.CreateArticle(ctx, repo.CreateArticleOptions{
		Title:      title,
		Slug:       slug,
		LaptopID:   laptopID,
		AuthorName: strings.TrimSpace(input.AuthorName),
		AuthorBio:  strings.TrimSpace(input.AuthorBio),
		Excerpt:    excerpt,
		Content:    input.Content,
		ReadTime:   readTime,
		Published:  input.Published,
		Featured:   input.Featured,
	})
	if err == repo.ErrDuplicate {
		return article.Article{}, article.ErrDuplicateSlug
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateArticle: %v", err)
		return article.Article{}, err
	}
	return a, nil
}
