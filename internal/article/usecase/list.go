package usecase

import (
	"context"

	"laptopxplorer/internal/article"
	repo "laptopxplorer/internal/article/repository"
	"laptopxplorer/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, input article.ListInput) (article.ListOutput, error) {
	page := min(max(1, input.Page), article.MaxPage)
	size := article.DefaultPageSize

	articles, total, err := uc.repo.ListArticles(ctx, repo.ListArticlesOptions{
		PublishedOnly: true,
		Limit:         size,
		Offset:        (page - 1) * size,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListArticles: %v", err)
		return article.ListOutput{}, err
	}

	return article.ListOutput{
		Articles:   articles,
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: max(1, (total+size-1)/size),
	}, nil
}

// Detail returns ErrArticleNotFound for unknown slugs and for drafts.
func (uc *implUseCase) Detail(ctx context.Context, slug string) (article.Article, error) {
	a, err := uc.repo.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: slug, PublishedOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneArticle: %v", err)
		return article.Article{}, err
	}
	if a.ID == "" {
		return article.Article{}, article.ErrArticleNotFound
	}

	if err := uc.repo.IncrementViews(ctx, a.ID); err != nil {
		uc.l.Warnf(ctx, "uc.Detail IncrementViews: %v", err)
	} else {
		a.Views++
	}
	return a, nil
}

// FeaturedArticles returns up to limit published featured articles, newest
// first.
func (uc *implUseCase) FeaturedArticles(ctx context.Context, limit int) ([]model.ArticleCard, error) {
	if limit <= 0 {
		return []model.ArticleCard{}, nil
	}

	articles, _, err := uc.repo.ListArticles(ctx, repo.ListArticlesOptions{
		PublishedOnly: true,
		FeaturedOnly:  true,
		Limit:         limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FeaturedArticles ListArticles: %v", err)
		return nil, err
	}

	cards := make([]model.ArticleCard, len(articles))
	for i, a := range articles {
		cards[i] = a.Card()
	}
	return cards, nil
}

// Published returns every published article, newest first.
func (uc *implUseCase) Published(ctx context.Context) ([]article.Article, error) {
	articles, _, err := uc.repo.ListArticles(ctx, repo.ListArticlesOptions{PublishedOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Published ListArticles: %v", err)
		return nil, err
	}
	return articles, nil
}
