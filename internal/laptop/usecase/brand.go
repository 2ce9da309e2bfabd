package usecase

import (
	"context"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/catalog"
)

// Brands returns every brand with its laptop count.
func (uc *implUseCase) Brands(ctx context.Context) ([]laptop.Brand, error) {
	brands, err := uc.repo.ListBrands(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Brands ListBrands: %v", err)
		return nil, err
	}
	return brands, nil
}

// BrandDetail returns a brand and its laptops, queried through the engine
// with the brand filter forced on.
func (uc *implUseCase) BrandDetail(ctx context.Context, input laptop.BrandDetailInput) (laptop.BrandDetailOutput, error) {
	brand, err := uc.repo.GetOneBrand(ctx, repo.GetOneBrandOptions{Slug: input.Slug})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BrandDetail GetOneBrand: %v", err)
		return laptop.BrandDetailOutput{}, err
	}
	if brand.ID == "" {
		return laptop.BrandDetailOutput{}, laptop.ErrBrandNotFound
	}

	laptops, err := uc.snapshot(ctx)
	if err != nil {
		return laptop.BrandDetailOutput{}, err
	}

	sel := input.Selection
	sel.BrandIDs = []string{brand.ID}
	return laptop.BrandDetailOutput{Brand: brand, List: uc.query(laptops, sel)}, nil
}

// Categories returns every category with its laptop count.
func (uc *implUseCase) Categories(ctx context.Context) ([]laptop.Category, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Categories ListCategories: %v", err)
		return nil, err
	}
	return categories, nil
}

// Home returns the landing page content: the newest in-stock laptops, the
// first brands by name, all categories and the featured articles.
func (uc *implUseCase) Home(ctx context.Context) (laptop.HomeOutput, error) {
	laptops, err := uc.snapshot(ctx)
	if err != nil {
		return laptop.HomeOutput{}, err
	}

	items, byID := index(laptops)
	featured := catalog.Sort(catalog.Filter(items, func(it catalog.Item) bool { return it.InStock }), catalog.DefaultSort)
	if len(featured) > featuredLimit {
		featured = featured[:featuredLimit]
	}

	brands, err := uc.Brands(ctx)
	if err != nil {
		return laptop.HomeOutput{}, err
	}
	if len(brands) > homeBrandLimit {
		brands = brands[:homeBrandLimit]
	}

	categories, err := uc.Categories(ctx)
	if err != nil {
		return laptop.HomeOutput{}, err
	}

	articles := []model.ArticleCard{}
	if uc.articles != nil {
		articles, err = uc.articles.FeaturedArticles(ctx, featuredArticleLimit)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Home FeaturedArticles: %v", err)
			return laptop.HomeOutput{}, err
		}
	}

	return laptop.HomeOutput{
		Featured:         resolve(featured, byID),
		Brands:           brands,
		Categories:       categories,
		FeaturedArticles: articles,
	}, nil
}
