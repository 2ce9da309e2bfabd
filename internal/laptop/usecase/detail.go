package usecase

import (
	"context"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/catalog"
)

// Detail returns a laptop with its rating summary and related laptops, and
// counts the view. Returns ErrLaptopNotFound when the slug is unknown.
func (uc *implUseCase) Detail(ctx context.Context, slug string) (laptop.DetailOutput, error) {
	lp, err := uc.GetBySlug(ctx, slug)
	if err != nil {
		return laptop.DetailOutput{}, err
	}

	if err := uc.repo.IncrementViews(ctx, lp.ID); err != nil {
		// A lost view is not worth failing the page.
		uc.l.Warnf(ctx, "uc.Detail IncrementViews: %v", err)
	} else {
		lp.Views++
	}

	rating := model.EmptyRatingSummary()
	if uc.ratings != nil {
		rating, err = uc.ratings.Summary(ctx, lp.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Detail Summary: %v", err)
			return laptop.DetailOutput{}, err
		}
	}

	related, err := uc.related(ctx, lp)
	if err != nil {
		return laptop.DetailOutput{}, err
	}

	return laptop.DetailOutput{Laptop: lp, Rating: rating, Related: related}, nil
}

// related returns in-stock laptops of the same category, newest first.
func (uc *implUseCase) related(ctx context.Context, lp laptop.Laptop) ([]laptop.Laptop, error) {
	if lp.CategoryID == "" {
		return []laptop.Laptop{}, nil
	}

	laptops, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	items, byID := index(laptops)
	matched := catalog.Filter(items, func(it catalog.Item) bool {
		return it.CategoryID == lp.CategoryID && it.InStock && it.ID != lp.ID
	})
	matched = catalog.Sort(matched, catalog.DefaultSort)
	if len(matched) > relatedLimit {
		matched = matched[:relatedLimit]
	}
	return resolve(matched, byID), nil
}

// GetBySlug returns ErrLaptopNotFound when the slug is unknown.
func (uc *implUseCase) GetBySlug(ctx context.Context, slug string) (laptop.Laptop, error) {
	lp, err := uc.repo.GetOneLaptop(ctx, repo.GetOneLaptopOptions{Slug: slug})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetBySlug GetOneLaptop: %v", err)
		return laptop.Laptop{}, err
	}
	if lp.ID == "" {
		return laptop.Laptop{}, laptop.ErrLaptopNotFound
	}
	return lp, nil
}

// GetByIDs returns the laptops among ids in the order of ids, skipping
// unknown ones.
func (uc *implUseCase) GetByIDs(ctx context.Context, ids []string) ([]laptop.Laptop, error) {
	laptops, err := uc.repo.GetLaptopsByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByIDs GetLaptopsByIDs: %v", err)
		return nil, err
	}

	byID := make(map[string]laptop.Laptop, len(laptops))
	for _, lp := range laptops {
		byID[lp.ID] = lp
	}
	out := make([]laptop.Laptop, 0, len(ids))
	for _, id := range ids {
		if lp, ok := byID[id]; ok {
			out = append(out, lp)
		}
	}
	return out, nil
}

// Compare returns between two and the configured maximum of distinct
// laptops in request order. Any unknown id yields ErrLaptopNotFound.
func (uc *implUseCase) Compare(ctx context.Context, ids []string) ([]laptop.Laptop, error) {
	ids = dedupe(ids)
	if len(ids) < minCompare || len(ids) > uc.cfg.CompareLimit {
		return nil, laptop.ErrCompareCount
	}

	laptops, err := uc.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(laptops) != len(ids) {
		return nil, laptop.ErrLaptopNotFound
	}
	return laptops, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
