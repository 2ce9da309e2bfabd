package usecase

import (
	"context"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/pkg/catalog"
)

// List runs a faceted catalog query over the cached snapshot.
func (uc *implUseCase) List(ctx context.Context, input laptop.ListInput) (laptop.ListOutput, error) {
	laptops, err := uc.snapshot(ctx)
	if err != nil {
		return laptop.ListOutput{}, err
	}
	return uc.query(laptops, input.Selection), nil
}

func (uc *implUseCase) query(laptops []laptop.Laptop, sel catalog.Selection) laptop.ListOutput {
	items, byID := index(laptops)
	result := catalog.Query(items, sel, uc.cfg.PageSize)
	return laptop.ListOutput{
		Laptops: resolve(result.Page.Items, byID),
		Result:  result,
	}
}

// Autocomplete suggests up to the configured number of laptops whose name,
// brand, model number, processor or description contains query. Queries
// shorter than two characters yield no suggestions.
func (uc *implUseCase) Autocomplete(ctx context.Context, query string) ([]laptop.Suggestion, error) {
	if len([]rune(query)) < minAutocompleteLength {
		return []laptop.Suggestion{}, nil
	}

	laptops, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	items, byID := index(laptops)
	matched := catalog.Sort(catalog.Filter(items, catalog.Compile(catalog.Selection{Query: query})), catalog.SortNameAsc)
	if len(matched) > uc.cfg.AutocompleteLimit {
		matched = matched[:uc.cfg.AutocompleteLimit]
	}

	suggestions := make([]laptop.Suggestion, 0, len(matched))
	for _, lp := range resolve(matched, byID) {
		suggestions = append(suggestions, laptop.Suggestion{Name: lp.Name, Slug: lp.Slug, Brand: lp.BrandName})
	}
	return suggestions, nil
}
