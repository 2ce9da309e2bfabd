package usecase

import (
	"context"
	"fmt"
	"strings"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/seo"
)

var keywordTail = []string{"laptop review", "laptop specs", "buy laptop"}

// Meta builds the page metadata and schema.org Product data for a laptop.
func (uc *implUseCase) Meta(ctx context.Context, slug string) (seo.Meta, error) {
	lp, err := uc.catalog.GetBySlug(ctx, slug)
	if err != nil {
		return seo.Meta{}, err
	}

	title := fmt.Sprintf("%s %s - Specs, Price & Reviews | %s", lp.BrandName, lp.Name, uc.cfg.SiteName)
	description := describe(lp)
	canonical := uc.url("/laptops/" + lp.Slug)

	jsonLD, err := uc.product(ctx, lp, description, canonical)
	if err != nil {
		return seo.Meta{}, err
	}

	return seo.Meta{
		Title:        title,
		Description:  description,
		Keywords:     keywords(lp),
		CanonicalURL: canonical,
		OpenGraph: seo.OpenGraph{
			Type:        "product",
			Title:       title,
			Description: description,
			URL:         canonical,
			Image:       lp.ImageURL,
			SiteName:    uc.cfg.SiteName,
		},
		Twitter: seo.TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Image:       lp.ImageURL,
		},
		JSONLD: jsonLD,
	}, nil
}

// describe falls back to a spec summary when the laptop has no description.
func describe(lp laptop.Laptop) string {
	desc := strings.TrimSpace(lp.Description)
	if desc == "" {
		parts := []string{fmt.Sprintf("%s %s laptop", lp.BrandName, lp.Name)}
		if lp.ProcessorName != "" {
			parts = append(parts, lp.ProcessorName)
		}
		parts = append(parts,
			fmt.Sprintf("%dGB RAM", lp.RAMSize),
			strings.TrimSpace(fmt.Sprintf("%dGB %s", lp.StorageSize, lp.StorageType)),
			fmt.Sprintf("%.1f\" display", lp.DisplaySize),
		)
		desc = strings.Join(parts, ", ") + ". Price $" + lp.Price.StringFixed(2) + "."
	}
	return truncate(desc, seo.MaxDescriptionLength)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func keywords(lp laptop.Laptop) string {
	candidates := []string{
		lp.BrandName,
		lp.Name,
		lp.CategoryName,
		lp.ProcessorName,
		fmt.Sprintf("%dGB RAM", lp.RAMSize),
		lp.StorageType,
		lp.OperatingSystem,
	}
	candidates = append(candidates, keywordTail...)

	out := make([]string, 0, len(candidates))
	for _, k := range candidates {
		if k != "" {
			out = append(out, k)
		}
	}
	return strings.Join(out, ", ")
}

func (uc *implUseCase) product(ctx context.Context, lp laptop.Laptop, description, url string) (map[string]any, error) {
	availability := "https://schema.org/OutOfStock"
	if lp.InStock {
		availability = "https://schema.org/InStock"
	}

	data := map[string]any{
		"@context":    "https://schema.org/",
		"@type":       "Product",
		"name":        lp.Name,
		"description": description,
		"image":       nilIfEmpty(lp.ImageURL),
		"sku":         nilIfEmpty(lp.ModelNumber),
		"category":    nilIfEmpty(lp.CategoryName),
		"brand": map[string]any{
			"@type": "Brand",
			"name":  lp.BrandName,
		},
		"offers": map[string]any{
			"@type":         "Offer",
			"url":           url,
			"price":         lp.Price.StringFixed(2),
			"priceCurrency": uc.cfg.Currency,
			"availability":  availability,
		},
		"aggregateRating": nil,
	}

	if uc.ratings != nil {
		summary, err := uc.ratings.Summary(ctx, lp.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.product Summary: %v", err)
			return nil, err
		}
		if summary.Count > 0 {
			data["aggregateRating"] = map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": summary.Average,
				"reviewCount": summary.Count,
				"bestRating":  5,
				"worstRating": 1,
			}
		}
	}

	return compact(data), nil
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// compact drops nil values, descending into nested objects.
func compact(m map[string]any) map[string]any {
	for k, v := range m {
		switch vv := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			m[k] = compact(vv)
		}
	}
	return m
}
