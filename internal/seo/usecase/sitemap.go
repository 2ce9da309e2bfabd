package usecase

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/seo"
)

const (
	freqWeekly  = "weekly"
	freqMonthly = "monthly"
)

var staticPages = []string{"/", "/laptops", "/about", "/contact"}

// Sitemap lists static pages, in-stock laptops (newest first), brands,
// category listings and published articles (newest first).
func (uc *implUseCase) Sitemap(ctx context.Context) (seo.URLSet, error) {
	laptops, err := uc.catalog.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sitemap All: %v", err)
		return seo.URLSet{}, err
	}
	brands, err := uc.catalog.Brands(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sitemap Brands: %v", err)
		return seo.URLSet{}, err
	}
	categories, err := uc.catalog.Categories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sitemap Categories: %v", err)
		return seo.URLSet{}, err
	}

	set := seo.URLSet{Xmlns: seo.SitemapNamespace}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, seo.SitemapURL{Loc: uc.url(p), ChangeFreq: freqMonthly, Priority: "0.5"})
	}

	// The snapshot is shared; sort a copy.
	laptops = slices.Clone(laptops)
	slices.SortStableFunc(laptops, func(a, b laptop.Laptop) int { return b.CreatedAt.Compare(a.CreatedAt) })
	for _, lp := range laptops {
		if !lp.InStock {
			continue
		}
		set.URLs = append(set.URLs, seo.SitemapURL{
			Loc:        uc.url("/laptops/" + lp.Slug),
			LastMod:    lp.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: freqWeekly,
			Priority:   "0.9",
		})
	}

	for _, b := range brands {
		set.URLs = append(set.URLs, seo.SitemapURL{Loc: uc.url("/brands/" + b.Slug), ChangeFreq: freqMonthly, Priority: "0.7"})
	}
	for _, c := range categories {
		set.URLs = append(set.URLs, seo.SitemapURL{
			Loc:        uc.url("/laptops?category=" + url.QueryEscape(c.ID)),
			ChangeFreq: freqWeekly,
			Priority:   "0.8",
		})
	}

	if uc.articles != nil {
		articles, err := uc.articles.Published(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Sitemap Published: %v", err)
			return seo.URLSet{}, err
		}
		for _, a := range articles {
			set.URLs = append(set.URLs, seo.SitemapURL{
				Loc:        uc.url("/articles/" + a.Slug),
				LastMod:    a.UpdatedAt.UTC().Format("2006-01-02"),
				ChangeFreq: freqMonthly,
				Priority:   "0.6",
			})
		}
	}
	return set, nil
}

// Robots allows every crawler everywhere except account pages.
func (uc *implUseCase) Robots(_ context.Context) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/v1/me/\n")
	fmt.Fprintf(&b, "\nSitemap: %s\n", uc.url("/sitemap.xml"))
	return b.String()
}
