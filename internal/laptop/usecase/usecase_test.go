package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/cache"
	"laptopxplorer/pkg/catalog"
	"laptopxplorer/pkg/log"
)

func newTestUseCase(r *fakeRepo) *implUseCase {
	return New(r, log.NewNop(), cache.NewMemory[[]laptop.Laptop](4, time.Minute), Config{PageSize: 2})
}

func slugs(laptops []laptop.Laptop) []string {
	out := make([]string, len(laptops))
	for i, lp := range laptops {
		out[i] = lp.Slug
	}
	return out
}

func TestList_UsesCachedSnapshot(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{
		sampleLaptop("1", func(l *laptop.Laptop) { l.Price = decimal.NewFromInt(300) }),
		sampleLaptop("2", func(l *laptop.Laptop) { l.Price = decimal.NewFromInt(100) }),
		sampleLaptop("3", func(l *laptop.Laptop) { l.Price = decimal.NewFromInt(200) }),
	}
	uc := newTestUseCase(r)
	ctx := context.Background()

	out, err := uc.List(ctx, laptop.ListInput{Selection: catalog.Selection{Sort: catalog.SortPriceAsc, Page: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"laptop-2", "laptop-3"}, slugs(out.Laptops))
	assert.Equal(t, 3, out.Result.Page.TotalItems)
	assert.Equal(t, 2, out.Result.Page.TotalPages)

	_, err = uc.List(ctx, laptop.ListInput{Selection: catalog.Selection{Page: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1, r.listCalls)

	uc.InvalidateSnapshot(ctx)
	_, err = uc.List(ctx, laptop.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, r.listCalls)
}

func TestSnapshot_InvalidatedDuringLoadIsNotCached(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{sampleLaptop("1")}
	uc := newTestUseCase(r)
	ctx := context.Background()

	// A price update lands while the first load is reading rows.
	r.onList = func() {
		r.onList = nil
		r.laptops[0].Price = decimal.NewFromInt(1)
		uc.InvalidateSnapshot(ctx)
	}
	_, err := uc.All(ctx)
	require.NoError(t, err)

	all, err := uc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, r.listCalls)
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].Price.String())

	_, err = uc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, r.listCalls, "a load without overlapping invalidation is cached")
}

func TestList_RepositoryError(t *testing.T) {
	r := newFakeRepo()
	r.listErr = errors.New("db down")
	uc := newTestUseCase(r)

	_, err := uc.List(context.Background(), laptop.ListInput{})
	assert.Error(t, err)
}

func TestDetail(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{
		sampleLaptop("main"),
		sampleLaptop("r1"),
		sampleLaptop("r2"),
		sampleLaptop("r3"),
		sampleLaptop("r4"),
		sampleLaptop("r5"),
		sampleLaptop("gone", func(l *laptop.Laptop) { l.InStock = false }),
		sampleLaptop("gaming", func(l *laptop.Laptop) { l.CategoryID = "c-gaming" }),
	}
	uc := newTestUseCase(r)
	summary := model.RatingSummary{Average: 4.5, Count: 2, Distribution: map[int]int{4: 1, 5: 1}}
	uc.SetRatingProvider(fakeRatings{summary: summary})
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Detail(ctx, "missing")
		assert.ErrorIs(t, err, laptop.ErrLaptopNotFound)
	})

	t.Run("found", func(t *testing.T) {
		out, err := uc.Detail(ctx, "laptop-main")
		require.NoError(t, err)
		assert.Equal(t, "main", out.Laptop.ID)
		assert.EqualValues(t, 1, out.Laptop.Views)
		assert.Equal(t, 1, r.views["main"])
		assert.Equal(t, summary, out.Rating)

		require.Len(t, out.Related, 4)
		for _, rel := range out.Related {
			assert.NotEqual(t, "main", rel.ID)
			assert.NotEqual(t, "gone", rel.ID)
			assert.NotEqual(t, "gaming", rel.ID)
		}
	})
}

func TestDetail_WithoutRatingProvider(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{sampleLaptop("1", func(l *laptop.Laptop) { l.CategoryID = "" })}
	uc := newTestUseCase(r)

	out, err := uc.Detail(context.Background(), "laptop-1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rating.Count)
	assert.Len(t, out.Rating.Distribution, 5)
	assert.Empty(t, out.Related)
}

func TestAutocomplete(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{
		sampleLaptop("1", func(l *laptop.Laptop) { l.Name = "XPS 13" }),
		sampleLaptop("2", func(l *laptop.Laptop) { l.Name = "XPS 15" }),
		sampleLaptop("3", func(l *laptop.Laptop) { l.Name = "MacBook Air"; l.BrandName = "Apple" }),
	}
	uc := newTestUseCase(r)
	uc.cfg.AutocompleteLimit = 1
	ctx := context.Background()

	got, err := uc.Autocomplete(ctx, "x")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = uc.Autocomplete(ctx, "xps")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, laptop.Suggestion{Name: "XPS 13", Slug: "laptop-1", Brand: "Dell"}, got[0])

	got, err = uc.Autocomplete(ctx, "APPLE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MacBook Air", got[0].Name)
}

func TestCompare(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{sampleLaptop("1"), sampleLaptop("2"), sampleLaptop("3"), sampleLaptop("4"), sampleLaptop("5")}
	uc := newTestUseCase(r)
	ctx := context.Background()

	got, err := uc.Compare(ctx, []string{"3", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"laptop-3", "laptop-1", "laptop-2"}, slugs(got))

	tests := []struct {
		name string
		ids  []string
		want error
	}{
		{"one", []string{"1"}, laptop.ErrCompareCount},
		{"duplicates collapse", []string{"1", "1"}, laptop.ErrCompareCount},
		{"five", []string{"1", "2", "3", "4", "5"}, laptop.ErrCompareCount},
		{"unknown id", []string{"1", "nope"}, laptop.ErrLaptopNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Compare(ctx, tc.ids)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBrandDetail(t *testing.T) {
	r := newFakeRepo()
	r.brands = []laptop.Brand{{ID: "b-dell", Name: "Dell", Slug: "dell"}, {ID: "b-hp", Name: "HP", Slug: "hp"}}
	r.laptops = []laptop.Laptop{
		sampleLaptop("1"),
		sampleLaptop("2", func(l *laptop.Laptop) { l.BrandID = "b-hp" }),
	}
	uc := newTestUseCase(r)
	ctx := context.Background()

	_, err := uc.BrandDetail(ctx, laptop.BrandDetailInput{Slug: "acer"})
	assert.ErrorIs(t, err, laptop.ErrBrandNotFound)

	// A brand filter in the request cannot widen the brand page.
	out, err := uc.BrandDetail(ctx, laptop.BrandDetailInput{
		Slug:      "dell",
		Selection: catalog.Selection{BrandIDs: []string{"b-hp"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dell", out.Brand.Name)
	assert.Equal(t, []string{"laptop-1"}, slugs(out.List.Laptops))
}

func TestHome(t *testing.T) {
	r := newFakeRepo()
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		r.laptops = append(r.laptops, sampleLaptop(id, func(l *laptop.Laptop) {
			l.CreatedAt = epoch.Add(time.Duration(i) * time.Hour)
			l.InStock = id != "h"
		}))
	}
	for i := 0; i < 10; i++ {
		r.brands = append(r.brands, laptop.Brand{ID: string(rune('0' + i))})
	}
	r.categories = []laptop.Category{{ID: "c-business", Name: "Business"}}
	uc := newTestUseCase(r)

	out, err := uc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"laptop-g", "laptop-f", "laptop-e", "laptop-d", "laptop-c", "laptop-b"}, slugs(out.Featured))
	assert.Len(t, out.Brands, 8)
	assert.Len(t, out.Categories, 1)
	assert.Empty(t, out.FeaturedArticles)

	articles := &fakeArticles{cards: []model.ArticleCard{{Slug: "macbook-air-m2-review"}}}
	uc.SetArticleProvider(articles)
	out, err = uc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, articles.limit)
	require.Len(t, out.FeaturedArticles, 1)
	assert.Equal(t, "macbook-air-m2-review", out.FeaturedArticles[0].Slug)

	articles.err = errors.New("boom")
	_, err = uc.Home(context.Background())
	assert.Error(t, err)
}

func TestUpdatePrice(t *testing.T) {
	r := newFakeRepo()
	r.laptops = []laptop.Laptop{sampleLaptop("1")}
	uc := newTestUseCase(r)
	ctx := context.Background()

	assert.ErrorIs(t, uc.UpdatePrice(ctx, "1", decimal.NewFromInt(-1)), laptop.ErrInvalidPrice)

	_, err := uc.List(ctx, laptop.ListInput{})
	require.NoError(t, err)
	require.NoError(t, uc.UpdatePrice(ctx, "1", decimal.NewFromInt(750)))

	out, err := uc.List(ctx, laptop.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, r.listCalls)
	assert.True(t, decimal.NewFromInt(750).Equal(out.Laptops[0].Price))
}

func TestCreateLaptop(t *testing.T) {
	r := newFakeRepo()
	uc := newTestUseCase(r)
	ctx := context.Background()

	brand, err := uc.CreateBrand(ctx, laptop.CreateBrandInput{Name: "ASUS"})
	require.NoError(t, err)
	again, err := uc.CreateBrand(ctx, laptop.CreateBrandInput{Name: "ASUS"})
	require.NoError(t, err)
	assert.Equal(t, brand.ID, again.ID)

	input := laptop.CreateLaptopInput{
		Name: "Zenbook 14 OLED", BrandID: brand.ID,
		RAMSize: 16, StorageSize: 1024, DisplaySize: 14, Weight: 1.2,
		Price: decimal.NewFromInt(1099), InStock: true,
	}
	lp, err := uc.CreateLaptop(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "asus-zenbook-14-oled", lp.Slug)

	_, err = uc.CreateLaptop(ctx, input)
	assert.ErrorIs(t, err, laptop.ErrDuplicateSlug)

	bad := input
	bad.RAMSize = 0
	_, err = uc.CreateLaptop(ctx, bad)
	assert.ErrorIs(t, err, laptop.ErrInvalidPayload)

	bad = input
	bad.BrandID = "unknown"
	_, err = uc.CreateLaptop(ctx, bad)
	assert.ErrorIs(t, err, laptop.ErrBrandNotFound)
}
