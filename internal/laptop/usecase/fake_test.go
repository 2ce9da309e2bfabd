package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/internal/model"
)

// fakeRepo is an in-memory repository.Repository.
type fakeRepo struct {
	laptops    []laptop.Laptop
	brands     []laptop.Brand
	categories []laptop.Category
	processors []laptop.Processor

	listCalls int
	views     map[string]int
	listErr   error
	// onList runs after ListLaptops has read its rows.
	onList func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{views: map[string]int{}}
}

func (f *fakeRepo) ListLaptops(_ context.Context, opt repo.ListLaptopsOptions) ([]laptop.Laptop, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []laptop.Laptop
	for _, lp := range f.laptops {
		if opt.InStockOnly && !lp.InStock {
			continue
		}
		out = append(out, lp)
	}
	if f.onList != nil {
		f.onList()
	}
	return out, nil
}

func (f *fakeRepo) GetOneLaptop(_ context.Context, opt repo.GetOneLaptopOptions) (laptop.Laptop, error) {
	for _, lp := range f.laptops {
		if (opt.ID == "" || lp.ID == opt.ID) && (opt.Slug == "" || lp.Slug == opt.Slug) {
			return lp, nil
		}
	}
	return laptop.Laptop{}, nil
}

func (f *fakeRepo) GetLaptopsByIDs(_ context.Context, ids []string) ([]laptop.Laptop, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []laptop.Laptop
	// Reverse order so callers cannot rely on the store's ordering.
	for i := len(f.laptops) - 1; i >= 0; i-- {
		if want[f.laptops[i].ID] {
			out = append(out, f.laptops[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateLaptop(_ context.Context, opt repo.CreateLaptopOptions) (laptop.Laptop, error) {
	lp := laptop.Laptop{
		ID:      fmt.Sprintf("l%d", len(f.laptops)+1),
		Name:    opt.Name,
		Slug:    opt.Slug,
		BrandID: opt.BrandID,
		Price:   opt.Price,
		InStock: opt.InStock,
	}
	f.laptops = append(f.laptops, lp)
	return lp, nil
}

func (f *fakeRepo) UpdatePrice(_ context.Context, opt repo.UpdatePriceOptions) error {
	for i := range f.laptops {
		if f.laptops[i].ID == opt.ID {
			f.laptops[i].Price = opt.Price
		}
	}
	return nil
}

func (f *fakeRepo) IncrementViews(_ context.Context, id string) error {
	f.views[id]++
	return nil
}

func (f *fakeRepo) ListBrands(context.Context) ([]laptop.Brand, error) {
	return f.brands, nil
}

func (f *fakeRepo) GetOneBrand(_ context.Context, opt repo.GetOneBrandOptions) (laptop.Brand, error) {
	for _, b := range f.brands {
		if (opt.ID == "" || b.ID == opt.ID) && (opt.Slug == "" || b.Slug == opt.Slug) && (opt.Name == "" || b.Name == opt.Name) {
			return b, nil
		}
	}
	return laptop.Brand{}, nil
}

func (f *fakeRepo) CreateBrand(_ context.Context, opt repo.CreateBrandOptions) (laptop.Brand, error) {
	b := laptop.Brand{ID: "b-" + opt.Slug, Name: opt.Name, Slug: opt.Slug}
	f.brands = append(f.brands, b)
	return b, nil
}

func (f *fakeRepo) ListCategories(context.Context) ([]laptop.Category, error) {
	return f.categories, nil
}

func (f *fakeRepo) GetOneCategory(_ context.Context, opt repo.GetOneCategoryOptions) (laptop.Category, error) {
	for _, c := range f.categories {
		if (opt.ID == "" || c.ID == opt.ID) && (opt.Slug == "" || c.Slug == opt.Slug) && (opt.Name == "" || c.Name == opt.Name) {
			return c, nil
		}
	}
	return laptop.Category{}, nil
}

func (f *fakeRepo) CreateCategory(_ context.Context, opt repo.CreateCategoryOptions) (laptop.Category, error) {
	c := laptop.Category{ID: "c-" + opt.Slug, Name: opt.Name, Slug: opt.Slug}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeRepo) GetOneProcessor(_ context.Context, opt repo.GetOneProcessorOptions) (laptop.Processor, error) {
	for _, p := range f.processors {
		if (opt.ID == "" || p.ID == opt.ID) && (opt.Name == "" || p.Name == opt.Name) {
			return p, nil
		}
	}
	return laptop.Processor{}, nil
}

func (f *fakeRepo) CreateProcessor(_ context.Context, opt repo.CreateProcessorOptions) (laptop.Processor, error) {
	p := laptop.Processor{ID: fmt.Sprintf("p%d", len(f.processors)+1), Name: opt.Name}
	f.processors = append(f.processors, p)
	return p, nil
}

type fakeRatings struct {
	summary model.RatingSummary
}

func (f fakeRatings) Summary(context.Context, string) (model.RatingSummary, error) {
	return f.summary, nil
}

var epoch = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func sampleLaptop(id string, mods ...func(*laptop.Laptop)) laptop.Laptop {
	lp := laptop.Laptop{
		ID:              id,
		Name:            "Laptop " + id,
		Slug:            "laptop-" + id,
		BrandID:         "b-dell",
		BrandName:       "Dell",
		BrandSlug:       "dell",
		CategoryID:      "c-business",
		CategoryName:    "Business",
		RAMSize:         16,
		StorageSize:     512,
		DisplaySize:     14,
		Weight:          1.4,
		Price:           decimal.NewFromInt(1000),
		GraphicsType:    "integrated",
		OperatingSystem: "Windows 11",
		InStock:         true,
		CreatedAt:       epoch,
	}
	for _, m := range mods {
		m(&lp)
	}
	return lp
}

type fakeArticles struct {
	cards []model.ArticleCard
	limit int
	err   error
}

func (f *fakeArticles) FeaturedArticles(_ context.Context, limit int) ([]model.ArticleCard, error) {
	f.limit = limit
	return f.cards, f.err
}
