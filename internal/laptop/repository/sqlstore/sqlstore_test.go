package sqlstore_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/internal/laptop/repository/sqlstore"
	"laptopxplorer/internal/testutil"
	"laptopxplorer/pkg/log"
)

type fixture struct {
	r         repo.Repository
	brand     laptop.Brand
	category  laptop.Category
	processor laptop.Processor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	r := sqlstore.New(testutil.NewDB(t), log.NewNop())

	brand, err := r.CreateBrand(ctx, repo.CreateBrandOptions{Name: "Lenovo", Slug: "lenovo", Website: "https://lenovo.com"})
	require.NoError(t, err)
	category, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{Name: "Business", Slug: "business"})
	require.NoError(t, err)
	processor, err := r.CreateProcessor(ctx, repo.CreateProcessorOptions{Name: "Intel Core i7-1365U", Brand: "Intel", Cores: 10, Threads: 12, BaseClock: 1.8})
	require.NoError(t, err)

	return fixture{r: r, brand: brand, category: category, processor: processor}
}

func (f fixture) createLaptop(t *testing.T, slug string, price int64, inStock bool) laptop.Laptop {
	t.Helper()
	battery := 12.5
	lp, err := f.r.CreateLaptop(context.Background(), repo.CreateLaptopOptions{
		Name:            "ThinkPad " + slug,
		Slug:            slug,
		BrandID:         f.brand.ID,
		CategoryID:      f.category.ID,
		ProcessorID:     f.processor.ID,
		RAMSize:         16,
		StorageSize:     512,
		StorageType:     "SSD",
		DisplaySize:     14,
		RefreshRate:     60,
		GraphicsType:    "integrated",
		BatteryLife:     &battery,
		Weight:          1.21,
		OperatingSystem: "Windows 11",
		Price:           decimal.NewFromInt(price),
		InStock:         inStock,
	})
	require.NoError(t, err)
	return lp
}

func TestCreateLaptop_JoinsNames(t *testing.T) {
	f := newFixture(t)
	lp := f.createLaptop(t, "x1-carbon", 1899, true)

	assert.NotEmpty(t, lp.ID)
	assert.Equal(t, "Lenovo", lp.BrandName)
	assert.Equal(t, "lenovo", lp.BrandSlug)
	assert.Equal(t, "Business", lp.CategoryName)
	assert.Equal(t, "Intel Core i7-1365U", lp.ProcessorName)
	assert.True(t, decimal.NewFromInt(1899).Equal(lp.Price))
	require.NotNil(t, lp.BatteryLife)
	assert.InDelta(t, 12.5, *lp.BatteryLife, 1e-9)
	assert.True(t, lp.InStock)
	assert.False(t, lp.CreatedAt.IsZero())
}

func TestCreateLaptop_OptionalColumns(t *testing.T) {
	f := newFixture(t)
	lp, err := f.r.CreateLaptop(context.Background(), repo.CreateLaptopOptions{
		Name: "Bare", Slug: "bare", BrandID: f.brand.ID,
		RAMSize: 8, StorageSize: 256, DisplaySize: 13.3, Weight: 1.3,
		Price: decimal.RequireFromString("499.99"),
	})
	require.NoError(t, err)

	assert.Empty(t, lp.CategoryID)
	assert.Empty(t, lp.CategoryName)
	assert.Empty(t, lp.ProcessorName)
	assert.Nil(t, lp.BatteryLife)
	assert.Equal(t, "499.99", lp.Price.StringFixed(2))
}

func TestCreateLaptop_DuplicateSlug(t *testing.T) {
	f := newFixture(t)
	f.createLaptop(t, "dup", 1000, true)

	_, err := f.r.CreateLaptop(context.Background(), repo.CreateLaptopOptions{
		Name: "Other", Slug: "dup", BrandID: f.brand.ID,
		RAMSize: 8, StorageSize: 256, DisplaySize: 13.3, Weight: 1.3,
		Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, repo.ErrDuplicate)
}

func TestGetOneLaptop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createLaptop(t, "t14", 1299, true)

	bySlug, err := f.r.GetOneLaptop(ctx, repo.GetOneLaptopOptions{Slug: "t14"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	missing, err := f.r.GetOneLaptop(ctx, repo.GetOneLaptopOptions{Slug: "nope"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestIncrementViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	lp := f.createLaptop(t, "views", 999, true)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.r.IncrementViews(ctx, lp.ID))
	}

	got, err := f.r.GetOneLaptop(ctx, repo.GetOneLaptopOptions{ID: lp.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Views)
}

func TestUpdatePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	lp := f.createLaptop(t, "price", 999, true)

	require.NoError(t, f.r.UpdatePrice(ctx, repo.UpdatePriceOptions{ID: lp.ID, Price: decimal.RequireFromString("849.50")}))

	got, err := f.r.GetOneLaptop(ctx, repo.GetOneLaptopOptions{ID: lp.ID})
	require.NoError(t, err)
	assert.Equal(t, "849.50", got.Price.StringFixed(2))
}

func TestListLaptops(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createLaptop(t, "a", 1000, true)
	f.createLaptop(t, "b", 1100, false)

	all, err := f.r.ListLaptops(ctx, repo.ListLaptopsOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inStock, err := f.r.ListLaptops(ctx, repo.ListLaptopsOptions{InStockOnly: true})
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, "a", inStock[0].Slug)
}

func TestGetLaptopsByIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createLaptop(t, "a", 1000, true)
	b := f.createLaptop(t, "b", 1100, true)
	f.createLaptop(t, "c", 1200, true)

	got, err := f.r.GetLaptopsByIDs(ctx, []string{a.ID, b.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := f.r.GetLaptopsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListBrandsAndCategories_Counts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createLaptop(t, "a", 1000, true)
	f.createLaptop(t, "b", 1100, true)
	_, err := f.r.CreateBrand(ctx, repo.CreateBrandOptions{Name: "Apple", Slug: "apple"})
	require.NoError(t, err)

	brands, err := f.r.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Apple", brands[0].Name)
	assert.Equal(t, 0, brands[0].LaptopCount)
	assert.Equal(t, "Lenovo", brands[1].Name)
	assert.Equal(t, 2, brands[1].LaptopCount)

	categories, err := f.r.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 2, categories[0].LaptopCount)

	brand, err := f.r.GetOneBrand(ctx, repo.GetOneBrandOptions{Slug: "lenovo"})
	require.NoError(t, err)
	assert.Equal(t, 2, brand.LaptopCount)

	_, err = f.r.CreateBrand(ctx, repo.CreateBrandOptions{Name: "Apple", Slug: "apple-2"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)
}

func TestGetOneCategoryAndProcessor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.r.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: "Business"})
	require.NoError(t, err)
	assert.Equal(t, f.category.ID, c.ID)

	p, err := f.r.GetOneProcessor(ctx, repo.GetOneProcessorOptions{Name: "Intel Core i7-1365U"})
	require.NoError(t, err)
	assert.Equal(t, 10, p.Cores)

	missing, err := f.r.GetOneProcessor(ctx, repo.GetOneProcessorOptions{Name: "nope"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
