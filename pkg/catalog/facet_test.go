package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laptopxplorer/pkg/catalog"
)

func TestBuildFacets(t *testing.T) {
	items := []catalog.Item{
		item("1", withBrand("b-lenovo", "Lenovo"), withRAM(16), withPrice(1200), withDisplay(14), withWeight(1.1)),
		item("2", withBrand("b-apple", "Apple"), withRAM(8), withPrice(999), withDisplay(13.6), withWeight(1.24),
			func(it *catalog.Item) { it.OperatingSystem = "macOS"; it.CategoryID = ""; it.CategoryName = "" }),
		item("3", withBrand("b-lenovo", "Lenovo"), withRAM(32), withPrice(2400), withDisplay(16), withWeight(2.6),
			func(it *catalog.Item) { it.GraphicsType = "dedicated"; it.StorageSize = 1024 }),
		item("4", withBrand("b-asus", "ASUS"), withRAM(16), withPrice(650), withDisplay(15.6),
			func(it *catalog.Item) { it.GraphicsType = ""; it.OperatingSystem = "" }),
	}

	f := catalog.BuildFacets(items)

	assert.Equal(t, []catalog.FacetValue{
		{Value: "b-apple", Label: "Apple", Count: 1},
		{Value: "b-asus", Label: "ASUS", Count: 1},
		{Value: "b-lenovo", Label: "Lenovo", Count: 2},
	}, f.Brands)

	assert.Equal(t, []catalog.FacetValue{
		{Value: "c-business", Label: "Business", Count: 3},
	}, f.Categories)

	assert.Equal(t, []catalog.IntFacetValue{
		{Value: 8, Count: 1}, {Value: 16, Count: 2}, {Value: 32, Count: 1},
	}, f.RAMSizes)

	assert.Equal(t, []catalog.IntFacetValue{
		{Value: 512, Count: 3}, {Value: 1024, Count: 1},
	}, f.StorageSizes)

	assert.Equal(t, []catalog.FacetValue{
		{Value: "dedicated", Label: "dedicated", Count: 1},
		{Value: "integrated", Label: "integrated", Count: 2},
	}, f.GraphicsTypes)

	assert.Equal(t, []catalog.FacetValue{
		{Value: "Windows 11", Label: "Windows 11", Count: 2},
		{Value: "macOS", Label: "macOS", Count: 1},
	}, f.OperatingSystems)

	assert.Equal(t, "650", f.PriceRange.Min.String())
	assert.Equal(t, "2400", f.PriceRange.Max.String())

	screens := map[string]int{}
	for _, v := range f.ScreenBuckets {
		screens[v.Value] = v.Count
	}
	assert.Equal(t, map[string]int{"13": 1, "14": 1, "15": 1, "16": 1, "17": 0}, screens)

	weights := map[string]int{}
	for _, v := range f.WeightCategories {
		weights[v.Value] = v.Count
	}
	assert.Equal(t, map[string]int{"ultraportable": 2, "standard": 1, "heavy": 1}, weights)
}

func TestBuildFacets_Empty(t *testing.T) {
	f := catalog.BuildFacets(nil)
	assert.Empty(t, f.Brands)
	assert.Empty(t, f.RAMSizes)
	assert.True(t, f.PriceRange.Min.IsZero())
	assert.Len(t, f.ScreenBuckets, len(catalog.ScreenBuckets))
}

func TestFacets_CountKeepsValues(t *testing.T) {
	items := []catalog.Item{
		item("1", withBrand("b-hp", "HP"), withRAM(8)),
		item("2", withBrand("b-dell", "Dell"), withRAM(16)),
	}
	f := catalog.BuildFacets(items).Count(items[:1])

	assert.Equal(t, []catalog.FacetValue{
		{Value: "b-dell", Label: "Dell", Count: 0},
		{Value: "b-hp", Label: "HP", Count: 1},
	}, f.Brands)
	assert.Equal(t, []catalog.IntFacetValue{{Value: 8, Count: 1}, {Value: 16, Count: 0}}, f.RAMSizes)
}

func TestBucketLookups(t *testing.T) {
	b, ok := catalog.ScreenBucketFor(13.9)
	assert.True(t, ok)
	assert.Equal(t, "13", b.Name)

	b, ok = catalog.ScreenBucketFor(18.4)
	assert.True(t, ok)
	assert.Equal(t, "17", b.Name)

	w, ok := catalog.WeightCategoryFor(2.5)
	assert.True(t, ok)
	assert.Equal(t, string(catalog.WeightHeavy), w.Name)
}
