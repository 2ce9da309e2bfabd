package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// BuildFacets derives the filter vocabulary from items. Every dimension lists
// the distinct non-empty values present, each with the number of items that
// carry it. Brands and categories are keyed by id and sorted by name; numeric
// facets ascend; other strings sort lexicographically. Screen and weight
// buckets always list the whole table.
func BuildFacets(items []Item) Facets {
	brands := map[string]string{}
	categories := map[string]string{}
	graphics := map[string]bool{}
	oses := map[string]bool{}
	ram := map[int]bool{}
	storage := map[int]bool{}

	for _, it := range items {
		if it.BrandID != "" {
			brands[it.BrandID] = it.BrandName
		}
		if it.CategoryID != "" {
			categories[it.CategoryID] = it.CategoryName
		}
		if it.GraphicsType != "" {
			graphics[it.GraphicsType] = true
		}
		if it.OperatingSystem != "" {
			oses[it.OperatingSystem] = true
		}
		if it.RAMSize > 0 {
			ram[it.RAMSize] = true
		}
		if it.StorageSize > 0 {
			storage[it.StorageSize] = true
		}
	}

	f := Facets{
		Brands:           labelled(brands),
		Categories:       labelled(categories),
		RAMSizes:         numeric(ram),
		StorageSizes:     numeric(storage),
		GraphicsTypes:    plain(graphics),
		OperatingSystems: plain(oses),
		ScreenBuckets:    fromTable(ScreenBuckets),
		WeightCategories: fromTable(WeightCategories),
		PriceRange:       priceRange(items),
	}
	return f.Count(items)
}

// Count returns a copy of f whose counts reflect matched. The value lists are
// kept as they are, so values absent from matched stay listed with a zero
// count. Counts do not exclude the dimension's own selection.
func (f Facets) Count(matched []Item) Facets {
	out := Facets{
		Brands:           resetCounts(f.Brands),
		Categories:       resetCounts(f.Categories),
		RAMSizes:         slices.Clone(f.RAMSizes),
		StorageSizes:     slices.Clone(f.StorageSizes),
		GraphicsTypes:    resetCounts(f.GraphicsTypes),
		OperatingSystems: resetCounts(f.OperatingSystems),
		ScreenBuckets:    resetCounts(f.ScreenBuckets),
		WeightCategories: resetCounts(f.WeightCategories),
		PriceRange:       f.PriceRange,
	}
	for i := range out.RAMSizes {
		out.RAMSizes[i].Count = 0
	}
	for i := range out.StorageSizes {
		out.StorageSizes[i].Count = 0
	}

	for _, it := range matched {
		bump(out.Brands, it.BrandID)
		bump(out.Categories, it.CategoryID)
		bump(out.GraphicsTypes, it.GraphicsType)
		bump(out.OperatingSystems, it.OperatingSystem)
		bumpInt(out.RAMSizes, it.RAMSize)
		bumpInt(out.StorageSizes, it.StorageSize)
		if b, ok := ScreenBucketFor(it.DisplaySize); ok {
			bump(out.ScreenBuckets, b.Name)
		}
		if b, ok := WeightCategoryFor(it.Weight); ok {
			bump(out.WeightCategories, b.Name)
		}
	}
	return out
}

func labelled(m map[string]string) []FacetValue {
	out := make([]FacetValue, 0, len(m))
	for id, name := range m {
		out = append(out, FacetValue{Value: id, Label: name})
	}
	slices.SortFunc(out, func(a, b FacetValue) int {
		if c := cmp.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label)); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

func plain(m map[string]bool) []FacetValue {
	out := make([]FacetValue, 0, len(m))
	for v := range m {
		out = append(out, FacetValue{Value: v, Label: v})
	}
	slices.SortFunc(out, func(a, b FacetValue) int { return cmp.Compare(a.Value, b.Value) })
	return out
}

func numeric(m map[int]bool) []IntFacetValue {
	out := make([]IntFacetValue, 0, len(m))
	for v := range m {
		out = append(out, IntFacetValue{Value: v})
	}
	slices.SortFunc(out, func(a, b IntFacetValue) int { return cmp.Compare(a.Value, b.Value) })
	return out
}

func fromTable(table []Bucket) []FacetValue {
	out := make([]FacetValue, len(table))
	for i, b := range table {
		out[i] = FacetValue{Value: b.Name, Label: b.Label}
	}
	return out
}

func priceRange(items []Item) PriceRange {
	var r PriceRange
	for i, it := range items {
		if i == 0 || it.Price.LessThan(r.Min) {
			r.Min = it.Price
		}
		if i == 0 || it.Price.GreaterThan(r.Max) {
			r.Max = it.Price
		}
	}
	return r
}

func resetCounts(values []FacetValue) []FacetValue {
	out := slices.Clone(values)
	for i := range out {
		out[i].Count = 0
	}
	return out
}

func bump(values []FacetValue, v string) {
	if v == "" {
		return
	}
	for i := range values {
		if values[i].Value == v {
			values[i].Count++
			return
		}
	}
}

func bumpInt(values []IntFacetValue, v int) {
	for i := range values {
		if values[i].Value == v {
			values[i].Count++
			return
		}
	}
}
