package catalog

import (
	"slices"
	"strings"
)

// Predicate decides whether an item belongs to a filtered result.
type Predicate func(Item) bool

// All matches every item.
func All(Item) bool { return true }

// Compile builds the predicate for sel. Constraints are checked in a fixed
// order and AND-ed; an unset field contributes nothing.
func Compile(sel Selection) Predicate {
	var checks []Predicate

	if q := strings.ToLower(strings.TrimSpace(sel.Query)); q != "" {
		checks = append(checks, func(it Item) bool { return matchesText(it, q) })
	}

	if len(sel.BrandIDs) > 0 {
		brands := toSet(sel.BrandIDs)
		checks = append(checks, func(it Item) bool { return brands[it.BrandID] })
	}

	if len(sel.CategoryIDs) > 0 {
		categories := toSet(sel.CategoryIDs)
		checks = append(checks, func(it Item) bool { return categories[it.CategoryID] })
	}

	if sel.MinPrice != nil {
		lo := *sel.MinPrice
		checks = append(checks, func(it Item) bool { return it.Price.GreaterThanOrEqual(lo) })
	}
	if sel.MaxPrice != nil {
		hi := *sel.MaxPrice
		checks = append(checks, func(it Item) bool { return it.Price.LessThanOrEqual(hi) })
	}

	if len(sel.RAMSizes) > 0 {
		ram := toSet(sel.RAMSizes)
		checks = append(checks, func(it Item) bool { return ram[it.RAMSize] })
	}

	if len(sel.StorageSizes) > 0 {
		storage := toSet(sel.StorageSizes)
		checks = append(checks, func(it Item) bool { return storage[it.StorageSize] })
	}

	if len(sel.ScreenBuckets) > 0 {
		var buckets []Bucket
		for _, name := range sel.ScreenBuckets {
			if b, ok := findBucket(ScreenBuckets, name); ok {
				buckets = append(buckets, b)
			}
		}
		checks = append(checks, func(it Item) bool {
			return slices.ContainsFunc(buckets, func(b Bucket) bool { return b.Contains(it.DisplaySize) })
		})
	}

	if sel.Weight != "" {
		b, ok := findBucket(WeightCategories, string(sel.Weight))
		checks = append(checks, func(it Item) bool { return ok && b.Contains(it.Weight) })
	}

	if sel.MinBattery != nil {
		floor := *sel.MinBattery
		checks = append(checks, func(it Item) bool { return it.BatteryLife != nil && *it.BatteryLife >= floor })
	}

	if len(sel.GraphicsTypes) > 0 {
		graphics := toSet(sel.GraphicsTypes)
		checks = append(checks, func(it Item) bool { return graphics[it.GraphicsType] })
	}

	if len(sel.OperatingSystems) > 0 {
		oses := toSet(sel.OperatingSystems)
		checks = append(checks, func(it Item) bool { return oses[it.OperatingSystem] })
	}

	if len(checks) == 0 {
		return All
	}
	return func(it Item) bool {
		for _, check := range checks {
			if !check(it) {
				return false
			}
		}
		return true
	}
}

// Filter returns the items p accepts, in their original order.
func Filter(items []Item, p Predicate) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if p(it) {
			out = append(out, it)
		}
	}
	return out
}

func matchesText(it Item, q string) bool {
	for _, field := range []string{it.Name, it.BrandName, it.ModelNumber, it.ProcessorName, it.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func toSet[T comparable](values []T) map[T]bool {
	set := make(map[T]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
