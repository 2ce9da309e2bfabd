package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey is one of the whitelisted listing orders.
type SortKey string

const (
	SortPriceAsc      SortKey = "price asc"
	SortPriceDesc     SortKey = "price desc"
	SortNameAsc       SortKey = "name asc"
	SortNameDesc      SortKey = "name desc"
	SortCreatedAtAsc  SortKey = "created_at asc"
	SortCreatedAtDesc SortKey = "created_at desc"
	SortRAMSizeAsc    SortKey = "ram_size asc"
	SortRAMSizeDesc   SortKey = "ram_size desc"

	DefaultSort = SortCreatedAtDesc
)

var sortKeys = []SortKey{
	SortPriceAsc, SortPriceDesc,
	SortNameAsc, SortNameDesc,
	SortCreatedAtAsc, SortCreatedAtDesc,
	SortRAMSizeAsc, SortRAMSizeDesc,
}

// SortKeys returns the accepted sort keys.
func SortKeys() []SortKey {
	return slices.Clone(sortKeys)
}

// ParseSortKey accepts "field dir", "field_dir", "-field" (desc) and "field"
// (asc). ok is false when s is empty or names no whitelisted order, in which
// case the default order is returned.
func ParseSortKey(s string) (key SortKey, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSort, false
	}

	field, dir := s, "asc"
	switch {
	case strings.HasPrefix(s, "-"):
		field, dir = s[1:], "desc"
	case strings.HasSuffix(s, " asc"), strings.HasSuffix(s, "_asc"):
		field = s[:len(s)-4]
	case strings.HasSuffix(s, " desc"), strings.HasSuffix(s, "_desc"):
		field, dir = s[:len(s)-5], "desc"
	}

	key = SortKey(strings.TrimSpace(field) + " " + dir)
	if slices.Contains(sortKeys, key) {
		return key, true
	}
	return DefaultSort, false
}

func (k SortKey) compare(a, b Item) int {
	switch k {
	case SortPriceAsc:
		return a.Price.Cmp(b.Price)
	case SortPriceDesc:
		return b.Price.Cmp(a.Price)
	case SortNameAsc:
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortNameDesc:
		return cmp.Compare(strings.ToLower(b.Name), strings.ToLower(a.Name))
	case SortCreatedAtAsc:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortRAMSizeAsc:
		return cmp.Compare(a.RAMSize, b.RAMSize)
	case SortRAMSizeDesc:
		return cmp.Compare(b.RAMSize, a.RAMSize)
	default:
		return b.CreatedAt.Compare(a.CreatedAt)
	}
}

// Sort returns a sorted copy of items. Equal keys are ordered by ID ascending
// so the order is the same on every request.
func Sort(items []Item, key SortKey) []Item {
	if !slices.Contains(sortKeys, key) {
		key = DefaultSort
	}
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b Item) int {
		if c := key.compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// Rank sorts items by key and returns the 1-indexed page of pageSize items.
// A page past the end yields no items but keeps the totals.
func Rank(items []Item, key SortKey, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := max(1, (total+pageSize-1)/pageSize)

	window := []Item{}
	if page <= totalPages && total > 0 {
		start := (page - 1) * pageSize
		end := min(start+pageSize, total)
		window = Sort(items, key)[start:end]
	}

	return Page{
		Items:      window,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
