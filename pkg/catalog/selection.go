package catalog

import (
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	pkgErrors "laptopxplorer/pkg/errors"
)

// Query parameter names of the listing endpoint.
const (
	ParamQuery      = "q"
	ParamBrand      = "brand"
	ParamCategory   = "category"
	ParamMinPrice   = "min_price"
	ParamMaxPrice   = "max_price"
	ParamRAM        = "ram"
	ParamStorage    = "storage"
	ParamScreen     = "screen"
	ParamWeight     = "weight"
	ParamMinBattery = "min_battery"
	ParamGraphics   = "graphics"
	ParamOS         = "os"
	ParamSort       = "sort"
	ParamPage       = "page"
)

// ParseSelection converts raw query parameters into a Selection.
//
// A malformed value is dropped and reported for its field only; every other
// field still applies. An unknown sort key falls back to DefaultSort without
// a warning.
func ParseSelection(values url.Values) (Selection, pkgErrors.ValidationErrors) {
	var errs pkgErrors.ValidationErrors

	sel := Selection{
		Query:            strings.TrimSpace(values.Get(ParamQuery)),
		BrandIDs:         parseStrings(values[ParamBrand]),
		CategoryIDs:      parseStrings(values[ParamCategory]),
		MinPrice:         parsePrice(values, ParamMinPrice, &errs),
		MaxPrice:         parsePrice(values, ParamMaxPrice, &errs),
		RAMSizes:         parseSizes(values, ParamRAM, &errs),
		StorageSizes:     parseSizes(values, ParamStorage, &errs),
		GraphicsTypes:    parseStrings(values[ParamGraphics]),
		OperatingSystems: parseStrings(values[ParamOS]),
		Page:             1,
	}

	for _, raw := range parseStrings(values[ParamScreen]) {
		if _, ok := findBucket(ScreenBuckets, raw); !ok {
			errs.Add(ParamScreen, raw, "must be one of 13, 14, 15, 16, 17")
			continue
		}
		sel.ScreenBuckets = append(sel.ScreenBuckets, raw)
	}

	if raw := strings.ToLower(strings.TrimSpace(values.Get(ParamWeight))); raw != "" {
		if _, ok := findBucket(WeightCategories, raw); ok {
			sel.Weight = WeightCategory(raw)
		} else {
			errs.Add(ParamWeight, raw, "must be one of ultraportable, standard, heavy")
		}
	}

	if raw := strings.TrimSpace(values.Get(ParamMinBattery)); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
			errs.Add(ParamMinBattery, raw, "must be a decimal number")
		case v < 0:
			errs.Add(ParamMinBattery, raw, "must not be negative")
		default:
			sel.MinBattery = &v
		}
	}

	sel.Sort, _ = ParseSortKey(values.Get(ParamSort))

	if raw := strings.TrimSpace(values.Get(ParamPage)); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			errs.Add(ParamPage, raw, "must be a positive integer")
		} else {
			sel.Page = p
		}
	}

	return sel, errs
}

// parseStrings trims, drops empty values and de-duplicates while keeping the
// first-seen order.
func parseStrings(raw []string) []string {
	var out []string
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func parsePrice(values url.Values, field string, errs *pkgErrors.ValidationErrors) *decimal.Decimal {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add(field, raw, "must be a decimal number")
		return nil
	}
	if d.IsNegative() {
		errs.Add(field, raw, "must not be negative")
		return nil
	}
	return &d
}

func parseSizes(values url.Values, field string, errs *pkgErrors.ValidationErrors) []int {
	var out []int
	for _, raw := range parseStrings(values[field]) {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs.Add(field, raw, "must be a positive integer")
			continue
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// Values renders the selection back into query parameters. Defaults are
// omitted. Used for applied-filter echoes and pagination links.
func (s Selection) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set(ParamQuery, s.Query)
	}
	for _, id := range s.BrandIDs {
		v.Add(ParamBrand, id)
	}
	for _, id := range s.CategoryIDs {
		v.Add(ParamCategory, id)
	}
	if s.MinPrice != nil {
		v.Set(ParamMinPrice, s.MinPrice.String())
	}
	if s.MaxPrice != nil {
		v.Set(ParamMaxPrice, s.MaxPrice.String())
	}
	for _, n := range s.RAMSizes {
		v.Add(ParamRAM, strconv.Itoa(n))
	}
	for _, n := range s.StorageSizes {
		v.Add(ParamStorage, strconv.Itoa(n))
	}
	for _, b := range s.ScreenBuckets {
		v.Add(ParamScreen, b)
	}
	if s.Weight != "" {
		v.Set(ParamWeight, string(s.Weight))
	}
	if s.MinBattery != nil {
		v.Set(ParamMinBattery, strconv.FormatFloat(*s.MinBattery, 'f', -1, 64))
	}
	for _, g := range s.GraphicsTypes {
		v.Add(ParamGraphics, g)
	}
	for _, o := range s.OperatingSystems {
		v.Add(ParamOS, o)
	}
	if s.Sort != "" && s.Sort != DefaultSort {
		v.Set(ParamSort, string(s.Sort))
	}
	if s.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return v
}
