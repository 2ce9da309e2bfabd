// Package catalog is the laptop catalog query engine.
//
// A query runs in three steps over a read-only snapshot of items:
//
//  1. Compile turns a Selection into a Predicate.
//  2. BuildFacets derives the filter vocabulary from the snapshot and counts
//     how many matching items carry each value.
//  3. Rank sorts the matching items and cuts the requested page.
//
// Query chains the three. Nothing in this package retains state between
// calls or mutates the items it is given, so a snapshot can be shared by
// concurrent requests.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPageSize is the listing page size.
const DefaultPageSize = 12

// Item is a read-only snapshot of one sellable laptop.
type Item struct {
	ID              string
	Name            string
	Slug            string
	BrandID         string
	BrandName       string
	CategoryID      string
	CategoryName    string
	ProcessorName   string
	ModelNumber     string
	Description     string
	RAMSize         int     // GB
	StorageSize     int     // GB
	StorageType     string
	DisplaySize     float64 // inches
	Weight          float64 // kg
	BatteryLife     *float64 // hours, nil when unknown
	Price           decimal.Decimal
	GraphicsType    string
	OperatingSystem string
	InStock         bool
	CreatedAt       time.Time
	Views           int64
}

// Selection is the strongly-typed form of the listing query parameters.
// Facet value sets are OR-ed within a dimension and AND-ed across dimensions.
// Empty sets and nil bounds impose no constraint.
type Selection struct {
	Query            string           `json:"q,omitempty"`
	BrandIDs         []string         `json:"brand,omitempty"`
	CategoryIDs      []string         `json:"category,omitempty"`
	MinPrice         *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice         *decimal.Decimal `json:"max_price,omitempty"`
	RAMSizes         []int            `json:"ram,omitempty"`
	StorageSizes     []int            `json:"storage,omitempty"`
	ScreenBuckets    []string         `json:"screen,omitempty"`
	Weight           WeightCategory   `json:"weight,omitempty"`
	MinBattery       *float64         `json:"min_battery,omitempty"`
	GraphicsTypes    []string         `json:"graphics,omitempty"`
	OperatingSystems []string         `json:"os,omitempty"`
	Sort             SortKey          `json:"sort"`
	Page             int              `json:"page"`
}

// HasConstraints reports whether any filter (not sort or page) is set.
func (s Selection) HasConstraints() bool {
	return s.Query != "" ||
		len(s.BrandIDs) > 0 ||
		len(s.CategoryIDs) > 0 ||
		s.MinPrice != nil ||
		s.MaxPrice != nil ||
		len(s.RAMSizes) > 0 ||
		len(s.StorageSizes) > 0 ||
		len(s.ScreenBuckets) > 0 ||
		s.Weight != "" ||
		s.MinBattery != nil ||
		len(s.GraphicsTypes) > 0 ||
		len(s.OperatingSystems) > 0
}

// FacetValue is one selectable value of a string dimension.
type FacetValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// IntFacetValue is one selectable value of a numeric dimension.
type IntFacetValue struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// PriceRange is the lowest and highest price present in a set of items.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Facets holds the filter vocabulary with per-value counts.
type Facets struct {
	Brands           []FacetValue    `json:"brands"`
	Categories       []FacetValue    `json:"categories"`
	RAMSizes         []IntFacetValue `json:"ram_sizes"`
	StorageSizes     []IntFacetValue `json:"storage_sizes"`
	GraphicsTypes    []FacetValue    `json:"graphics_types"`
	OperatingSystems []FacetValue    `json:"operating_systems"`
	ScreenBuckets    []FacetValue    `json:"screen_sizes"`
	WeightCategories []FacetValue    `json:"weight_categories"`
	PriceRange       PriceRange      `json:"price_range"`
}

// Page is one window of a ranked result.
type Page struct {
	Items      []Item
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Result is the full answer to a listing query.
type Result struct {
	Page      Page
	Facets    Facets
	Selection Selection
}
