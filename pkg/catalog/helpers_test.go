package catalog_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/pkg/catalog"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func item(id string, mods ...func(*catalog.Item)) catalog.Item {
	it := catalog.Item{
		ID:              id,
		Name:            "Laptop " + id,
		Slug:            "laptop-" + id,
		BrandID:         "b-dell",
		BrandName:       "Dell",
		CategoryID:      "c-business",
		CategoryName:    "Business",
		ProcessorName:   "Intel Core i5-1335U",
		ModelNumber:     "M-" + id,
		RAMSize:         8,
		StorageSize:     512,
		StorageType:     "SSD",
		DisplaySize:     14,
		Weight:          1.8,
		Price:           decimal.NewFromInt(1000),
		GraphicsType:    "integrated",
		OperatingSystem: "Windows 11",
		InStock:         true,
		CreatedAt:       baseTime,
	}
	for _, m := range mods {
		m(&it)
	}
	return it
}

func withPrice(p int64) func(*catalog.Item) {
	return func(it *catalog.Item) { it.Price = decimal.NewFromInt(p) }
}

func withRAM(gb int) func(*catalog.Item) {
	return func(it *catalog.Item) { it.RAMSize = gb }
}

func withDisplay(in float64) func(*catalog.Item) {
	return func(it *catalog.Item) { it.DisplaySize = in }
}

func withWeight(kg float64) func(*catalog.Item) {
	return func(it *catalog.Item) { it.Weight = kg }
}

func withBattery(h float64) func(*catalog.Item) {
	return func(it *catalog.Item) { it.BatteryLife = &h }
}

func withBrand(id, name string) func(*catalog.Item) {
	return func(it *catalog.Item) { it.BrandID, it.BrandName = id, name }
}

func withCreated(daysAfter int) func(*catalog.Item) {
	return func(it *catalog.Item) { it.CreatedAt = baseTime.AddDate(0, 0, daysAfter) }
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func prices(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Price.String()
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func universe(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = item(fmt.Sprintf("%02d", i), withPrice(int64(100*(i%7+1))), withCreated(i%4))
	}
	return items
}
