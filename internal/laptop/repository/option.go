package repository

import (
	"github.com/shopspring/decimal"
)

// ListLaptopsOptions filters the full laptop listing.
type ListLaptopsOptions struct {
	InStockOnly bool
	BrandID     string
}

// GetOneLaptopOptions holds filter parameters for fetching a single laptop.
// All non-empty fields are applied as AND conditions.
type GetOneLaptopOptions struct {
	ID   string
	Slug string
}

// CreateLaptopOptions holds parameters for inserting a new laptop.
type CreateLaptopOptions struct {
	Name              string
	Slug              string
	BrandID           string
	CategoryID        string
	ProcessorID       string
	ModelNumber       string
	Description       string
	ImageURL          string
	RAMSize           int
	RAMType           string
	StorageSize       int
	StorageType       string
	DisplaySize       float64
	DisplayResolution string
	RefreshRate       int
	GraphicsType      string
	GraphicsModel     string
	BatteryLife       *float64
	Weight            float64
	OperatingSystem   string
	Price             decimal.Decimal
	InStock           bool
}

type UpdatePriceOptions struct {
	ID    string
	Price decimal.Decimal
}

type GetOneBrandOptions struct {
	ID   string
	Slug string
	Name string
}

type CreateBrandOptions struct {
	Name        string
	Slug        string
	Website     string
	Description string
}

type GetOneCategoryOptions struct {
	ID   string
	Slug string
	Name string
}

type CreateCategoryOptions struct {
	Name        string
	Slug        string
	Description string
	Icon        string
}

type GetOneProcessorOptions struct {
	ID   string
	Name string
}

type CreateProcessorOptions struct {
	Name       string
	Brand      string
	Cores      int
	Threads    int
	BaseClock  float64
	Generation string
}
