package repository

import (
	"context"

	"laptopxplorer/internal/laptop"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	LaptopRepository
	BrandRepository
	CategoryRepository
	ProcessorRepository
}

// LaptopRepository defines data access for laptops. Rows are returned with
// their brand, category and processor names joined in.
type LaptopRepository interface {
	ListLaptops(ctx context.Context, opt ListLaptopsOptions) ([]laptop.Laptop, error)
	GetOneLaptop(ctx context.Context, opt GetOneLaptopOptions) (laptop.Laptop, error)
	GetLaptopsByIDs(ctx context.Context, ids []string) ([]laptop.Laptop, error)
	CreateLaptop(ctx context.Context, opt CreateLaptopOptions) (laptop.Laptop, error)
	UpdatePrice(ctx context.Context, opt UpdatePriceOptions) error
	IncrementViews(ctx context.Context, id string) error
}

type BrandRepository interface {
	ListBrands(ctx context.Context) ([]laptop.Brand, error)
	GetOneBrand(ctx context.Context, opt GetOneBrandOptions) (laptop.Brand, error)
	CreateBrand(ctx context.Context, opt CreateBrandOptions) (laptop.Brand, error)
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]laptop.Category, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (laptop.Category, error)
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (laptop.Category, error)
}

type ProcessorRepository interface {
	GetOneProcessor(ctx context.Context, opt GetOneProcessorOptions) (laptop.Processor, error)
	CreateProcessor(ctx context.Context, opt CreateProcessorOptions) (laptop.Processor, error)
}
