package laptop

import (
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/catalog"
)

// --- Domain Models ---

type Brand struct {
	ID          string
	Name        string
	Slug        string
	Website     string
	Description string
	CreatedAt   time.Time
	LaptopCount int
}

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Icon        string
	LaptopCount int
}

type Processor struct {
	ID         string
	Name       string
	Brand      string
	Cores      int
	Threads    int
	BaseClock  float64
	Generation string
}

// Laptop is the full spec sheet of one catalog entry. Brand, category and
// processor names are denormalized for display.
type Laptop struct {
	ID                string
	Name              string
	Slug              string
	BrandID           string
	BrandName         string
	BrandSlug         string
	CategoryID        string
	CategoryName      string
	CategorySlug      string
	ProcessorID       string
	ProcessorName     string
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
	Views             int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ToItem projects the laptop onto the fields the query engine reads.
func (l Laptop) ToItem() catalog.Item {
	return catalog.Item{
		ID:              l.ID,
		Name:            l.Name,
		Slug:            l.Slug,
		BrandID:         l.BrandID,
		BrandName:       l.BrandName,
		CategoryID:      l.CategoryID,
		CategoryName:    l.CategoryName,
		ProcessorName:   l.ProcessorName,
		ModelNumber:     l.ModelNumber,
		Description:     l.Description,
		RAMSize:         l.RAMSize,
		StorageSize:     l.StorageSize,
		StorageType:     l.StorageType,
		DisplaySize:     l.DisplaySize,
		Weight:          l.Weight,
		BatteryLife:     l.BatteryLife,
		Price:           l.Price,
		GraphicsType:    l.GraphicsType,
		OperatingSystem: l.OperatingSystem,
		InStock:         l.InStock,
		CreatedAt:       l.CreatedAt,
		Views:           l.Views,
	}
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Name  string
	Slug  string
	Brand string
}

// --- UseCase Inputs ---

type ListInput struct {
	Selection catalog.Selection
}

type BrandDetailInput struct {
	Slug      string
	Selection catalog.Selection
}

type CreateBrandInput struct {
	Name        string
	Website     string
	Description string
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
}

type CreateProcessorInput struct {
	Name       string
	Brand      string
	Cores      int
	Threads    int
	BaseClock  float64
	Generation string
}

type CreateLaptopInput struct {
	Name              string
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

// --- UseCase Outputs ---

// ListOutput is a page of laptops with the facets of the whole query.
// Laptops follows the order of Result.Page.Items.
type ListOutput struct {
	Laptops []Laptop
	Result  catalog.Result
}

type DetailOutput struct {
	Laptop  Laptop
	Rating  model.RatingSummary
	Related []Laptop
}

type BrandDetailOutput struct {
	Brand Brand
	List  ListOutput
}

type HomeOutput struct {
	Featured         []Laptop
	Brands           []Brand
	Categories       []Category
	FeaturedArticles []model.ArticleCard
}
