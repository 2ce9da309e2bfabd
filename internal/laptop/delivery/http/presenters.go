package http

import (
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/catalog"
	pkgErrors "laptopxplorer/pkg/errors"
)

// --- Request DTOs ---

type listReq struct {
	Selection catalog.Selection
}

func (r listReq) toInput() laptop.ListInput {
	return laptop.ListInput{Selection: r.Selection}
}

type autocompleteReq struct {
	Query string `form:"q"`
}

type compareReq struct {
	IDs []string
}

func (r compareReq) validate() error {
	if len(r.IDs) == 0 {
		var errs pkgErrors.ValidationErrors
		errs.Add("ids", "", "at least two laptop ids are required")
		return errs
	}
	return nil
}

// --- Response DTOs ---

type laptopResp struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Brand           refResp         `json:"brand"`
	Category        *refResp        `json:"category,omitempty"`
	Processor       string          `json:"processor,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	RAMSize         int             `json:"ram_size"`
	StorageSize     int             `json:"storage_size"`
	StorageType     string          `json:"storage_type"`
	DisplaySize     float64         `json:"display_size"`
	Weight          float64         `json:"weight"`
	BatteryLife     *float64        `json:"battery_life"`
	GraphicsType    string          `json:"graphics_type"`
	OperatingSystem string          `json:"operating_system"`
	Price           decimal.Decimal `json:"price"`
	InStock         bool            `json:"in_stock"`
	CreatedAt       time.Time       `json:"created_at"`
}

type refResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newLaptopResp(lp laptop.Laptop) laptopResp {
	resp := laptopResp{
		ID:              lp.ID,
		Name:            lp.Name,
		Slug:            lp.Slug,
		Brand:           refResp{ID: lp.BrandID, Name: lp.BrandName, Slug: lp.BrandSlug},
		Processor:       lp.ProcessorName,
		ImageURL:        lp.ImageURL,
		RAMSize:         lp.RAMSize,
		StorageSize:     lp.StorageSize,
		StorageType:     lp.StorageType,
		DisplaySize:     lp.DisplaySize,
		Weight:          lp.Weight,
		BatteryLife:     lp.BatteryLife,
		GraphicsType:    lp.GraphicsType,
		OperatingSystem: lp.OperatingSystem,
		Price:           lp.Price,
		InStock:         lp.InStock,
		CreatedAt:       lp.CreatedAt,
	}
	if lp.CategoryID != "" {
		resp.Category = &refResp{ID: lp.CategoryID, Name: lp.CategoryName, Slug: lp.CategorySlug}
	}
	return resp
}

func newLaptopResps(laptops []laptop.Laptop) []laptopResp {
	out := make([]laptopResp, len(laptops))
	for i, lp := range laptops {
		out[i] = newLaptopResp(lp)
	}
	return out
}

// laptopDetailResp is the full spec sheet.
type laptopDetailResp struct {
	laptopResp
	ModelNumber       string    `json:"model_number"`
	Description       string    `json:"description"`
	RAMType           string    `json:"ram_type"`
	DisplayResolution string    `json:"display_resolution"`
	RefreshRate       int       `json:"refresh_rate"`
	GraphicsModel     string    `json:"graphics_model"`
	Views             int64     `json:"views"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newLaptopDetailResp(lp laptop.Laptop) laptopDetailResp {
	return laptopDetailResp{
		laptopResp:        newLaptopResp(lp),
		ModelNumber:       lp.ModelNumber,
		Description:       lp.Description,
		RAMType:           lp.RAMType,
		DisplayResolution: lp.DisplayResolution,
		RefreshRate:       lp.RefreshRate,
		GraphicsModel:     lp.GraphicsModel,
		Views:             lp.Views,
		UpdatedAt:         lp.UpdatedAt,
	}
}

type paginationResp struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type listResp struct {
	Items          []laptopResp      `json:"items"`
	Facets         catalog.Facets    `json:"facets"`
	Pagination     paginationResp    `json:"pagination"`
	AppliedFilters catalog.Selection `json:"applied_filters"`
}

func newListResp(out laptop.ListOutput) listResp {
	p := out.Result.Page
	return listResp{
		Items:  newLaptopResps(out.Laptops),
		Facets: out.Result.Facets,
		Pagination: paginationResp{
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalItems: p.TotalItems,
			TotalPages: p.TotalPages,
		},
		AppliedFilters: out.Result.Selection,
	}
}

type detailResp struct {
	Laptop  laptopDetailResp    `json:"laptop"`
	Rating  model.RatingSummary `json:"rating"`
	Related []laptopResp        `json:"related"`
}

func (h *handler) newDetailResp(out laptop.DetailOutput) detailResp {
	return detailResp{
		Laptop:  newLaptopDetailResp(out.Laptop),
		Rating:  out.Rating,
		Related: newLaptopResps(out.Related),
	}
}

type suggestionResp struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Brand string `json:"brand"`
}

func (h *handler) newAutocompleteResp(suggestions []laptop.Suggestion) []suggestionResp {
	out := make([]suggestionResp, len(suggestions))
	for i, s := range suggestions {
		out[i] = suggestionResp{Name: s.Name, Slug: s.Slug, Brand: s.Brand}
	}
	return out
}

type compareResp struct {
	Laptops []laptopDetailResp `json:"laptops"`
}

func (h *handler) newCompareResp(laptops []laptop.Laptop) compareResp {
	out := make([]laptopDetailResp, len(laptops))
	for i, lp := range laptops {
		out[i] = newLaptopDetailResp(lp)
	}
	return compareResp{Laptops: out}
}

type brandResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	LaptopCount int    `json:"laptop_count"`
}

func newBrandResp(b laptop.Brand) brandResp {
	return brandResp{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Website:     b.Website,
		Description: b.Description,
		LaptopCount: b.LaptopCount,
	}
}

func newBrandResps(brands []laptop.Brand) []brandResp {
	out := make([]brandResp, len(brands))
	for i, b := range brands {
		out[i] = newBrandResp(b)
	}
	return out
}

type brandDetailResp struct {
	Brand brandResp `json:"brand"`
	listResp
}

func (h *handler) newBrandDetailResp(out laptop.BrandDetailOutput) brandDetailResp {
	return brandDetailResp{Brand: newBrandResp(out.Brand), listResp: newListResp(out.List)}
}

type categoryResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	LaptopCount int    `json:"laptop_count"`
}

func newCategoryResps(categories []laptop.Category) []categoryResp {
	out := make([]categoryResp, len(categories))
	for i, c := range categories {
		out[i] = categoryResp{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Icon:        c.Icon,
			LaptopCount: c.LaptopCount,
		}
	}
	return out
}

type homeResp struct {
	Featured         []laptopResp        `json:"featured"`
	Brands           []brandResp         `json:"brands"`
	Categories       []categoryResp      `json:"categories"`
	FeaturedArticles []model.ArticleCard `json:"featured_articles"`
}

func (h *handler) newHomeResp(out laptop.HomeOutput) homeResp {
	articles := out.FeaturedArticles
	if articles == nil {
		articles = []model.ArticleCard{}
	}
	return homeResp{
		Featured:         newLaptopResps(out.Featured),
		Brands:           newBrandResps(out.Brands),
		Categories:       newCategoryResps(out.Categories),
		FeaturedArticles: articles,
	}
}
