package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"laptopxplorer/internal/article"
	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/internal/pricing"
	"laptopxplorer/pkg/log"
)

// fixture is the YAML document accepted by the seed command. Laptops refer
// to brands, categories and processors by name, articles to laptops by slug.
type fixture struct {
	Brands     []brandFixture     `yaml:"brands"`
	Categories []categoryFixture  `yaml:"categories"`
	Processors []processorFixture `yaml:"processors"`
	Laptops    []laptopFixture    `yaml:"laptops"`
	Articles   []articleFixture   `yaml:"articles"`
}

type brandFixture struct {
	Name        string `yaml:"name"`
	Website     string `yaml:"website"`
	Description string `yaml:"description"`
}

type categoryFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type processorFixture struct {
	Name       string  `yaml:"name"`
	Brand      string  `yaml:"brand"`
	Cores      int     `yaml:"cores"`
	Threads    int     `yaml:"threads"`
	BaseClock  float64 `yaml:"base_clock"`
	Generation string  `yaml:"generation"`
}

type laptopFixture struct {
	Name              string         `yaml:"name"`
	Brand             string         `yaml:"brand"`
	Category          string         `yaml:"category"`
	Processor         string         `yaml:"processor"`
	ModelNumber       string         `yaml:"model_number"`
	Description       string         `yaml:"description"`
	ImageURL          string         `yaml:"image_url"`
	RAMSize           int            `yaml:"ram_size"`
	RAMType           string         `yaml:"ram_type"`
	StorageSize       int            `yaml:"storage_size"`
	StorageType       string         `yaml:"storage_type"`
	DisplaySize       float64        `yaml:"display_size"`
	DisplayResolution string         `yaml:"display_resolution"`
	RefreshRate       int            `yaml:"refresh_rate"`
	GraphicsType      string         `yaml:"graphics_type"`
	GraphicsModel     string         `yaml:"graphics_model"`
	BatteryLife       *float64       `yaml:"battery_life"`
	Weight            float64        `yaml:"weight"`
	OperatingSystem   string         `yaml:"operating_system"`
	Price             string         `yaml:"price"`
	InStock           *bool          `yaml:"in_stock"`
	Prices            []priceFixture `yaml:"prices"`
}

type priceFixture struct {
	Retailer    string `yaml:"retailer"`
	RetailerURL string `yaml:"retailer_url"`
	Price       string `yaml:"price"`
	InStock     *bool  `yaml:"in_stock"`
}

type articleFixture struct {
	Title      string `yaml:"title"`
	Slug       string `yaml:"slug"`
	Laptop     string `yaml:"laptop"`
	AuthorName string `yaml:"author_name"`
	AuthorBio  string `yaml:"author_bio"`
	Excerpt    string `yaml:"excerpt"`
	Content    string `yaml:"content"`
	ReadTime   int    `yaml:"read_time"`
	Published  bool   `yaml:"published"`
	Featured   bool   `yaml:"featured"`
}

func loadFixture(path string) (fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f, nil
}

// seedSummary counts what a run created or touched.
type seedSummary struct {
	Brands     int
	Categories int
	Processors int
	Laptops    int
	Skipped    int
	Prices     int
	Articles   int
}

type seeder struct {
	catalog  laptop.UseCase
	prices   pricing.UseCase
	articles article.UseCase
	l        log.Logger
}

// run inserts f. Brands, categories and processors are matched by name.
// Laptops already present are skipped with their prices and articles are
// skipped by slug, so running the same fixture twice changes nothing.
func (s seeder) run(ctx context.Context, f fixture) (seedSummary, error) {
	var sum seedSummary
	admin := model.Scope{UserID: "seed", Role: model.RoleAdmin}

	brands := make(map[string]string, len(f.Brands))
	for _, b := range f.Brands {
		brand, err := s.catalog.CreateBrand(ctx, laptop.CreateBrandInput{
			Name:        b.Name,
			Website:     b.Website,
			Description: b.Description,
		})
		if err != nil {
			return sum, fmt.Errorf("brand %q: %w", b.Name, err)
		}
		brands[b.Name] = brand.ID
		sum.Brands++
	}

	categories := make(map[string]string, len(f.Categories))
	for _, c := range f.Categories {
		category, err := s.catalog.CreateCategory(ctx, laptop.CreateCategoryInput{
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
		if err != nil {
			return sum, fmt.Errorf("category %q: %w", c.Name, err)
		}
		categories[c.Name] = category.ID
		sum.Categories++
	}

	processors := make(map[string]string, len(f.Processors))
	for _, p := range f.Processors {
		processor, err := s.catalog.CreateProcessor(ctx, laptop.CreateProcessorInput{
			Name:       p.Name,
			Brand:      p.Brand,
			Cores:      p.Cores,
			Threads:    p.Threads,
			BaseClock:  p.BaseClock,
			Generation: p.Generation,
		})
		if err != nil {
			return sum, fmt.Errorf("processor %q: %w", p.Name, err)
		}
		processors[p.Name] = processor.ID
		sum.Processors++
	}

	for _, lf := range f.Laptops {
		brandID, ok := brands[lf.Brand]
		if !ok {
			return sum, fmt.Errorf("laptop %q: unknown brand %q", lf.Name, lf.Brand)
		}
		price, err := decimal.NewFromString(lf.Price)
		if err != nil {
			return sum, fmt.Errorf("laptop %q: price: %w", lf.Name, err)
		}

		lp, err := s.catalog.CreateLaptop(ctx, laptop.CreateLaptopInput{
			Name:              lf.Name,
			BrandID:           brandID,
			CategoryID:        categories[lf.Category],
			ProcessorID:       processors[lf.Processor],
			ModelNumber:       lf.ModelNumber,
			Description:       lf.Description,
			ImageURL:          lf.ImageURL,
			RAMSize:           lf.RAMSize,
			RAMType:           lf.RAMType,
			StorageSize:       lf.StorageSize,
			StorageType:       lf.StorageType,
			DisplaySize:       lf.DisplaySize,
			DisplayResolution: lf.DisplayResolution,
			RefreshRate:       lf.RefreshRate,
			GraphicsType:      lf.GraphicsType,
			GraphicsModel:     lf.GraphicsModel,
			BatteryLife:       lf.BatteryLife,
			Weight:            lf.Weight,
			OperatingSystem:   lf.OperatingSystem,
			Price:             price,
			InStock:           boolOr(lf.InStock, true),
		})
		if errors.Is(err, laptop.ErrDuplicateSlug) {
			s.l.Infof(ctx, "laptop %q already exists, skipping", lf.Name)
			sum.Skipped++
			continue
		}
		if err != nil {
			return sum, fmt.Errorf("laptop %q: %w", lf.Name, err)
		}
		sum.Laptops++
		s.l.Debugf(ctx, "seeded laptop %s", lp.Slug)

		for _, pf := range lf.Prices {
			p, err := decimal.NewFromString(pf.Price)
			if err != nil {
				return sum, fmt.Errorf("laptop %q: retailer price: %w", lf.Name, err)
			}
			if _, err := s.prices.Record(ctx, admin, pricing.RecordInput{
				LaptopSlug:  lp.Slug,
				Price:       p,
				Retailer:    pf.Retailer,
				RetailerURL: pf.RetailerURL,
				InStock:     boolOr(pf.InStock, true),
			}); err != nil {
				return sum, fmt.Errorf("laptop %q: record price: %w", lf.Name, err)
			}
			sum.Prices++
		}
	}

	for _, af := range f.Articles {
		a, err := s.articles.Create(ctx, admin, article.CreateInput{
			Title:      af.Title,
			Slug:       af.Slug,
			LaptopSlug: af.Laptop,
			AuthorName: af.AuthorName,
			AuthorBio:  af.AuthorBio,
			Excerpt:    af.Excerpt,
			Content:    af.Content,
			ReadTime:   af.ReadTime,
			Published:  af.Published,
			Featured:   af.Featured,
		})
		if errors.Is(err, article.ErrDuplicateSlug) {
			s.l.Infof(ctx, "article %q already exists, skipping", af.Title)
			sum.Skipped++
			continue
		}
		if err != nil {
			return sum, fmt.Errorf("article %q: %w", af.Title, err)
		}
		sum.Articles++
		s.l.Debugf(ctx, "seeded article %s", a.Slug)
	}

	return sum, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
