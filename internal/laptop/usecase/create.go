package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/slugify"
)

// UpdatePrice sets the current price of a laptop and drops the snapshot.
func (uc *implUseCase) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	if price.IsNegative() {
		return laptop.ErrInvalidPrice
	}
	if err := uc.repo.UpdatePrice(ctx, repo.UpdatePriceOptions{ID: id, Price: price}); err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePrice UpdatePrice: %v", err)
		return err
	}
	uc.InvalidateSnapshot(ctx)
	return nil
}

// CreateBrand returns the existing brand when one with the same name exists.
func (uc *implUseCase) CreateBrand(ctx context.Context, input laptop.CreateBrandInput) (laptop.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return laptop.Brand{}, laptop.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneBrand(ctx, repo.GetOneBrandOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBrand GetOneBrand: %v", err)
		return laptop.Brand{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	brand, err := uc.repo.CreateBrand(ctx, repo.CreateBrandOptions{
		Name:        name,
		Slug:        slugify.Make(name),
		Website:     input.Website,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBrand CreateBrand: %v", err)
		return laptop.Brand{}, translateDuplicate(err)
	}
	return brand, nil
}

// CreateCategory returns the existing category when one with the same name exists.
func (uc *implUseCase) CreateCategory(ctx context.Context, input laptop.CreateCategoryInput) (laptop.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return laptop.Category{}, laptop.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory GetOneCategory: %v", err)
		return laptop.Category{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	category, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		Name:        name,
		Slug:        slugify.Make(name),
		Description: input.Description,
		Icon:        input.Icon,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory CreateCategory: %v", err)
		return laptop.Category{}, translateDuplicate(err)
	}
	return category, nil
}

// CreateProcessor returns the existing processor when one with the same name exists.
func (uc *implUseCase) CreateProcessor(ctx context.Context, input laptop.CreateProcessorInput) (laptop.Processor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return laptop.Processor{}, laptop.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneProcessor(ctx, repo.GetOneProcessorOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateProcessor GetOneProcessor: %v", err)
		return laptop.Processor{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	p, err := uc.repo.CreateProcessor(ctx, repo.CreateProcessorOptions{
		Name:       name,
		Brand:      input.Brand,
		Cores:      input.Cores,
		Threads:    input.Threads,
		BaseClock:  input.BaseClock,
		Generation: input.Generation,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateProcessor CreateProcessor: %v", err)
		return laptop.Processor{}, translateDuplicate(err)
	}
	return p, nil
}

// CreateLaptop inserts a laptop under a slug derived from its brand and
// name, and drops the snapshot.
func (uc *implUseCase) CreateLaptop(ctx context.Context, input laptop.CreateLaptopInput) (laptop.Laptop, error) {
	if err := validateLaptop(input); err != nil {
		return laptop.Laptop{}, err
	}

	brand, err := uc.repo.GetOneBrand(ctx, repo.GetOneBrandOptions{ID: input.BrandID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateLaptop GetOneBrand: %v", err)
		return laptop.Laptop{}, err
	}
	if brand.ID == "" {
		return laptop.Laptop{}, laptop.ErrBrandNotFound
	}

	slug := slugify.Make(brand.Name + " " + input.Name)
	existing, err := uc.repo.GetOneLaptop(ctx, repo.GetOneLaptopOptions{Slug: slug})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateLaptop GetOneLaptop: %v", err)
		return laptop.Laptop{}, err
	}
	if existing.ID != "" {
		return laptop.Laptop{}, laptop.ErrDuplicateSlug
	}

	lp, err := uc.repo.CreateLaptop(ctx, repo.CreateLaptopOptions{
		Name:              strings.TrimSpace(input.Name),
		Slug:              slug,
		BrandID:           input.BrandID,
		CategoryID:        input.CategoryID,
		ProcessorID:       input.ProcessorID,
		ModelNumber:       input.ModelNumber,
		Description:       input.Description,
		ImageURL:          input.ImageURL,
		RAMSize:           input.RAMSize,
		RAMType:           input.RAMType,
		StorageSize:       input.StorageSize,
		StorageType:       input.StorageType,
		DisplaySize:       input.DisplaySize,
		DisplayResolution: input.DisplayResolution,
		RefreshRate:       input.RefreshRate,
		GraphicsType:      input.GraphicsType,
		GraphicsModel:     input.GraphicsModel,
		BatteryLife:       input.BatteryLife,
		Weight:            input.Weight,
		OperatingSystem:   input.OperatingSystem,
		Price:             input.Price,
		InStock:           input.InStock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateLaptop CreateLaptop: %v", err)
		return laptop.Laptop{}, translateDuplicate(err)
	}

	uc.InvalidateSnapshot(ctx)
	return lp, nil
}

func validateLaptop(input laptop.CreateLaptopInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "", input.BrandID == "":
		return laptop.ErrInvalidPayload
	case input.RAMSize <= 0, input.StorageSize <= 0, input.DisplaySize <= 0, input.Weight <= 0:
		return laptop.ErrInvalidPayload
	case input.BatteryLife != nil && *input.BatteryLife < 0:
		return laptop.ErrInvalidPayload
	case input.Price.IsNegative():
		return laptop.ErrInvalidPrice
	}
	return nil
}

func translateDuplicate(err error) error {
	if errors.Is(err, repo.ErrDuplicate) {
		return laptop.ErrDuplicateSlug
	}
	return err
}
