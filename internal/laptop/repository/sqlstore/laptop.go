package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/sqldb"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLaptop(s rowScanner) (laptop.Laptop, error) {
	var (
		lp      laptop.Laptop
		battery sql.NullFloat64
	)
	err := s.Scan(
		&lp.ID, &lp.Name, &lp.Slug,
		&lp.BrandID, &lp.BrandName, &lp.BrandSlug,
		&lp.CategoryID, &lp.CategoryName, &lp.CategorySlug,
		&lp.ProcessorID, &lp.ProcessorName,
		&lp.ModelNumber, &lp.Description, &lp.ImageURL,
		&lp.RAMSize, &lp.RAMType, &lp.StorageSize, &lp.StorageType,
		&lp.DisplaySize, &lp.DisplayResolution, &lp.RefreshRate,
		&lp.GraphicsType, &lp.GraphicsModel, &battery, &lp.Weight,
		&lp.OperatingSystem, &lp.Price, &lp.InStock, &lp.Views,
		&lp.CreatedAt, &lp.UpdatedAt,
	)
	if err != nil {
		return laptop.Laptop{}, err
	}
	if battery.Valid {
		hours := battery.Float64
		lp.BatteryLife = &hours
	}
	return lp, nil
}

func (r *implRepository) queryLaptops(ctx context.Context, query string, args ...any) ([]laptop.Laptop, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	laptops := []laptop.Laptop{}
	for rows.Next() {
		lp, err := scanLaptop(rows)
		if err != nil {
			return nil, err
		}
		laptops = append(laptops, lp)
	}
	return laptops, rows.Err()
}

// ListLaptops returns every laptop matching opt, newest first.
func (r *implRepository) ListLaptops(ctx context.Context, opt repo.ListLaptopsOptions) ([]laptop.Laptop, error) {
	mods, args := r.buildListQuery(opt)
	laptops, err := r.queryLaptops(ctx, fmt.Sprintf("%s %s", laptopSelect, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLaptops"), err)
		return nil, repo.ErrFailedToList
	}
	return laptops, nil
}

// GetOneLaptop returns a zero-value Laptop (ID == "") when not found.
func (r *implRepository) GetOneLaptop(ctx context.Context, opt repo.GetOneLaptopOptions) (laptop.Laptop, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", laptopSelect, mods)

	lp, err := scanLaptop(r.db.QueryRowContext(ctx, r.db.Rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return laptop.Laptop{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneLaptop"), err)
		return laptop.Laptop{}, repo.ErrFailedToGet
	}
	return lp, nil
}

// GetLaptopsByIDs returns the laptops that exist among ids, in no particular order.
func (r *implRepository) GetLaptopsByIDs(ctx context.Context, ids []string) ([]laptop.Laptop, error) {
	if len(ids) == 0 {
		return []laptop.Laptop{}, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := fmt.Sprintf("%s WHERE l.id IN (%s)", laptopSelect, sqldb.Placeholders(len(ids)))

	laptops, err := r.queryLaptops(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLaptopsByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return laptops, nil
}

// CreateLaptop inserts a new laptop and returns it with its joined names.
func (r *implRepository) CreateLaptop(ctx context.Context, opt repo.CreateLaptopOptions) (laptop.Laptop, error) {
	const query = `
		INSERT INTO laptops (
			id, name, slug, brand_id, category_id, processor_id,
			model_number, description, image_url,
			ram_size, ram_type, storage_size, storage_type,
			display_size, display_resolution, refresh_rate,
			graphics_type, graphics_model, battery_life, weight,
			operating_system, price, in_stock, views, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		id, opt.Name, opt.Slug, opt.BrandID, sqldb.NullString(opt.CategoryID), sqldb.NullString(opt.ProcessorID),
		opt.ModelNumber, opt.Description, opt.ImageURL,
		opt.RAMSize, opt.RAMType, opt.StorageSize, opt.StorageType,
		opt.DisplaySize, opt.DisplayResolution, opt.RefreshRate,
		opt.GraphicsType, opt.GraphicsModel, opt.BatteryLife, opt.Weight,
		opt.OperatingSystem, opt.Price, opt.InStock, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLaptop"), err)
		if sqldb.IsUniqueViolation(err) {
			return laptop.Laptop{}, repo.ErrDuplicate
		}
		return laptop.Laptop{}, repo.ErrFailedToInsert
	}

	return r.GetOneLaptop(ctx, repo.GetOneLaptopOptions{ID: id})
}

// UpdatePrice sets the current price of a laptop.
func (r *implRepository) UpdatePrice(ctx context.Context, opt repo.UpdatePriceOptions) error {
	const query = `UPDATE laptops SET price = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), opt.Price, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePrice"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// IncrementViews bumps the view counter in a single statement so concurrent
// requests never lose an increment.
func (r *implRepository) IncrementViews(ctx context.Context, id string) error {
	const query = `UPDATE laptops SET views = views + 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementViews"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
