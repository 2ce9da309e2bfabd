package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/sqldb"
)

// ListBrands returns every brand with its number of laptops, ordered by name.
func (r *implRepository) ListBrands(ctx context.Context) ([]laptop.Brand, error) {
	const query = `
		SELECT b.id, b.name, b.slug, b.website, b.description, b.created_at, COUNT(l.id)
		FROM brands b
		LEFT JOIN laptops l ON l.brand_id = b.id
		GROUP BY b.id, b.name, b.slug, b.website, b.description, b.created_at
		ORDER BY b.name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBrands"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	brands := []laptop.Brand{}
	for rows.Next() {
		var b laptop.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Website, &b.Description, &b.CreatedAt, &b.LaptopCount); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBrands"), err)
			return nil, repo.ErrFailedToList
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// GetOneBrand returns a zero-value Brand (ID == "") when not found.
func (r *implRepository) GetOneBrand(ctx context.Context, opt repo.GetOneBrandOptions) (laptop.Brand, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "b.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Slug != "" {
		conditions = append(conditions, "b.slug = ?")
		args = append(args, opt.Slug)
	}
	if opt.Name != "" {
		conditions = append(conditions, "b.name = ?")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := `
		SELECT b.id, b.name, b.slug, b.website, b.description, b.created_at,
			(SELECT COUNT(*) FROM laptops l WHERE l.brand_id = b.id)
		FROM brands b
		WHERE ` + strings.Join(conditions, " AND ") + ` LIMIT 1`

	var b laptop.Brand
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(
		&b.ID, &b.Name, &b.Slug, &b.Website, &b.Description, &b.CreatedAt, &b.LaptopCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return laptop.Brand{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBrand"), err)
		return laptop.Brand{}, repo.ErrFailedToGet
	}
	return b, nil
}

// CreateBrand inserts a new brand.
func (r *implRepository) CreateBrand(ctx context.Context, opt repo.CreateBrandOptions) (laptop.Brand, error) {
	const query = `
		INSERT INTO brands (id, name, slug, website, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	b := laptop.Brand{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Slug:        opt.Slug,
		Website:     opt.Website,
		Description: opt.Description,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), b.ID, b.Name, b.Slug, b.Website, b.Description, b.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBrand"), err)
		if sqldb.IsUniqueViolation(err) {
			return laptop.Brand{}, repo.ErrDuplicate
		}
		return laptop.Brand{}, repo.ErrFailedToInsert
	}
	return b, nil
}
