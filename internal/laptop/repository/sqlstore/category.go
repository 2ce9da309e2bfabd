package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/sqldb"
)

// ListCategories returns every category with its number of laptops, ordered by name.
func (r *implRepository) ListCategories(ctx context.Context) ([]laptop.Category, error) {
	const query = `
		SELECT c.id, c.name, c.slug, c.description, c.icon, COUNT(l.id)
		FROM categories c
		LEFT JOIN laptops l ON l.category_id = c.id
		GROUP BY c.id, c.name, c.slug, c.description, c.icon
		ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	categories := []laptop.Category{}
	for rows.Next() {
		var c laptop.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.LaptopCount); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetOneCategory returns a zero-value Category (ID == "") when not found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (laptop.Category, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Slug != "" {
		conditions = append(conditions, "slug = ?")
		args = append(args, opt.Slug)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := `SELECT id, name, slug, description, icon FROM categories WHERE ` +
		strings.Join(conditions, " AND ") + ` LIMIT 1`

	var c laptop.Category
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return laptop.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return laptop.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

// CreateCategory inserts a new category.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (laptop.Category, error) {
	const query = `INSERT INTO categories (id, name, slug, description, icon) VALUES (?, ?, ?, ?, ?)`

	c := laptop.Category{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Slug:        opt.Slug,
		Description: opt.Description,
		Icon:        opt.Icon,
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), c.ID, c.Name, c.Slug, c.Description, c.Icon)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		if sqldb.IsUniqueViolation(err) {
			return laptop.Category{}, repo.ErrDuplicate
		}
		return laptop.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}
