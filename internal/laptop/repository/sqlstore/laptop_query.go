package sqlstore

import (
	"strings"

	repo "laptopxplorer/internal/laptop/repository"
)

const laptopSelect = `
	SELECT l.id, l.name, l.slug,
		l.brand_id, b.name, b.slug,
		COALESCE(l.category_id, ''), COALESCE(c.name, ''), COALESCE(c.slug, ''),
		COALESCE(l.processor_id, ''), COALESCE(p.name, ''),
		l.model_number, l.description, l.image_url,
		l.ram_size, l.ram_type, l.storage_size, l.storage_type,
		l.display_size, l.display_resolution, l.refresh_rate,
		l.graphics_type, l.graphics_model, l.battery_life, l.weight,
		l.operating_system, l.price, l.in_stock, l.views,
		l.created_at, l.updated_at
	FROM laptops l
	JOIN brands b ON b.id = l.brand_id
	LEFT JOIN categories c ON c.id = l.category_id
	LEFT JOIN processors p ON p.id = l.processor_id`

// buildGetOneQuery builds WHERE clause + args for GetOneLaptop.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneLaptopOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "l.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Slug != "" {
		conditions = append(conditions, "l.slug = ?")
		args = append(args, opt.Slug)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListLaptops.
func (r *implRepository) buildListQuery(opt repo.ListLaptopsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.InStockOnly {
		conditions = append(conditions, "l.in_stock = ?")
		args = append(args, true)
	}
	if opt.BrandID != "" {
		conditions = append(conditions, "l.brand_id = ?")
		args = append(args, opt.BrandID)
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY l.created_at DESC, l.id")

	return strings.Join(parts, " "), args
}
