package sqlstore

import (
	"context"

	"github.com/google/uuid"

	"laptopxplorer/internal/pricing"
	repo "laptopxplorer/internal/pricing/repository"
)

func (r *implRepository) CreateRecord(ctx context.Context, opt repo.CreateRecordOptions) (pricing.PriceRecord, error) {
	const query = `
		INSERT INTO price_history (id, laptop_id, price, retailer, retailer_url, in_stock, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	rec := pricing.PriceRecord{
		ID:          uuid.NewString(),
		LaptopID:    opt.LaptopID,
		Price:       opt.Price,
		Retailer:    opt.Retailer,
		RetailerURL: opt.RetailerURL,
		InStock:     opt.InStock,
		RecordedAt:  opt.RecordedAt.UTC(),
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		rec.ID, rec.LaptopID, rec.Price, rec.Retailer, rec.RetailerURL, rec.InStock, rec.RecordedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRecord"), err)
		return pricing.PriceRecord{}, repo.ErrFailedToInsert
	}
	return rec, nil
}

func (r *implRepository) ListRecords(ctx context.Context, opt repo.ListRecordsOptions) ([]pricing.PriceRecord, error) {
	query := `
		SELECT id, laptop_id, price, retailer, retailer_url, in_stock, recorded_at
		FROM price_history
		WHERE laptop_id = ?`
	args := []any{opt.LaptopID}
	if opt.Retailer != "" {
		query += " AND retailer = ?"
		args = append(args, opt.Retailer)
	}
	query += " ORDER BY recorded_at, id"

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecords"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	records := []pricing.PriceRecord{}
	for rows.Next() {
		var rec pricing.PriceRecord
		if err := rows.Scan(
			&rec.ID, &rec.LaptopID, &rec.Price, &rec.Retailer, &rec.RetailerURL, &rec.InStock, &rec.RecordedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecords"), err)
			return nil, repo.ErrFailedToList
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
