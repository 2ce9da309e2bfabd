package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"laptopxplorer/internal/pricing"
	repo "laptopxplorer/internal/pricing/repository"
	"laptopxplorer/pkg/sqldb"
)

const alertSelect = `
	SELECT a.id, a.user_id, a.user_email, a.laptop_id, l.name, l.slug,
		a.target_price, a.retailer, a.active, a.created_at, a.last_notified
	FROM price_alerts a
	JOIN laptops l ON l.id = a.laptop_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(s rowScanner) (pricing.Alert, error) {
	var (
		a        pricing.Alert
		notified sql.NullTime
	)
	if err := s.Scan(
		&a.ID, &a.UserID, &a.UserEmail, &a.LaptopID, &a.LaptopName, &a.LaptopSlug,
		&a.TargetPrice, &a.Retailer, &a.Active, &a.CreatedAt, &notified,
	); err != nil {
		return pricing.Alert{}, err
	}
	if notified.Valid {
		t := notified.Time
		a.LastNotified = &t
	}
	return a, nil
}

func (r *implRepository) CreateAlert(ctx context.Context, opt repo.CreateAlertOptions) (pricing.Alert, error) {
	const query = `
		INSERT INTO price_alerts (id, user_id, user_email, laptop_id, target_price, retailer, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		id, opt.UserID, opt.UserEmail, opt.LaptopID, opt.TargetPrice, opt.Retailer, true, time.Now().UTC(),
	)
	if err != nil {
		if sqldb.IsUniqueViolation(err) {
			return pricing.Alert{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAlert"), err)
		return pricing.Alert{}, repo.ErrFailedToInsert
	}

	a, err := r.GetOneAlert(ctx, id)
	if err != nil {
		return pricing.Alert{}, err
	}
	return a, nil
}

func (r *implRepository) ListAlerts(ctx context.Context, opt repo.ListAlertsOptions) ([]pricing.Alert, error) {
	var conditions []string
	var args []any
	if opt.UserID != "" {
		conditions = append(conditions, "a.user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.LaptopID != "" {
		conditions = append(conditions, "a.laptop_id = ?")
		args = append(args, opt.LaptopID)
	}
	if opt.ActiveOnly {
		conditions = append(conditions, "a.active = ?")
		args = append(args, true)
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY a.created_at DESC, a.id", alertSelect, where)
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAlerts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	alerts := []pricing.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAlerts"), err)
			return nil, repo.ErrFailedToList
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// GetOneAlert returns a zero Alert when id is unknown.
func (r *implRepository) GetOneAlert(ctx context.Context, id string) (pricing.Alert, error) {
	row := r.db.QueryRowContext(ctx, r.db.Rebind(alertSelect+" WHERE a.id = ?"), id)
	a, err := scanAlert(row)
	if err == sql.ErrNoRows {
		return pricing.Alert{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAlert"), err)
		return pricing.Alert{}, repo.ErrFailedToGet
	}
	return a, nil
}

func (r *implRepository) DeleteAlert(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM price_alerts WHERE id = ?`), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAlert"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) MarkNotified(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE price_alerts SET last_notified = ? WHERE id IN (%s)`, sqldb.Placeholders(len(ids)))
	args := make([]any, 0, len(ids)+1)
	args = append(args, at.UTC())
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkNotified"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
