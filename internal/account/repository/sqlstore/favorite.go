package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"laptopxplorer/internal/account"
	repo "laptopxplorer/internal/account/repository"
)

func (r *implRepository) ToggleFavorite(ctx context.Context, userID, laptopID string) (bool, error) {
	var favorited bool
	err := r.db.Tx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.db.Rebind(`DELETE FROM favorites WHERE user_id = ? AND laptop_id = ?`),
			userID, laptopID,
		)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil || n > 0 {
			return err
		}

		_, err = tx.ExecContext(ctx,
			r.db.Rebind(`INSERT INTO favorites (user_id, laptop_id, created_at) VALUES (?, ?, ?)`),
			userID, laptopID, time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		favorited = true
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToggleFavorite"), err)
		return false, repo.ErrFailedToToggle
	}
	return favorited, nil
}

func (r *implRepository) ListFavorites(ctx context.Context, opt repo.ListFavoritesOptions) ([]account.Favorite, error) {
	query := `SELECT user_id, laptop_id, created_at FROM favorites WHERE user_id = ? ORDER BY created_at DESC, laptop_id`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFavorites"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	favorites := []account.Favorite{}
	for rows.Next() {
		var f account.Favorite
		if err := rows.Scan(&f.UserID, &f.LaptopID, &f.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFavorites"), err)
			return nil, repo.ErrFailedToList
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *implRepository) CountFavorites(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, r.db.Rebind(`SELECT COUNT(*) FROM favorites WHERE user_id = ?`), userID).Scan(&n)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountFavorites"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}
