package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"laptopxplorer/internal/account"
	repo "laptopxplorer/internal/account/repository"
	"laptopxplorer/pkg/sqldb"
)

const profileColumns = `user_id, bio, location, website, newsletter_subscription, email_notifications, updated_at`

func (r *implRepository) GetProfile(ctx context.Context, userID string) (account.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		r.db.Rebind(`SELECT `+profileColumns+` FROM profiles WHERE user_id = ?`), userID)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return account.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return account.Profile{}, repo.ErrFailedToGet
	}
	return p, nil
}

func (r *implRepository) UpsertProfile(ctx context.Context, opt repo.UpsertProfileOptions) (account.Profile, error) {
	const query = `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = excluded.bio,
			location = excluded.location,
			website = excluded.website,
			newsletter_subscription = excluded.newsletter_subscription,
			email_notifications = excluded.email_notifications,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		opt.UserID, opt.Bio, opt.Location, opt.Website,
		opt.NewsletterSubscription, opt.EmailNotifications, opt.UpdatedAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProfile"), err)
		return account.Profile{}, repo.ErrFailedToSave
	}

	return account.Profile{
		UserID:                 opt.UserID,
		Bio:                    opt.Bio,
		Location:               opt.Location,
		Website:                opt.Website,
		NewsletterSubscription: opt.NewsletterSubscription,
		EmailNotifications:     opt.EmailNotifications,
		UpdatedAt:              opt.UpdatedAt.UTC(),
	}, nil
}

func (r *implRepository) ListEmailOptOuts(ctx context.Context, userIDs []string) ([]string, error) {
	if len(userIDs) == 0 {
		return []string{}, nil
	}

	query := fmt.Sprintf(`SELECT user_id FROM profiles WHERE email_notifications = ? AND user_id IN (%s)`,
		sqldb.Placeholders(len(userIDs)))
	args := make([]any, 0, len(userIDs)+1)
	args = append(args, false)
	for _, id := range userIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEmailOptOuts"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEmailOptOuts"), err)
			return nil, repo.ErrFailedToGet
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func scanProfile(row *sql.Row) (account.Profile, error) {
	var p account.Profile
	err := row.Scan(&p.UserID, &p.Bio, &p.Location, &p.Website,
		&p.NewsletterSubscription, &p.EmailNotifications, &p.UpdatedAt)
	return p, err
}
