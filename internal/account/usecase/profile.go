package usecase

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"laptopxplorer/internal/account"
	repo "laptopxplorer/internal/account/repository"
	"laptopxplorer/internal/model"
)

// Profile returns the caller's profile, or the defaults when none is saved.
func (uc *implUseCase) Profile(ctx context.Context, sc model.Scope) (account.Profile, error) {
	if sc.UserID == "" {
		return account.Profile{}, account.ErrMissingIdentity
	}
	return uc.profile(ctx, sc.UserID)
}

func (uc *implUseCase) profile(ctx context.Context, userID string) (account.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.profile GetProfile: %v", err)
		return account.Profile{}, err
	}
	if p.UserID == "" {
		return account.DefaultProfile(userID), nil
	}
	return p, nil
}

// UpdateProfile applies the set fields of input over the caller's current
// profile and saves the result.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input account.UpdateProfileInput) (account.Profile, error) {
	if sc.UserID == "" {
		return account.Profile{}, account.ErrMissingIdentity
	}

	p, err := uc.profile(ctx, sc.UserID)
	if err != nil {
		return account.Profile{}, err
	}

	if input.Bio != nil {
		p.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Location != nil {
		p.Location = strings.TrimSpace(*input.Location)
	}
	if input.Website != nil {
		p.Website = strings.TrimSpace(*input.Website)
	}
	if input.NewsletterSubscription != nil {
		p.NewsletterSubscription = *input.NewsletterSubscription
	}
	if input.EmailNotifications != nil {
		p.EmailNotifications = *input.EmailNotifications
	}

	if err := validateProfile(p); err != nil {
		return account.Profile{}, err
	}

	saved, err := uc.repo.UpsertProfile(ctx, repo.UpsertProfileOptions{
		UserID:                 sc.UserID,
		Bio:                    p.Bio,
		Location:               p.Location,
		Website:                p.Website,
		NewsletterSubscription: p.NewsletterSubscription,
		EmailNotifications:     p.EmailNotifications,
		UpdatedAt:              uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile UpsertProfile: %v", err)
		return account.Profile{}, err
	}
	return saved, nil
}

func (uc *implUseCase) EmailOptOuts(ctx context.Context, userIDs []string) (map[string]bool, error) {
	ids, err := uc.repo.ListEmailOptOuts(ctx, userIDs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.EmailOptOuts ListEmailOptOuts: %v", err)
		return nil, err
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func validateProfile(p account.Profile) error {
	if utf8.RuneCountInString(p.Bio) > account.MaxBioLength {
		return account.ErrBioTooLong
	}
	if utf8.RuneCountInString(p.Location) > account.MaxLocationLength {
		return account.ErrLocationTooLong
	}
	if p.Website == "" {
		return nil
	}
	if len(p.Website) > account.MaxWebsiteLength {
		return account.ErrInvalidWebsite
	}
	u, err := url.ParseRequestURI(p.Website)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return account.ErrInvalidWebsite
	}
	return nil
}
