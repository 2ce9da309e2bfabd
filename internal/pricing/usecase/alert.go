package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/internal/pricing"
	repo "laptopxplorer/internal/pricing/repository"
)

func (uc *implUseCase) CreateAlert(ctx context.Context, sc model.Scope, input pricing.CreateAlertInput) (pricing.Alert, error) {
	if sc.UserID == "" {
		return pricing.Alert{}, pricing.ErrMissingIdentity
	}
	if !input.TargetPrice.IsPositive() {
		return pricing.Alert{}, pricing.ErrInvalidTarget
	}
	if input.Retailer != "" && !pricing.ValidRetailer(input.Retailer) {
		return pricing.Alert{}, pricing.ErrInvalidRetailer
	}

	found, err := uc.laptops.GetByIDs(ctx, []string{input.LaptopID})
	if err != nil {
		return pricing.Alert{}, err
	}
	if len(found) == 0 {
		return pricing.Alert{}, laptop.ErrLaptopNotFound
	}

	a, err := uc.repo.CreateAlert(ctx, repo.CreateAlertOptions{
		UserID:      sc.UserID,
		UserEmail:   sc.Email,
		LaptopID:    input.LaptopID,
		TargetPrice: input.TargetPrice,
		Retailer:    input.Retailer,
	})
	if err == repo.ErrDuplicate {
		return pricing.Alert{}, pricing.ErrAlertExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateAlert CreateAlert: %v", err)
		return pricing.Alert{}, err
	}
	return a, nil
}

func (uc *implUseCase) ListAlerts(ctx context.Context, sc model.Scope) ([]pricing.Alert, error) {
	if sc.UserID == "" {
		return nil, pricing.ErrMissingIdentity
	}
	alerts, err := uc.repo.ListAlerts(ctx, repo.ListAlertsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAlerts ListAlerts: %v", err)
		return nil, err
	}
	return alerts, nil
}

// DeleteAlert removes one of the caller's alerts. Alerts of other users are
// reported as not found.
func (uc *implUseCase) DeleteAlert(ctx context.Context, sc model.Scope, id string) error {
	if sc.UserID == "" {
		return pricing.ErrMissingIdentity
	}

	a, err := uc.repo.GetOneAlert(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAlert GetOneAlert: %v", err)
		return err
	}
	if a.ID == "" || a.UserID != sc.UserID {
		return pricing.ErrAlertNotFound
	}

	if err := uc.repo.DeleteAlert(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAlert DeleteAlert: %v", err)
		return err
	}
	return nil
}

// CheckAlerts notifies every active alert on lp whose retailer is empty or
// equal to retailer and whose target is at or above price, skipping users who
// turned email notifications off. Returns how many alerts were notified.
func (uc *implUseCase) CheckAlerts(ctx context.Context, lp laptop.Laptop, price decimal.Decimal, retailer string) (int, error) {
	alerts, err := uc.repo.ListAlerts(ctx, repo.ListAlertsOptions{LaptopID: lp.ID, ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckAlerts ListAlerts: %v", err)
		return 0, err
	}

	var triggered []pricing.Alert
	for _, a := range alerts {
		if a.Retailer != "" && a.Retailer != retailer {
			continue
		}
		if a.TargetPrice.LessThan(price) {
			continue
		}
		triggered = append(triggered, a)
	}
	if len(triggered) == 0 {
		return 0, nil
	}

	optedOut, err := uc.prefs.EmailOptOuts(ctx, alertUsers(triggered))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckAlerts EmailOptOuts: %v", err)
		return 0, err
	}

	var notified []string
	for _, a := range triggered {
		if optedOut[a.UserID] {
			continue
		}

		err := uc.notifier.NotifyPriceDrop(ctx, pricing.Notification{
			Alert:    a,
			Laptop:   lp,
			Price:    price,
			Retailer: retailer,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.CheckAlerts NotifyPriceDrop %s: %v", a.ID, err)
			continue
		}
		notified = append(notified, a.ID)
	}

	if err := uc.repo.MarkNotified(ctx, notified, uc.now()); err != nil {
		uc.l.Errorf(ctx, "uc.CheckAlerts MarkNotified: %v", err)
		return len(notified), err
	}
	return len(notified), nil
}

func alertUsers(alerts []pricing.Alert) []string {
	seen := make(map[string]bool, len(alerts))
	var out []string
	for _, a := range alerts {
		if !seen[a.UserID] {
			seen[a.UserID] = true
			out = append(out, a.UserID)
		}
	}
	return out
}
