package usecase

import (
	"context"

	"laptopxplorer/internal/model"
	"laptopxplorer/internal/pricing"
	repo "laptopxplorer/internal/pricing/repository"
)

// Record stores an observed price. An in-stock price also becomes the
// laptop's current price and is checked against active alerts.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input pricing.RecordInput) (pricing.PriceRecord, error) {
	if sc.UserID == "" {
		return pricing.PriceRecord{}, pricing.ErrMissingIdentity
	}
	if !sc.IsAdmin() {
		return pricing.PriceRecord{}, pricing.ErrForbidden
	}
	if !input.Price.IsPositive() {
		return pricing.PriceRecord{}, pricing.ErrInvalidPrice
	}
	retailer := input.Retailer
	if retailer == "" {
		retailer = pricing.DefaultRetailer
	}
	if !pricing.ValidRetailer(retailer) {
		return pricing.PriceRecord{}, pricing.ErrInvalidRetailer
	}

	lp, err := uc.laptops.GetBySlug(ctx, input.LaptopSlug)
	if err != nil {
		return pricing.PriceRecord{}, err
	}

	rec, err := uc.repo.CreateRecord(ctx, repo.CreateRecordOptions{
		LaptopID:    lp.ID,
		Price:       input.Price,
		Retailer:    retailer,
		RetailerURL: input.RetailerURL,
		InStock:     input.InStock,
		RecordedAt:  uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateRecord: %v", err)
		return pricing.PriceRecord{}, err
	}

	if !rec.InStock {
		return rec, nil
	}

	// The record is already stored, so a failed update is logged, not returned.
	if err := uc.laptops.UpdatePrice(ctx, lp.ID, rec.Price); err != nil {
		uc.l.Errorf(ctx, "uc.Record UpdatePrice %s: %v", rec.ID, err)
	} else {
		lp.Price = rec.Price
	}

	if _, err := uc.CheckAlerts(ctx, lp, rec.Price, rec.Retailer); err != nil {
		// The price is stored; alerts are re-checked on the next record.
		uc.l.Warnf(ctx, "uc.Record CheckAlerts: %v", err)
	}
	return rec, nil
}
