package usecase

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/pricing"
	repo "laptopxplorer/internal/pricing/repository"
)

var hundred = decimal.NewFromInt(100)

// History returns a laptop's records newest first, each with its change
// from the previous record of the same retailer.
func (uc *implUseCase) History(ctx context.Context, input pricing.HistoryInput) ([]pricing.HistoryEntry, error) {
	if input.Retailer != "" && !pricing.ValidRetailer(input.Retailer) {
		return nil, pricing.ErrInvalidRetailer
	}

	lp, err := uc.laptops.GetBySlug(ctx, input.LaptopSlug)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{LaptopID: lp.ID, Retailer: input.Retailer})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListRecords: %v", err)
		return nil, err
	}

	entries := make([]pricing.HistoryEntry, len(records))
	previous := map[string]decimal.Decimal{}
	for i, rec := range records {
		entry := pricing.HistoryEntry{PriceRecord: rec}
		if prev, ok := previous[rec.Retailer]; ok {
			entry.Change = rec.Price.Sub(prev)
			entry.ChangePercent = percentChange(prev, rec.Price)
		}
		previous[rec.Retailer] = rec.Price
		entries[i] = entry
	}
	slices.Reverse(entries)
	return entries, nil
}

// Trend summarizes a laptop's prices across all retailers. Without any
// record every price is the laptop's current price.
func (uc *implUseCase) Trend(ctx context.Context, slug string) (pricing.Trend, error) {
	lp, err := uc.laptops.GetBySlug(ctx, slug)
	if err != nil {
		return pricing.Trend{}, err
	}

	records, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{LaptopID: lp.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Trend ListRecords: %v", err)
		return pricing.Trend{}, err
	}

	trend := pricing.Trend{
		LaptopID:  lp.ID,
		Current:   lp.Price,
		Lowest:    lp.Price,
		Highest:   lp.Price,
		First:     lp.Price,
		Direction: pricing.DirectionStable,
		Records:   len(records),
	}
	if len(records) == 0 {
		return trend, nil
	}

	trend.First = records[0].Price
	trend.Current = records[len(records)-1].Price
	trend.Lowest, trend.Highest = trend.First, trend.First
	for _, rec := range records[1:] {
		trend.Lowest = decimal.Min(trend.Lowest, rec.Price)
		trend.Highest = decimal.Max(trend.Highest, rec.Price)
	}
	trend.ChangePercent = percentChange(trend.First, trend.Current)

	switch trend.Current.Cmp(trend.First) {
	case 1:
		trend.Direction = pricing.DirectionUp
	case -1:
		trend.Direction = pricing.DirectionDown
	}
	return trend, nil
}

// percentChange is zero when from is not positive.
func percentChange(from, to decimal.Decimal) float64 {
	if !from.IsPositive() {
		return 0
	}
	return to.Sub(from).Div(from).Mul(hundred).Round(2).InexactFloat64()
}
