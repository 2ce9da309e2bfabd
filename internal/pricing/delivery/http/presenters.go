package http

import (
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/pricing"
)

// --- Request DTOs ---

type recordReq struct {
	Slug        string          `json:"-"`
	Price       decimal.Decimal `json:"price"`
	Retailer    string          `json:"retailer"`
	RetailerURL string          `json:"retailer_url" binding:"omitempty,url"`
	InStock     *bool           `json:"in_stock"`
}

// toInput treats a missing in_stock as true.
func (r recordReq) toInput() pricing.RecordInput {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return pricing.RecordInput{
		LaptopSlug:  r.Slug,
		Price:       r.Price,
		Retailer:    r.Retailer,
		RetailerURL: r.RetailerURL,
		InStock:     inStock,
	}
}

type historyReq struct {
	Slug     string `form:"-"`
	Retailer string `form:"retailer"`
}

func (r historyReq) toInput() pricing.HistoryInput {
	return pricing.HistoryInput{LaptopSlug: r.Slug, Retailer: r.Retailer}
}

type createAlertReq struct {
	LaptopID    string          `json:"laptop_id"    binding:"required"`
	TargetPrice decimal.Decimal `json:"target_price"`
	Retailer    string          `json:"retailer"`
}

func (r createAlertReq) toInput() pricing.CreateAlertInput {
	return pricing.CreateAlertInput{LaptopID: r.LaptopID, TargetPrice: r.TargetPrice, Retailer: r.Retailer}
}

// --- Response DTOs ---

type recordResp struct {
	ID          string          `json:"id"`
	LaptopID    string          `json:"laptop_id"`
	Price       decimal.Decimal `json:"price"`
	Retailer    string          `json:"retailer"`
	RetailerURL string          `json:"retailer_url,omitempty"`
	InStock     bool            `json:"in_stock"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

func newRecordResp(rec pricing.PriceRecord) recordResp {
	return recordResp{
		ID:          rec.ID,
		LaptopID:    rec.LaptopID,
		Price:       rec.Price,
		Retailer:    rec.Retailer,
		RetailerURL: rec.RetailerURL,
		InStock:     rec.InStock,
		RecordedAt:  rec.RecordedAt,
	}
}

type historyEntryResp struct {
	recordResp
	PriceChange           decimal.Decimal `json:"price_change"`
	PriceChangePercentage float64         `json:"price_change_percentage"`
}

func newHistoryResp(entries []pricing.HistoryEntry) []historyEntryResp {
	out := make([]historyEntryResp, len(entries))
	for i, e := range entries {
		out[i] = historyEntryResp{
			recordResp:            newRecordResp(e.PriceRecord),
			PriceChange:           e.Change,
			PriceChangePercentage: e.ChangePercent,
		}
	}
	return out
}

type trendResp struct {
	LaptopID         string          `json:"laptop_id"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	LowestPrice      decimal.Decimal `json:"lowest_price"`
	HighestPrice     decimal.Decimal `json:"highest_price"`
	FirstPrice       decimal.Decimal `json:"first_price"`
	ChangePercentage float64         `json:"change_percentage"`
	Direction        string          `json:"direction"`
	Records          int             `json:"records"`
}

func newTrendResp(t pricing.Trend) trendResp {
	return trendResp{
		LaptopID:         t.LaptopID,
		CurrentPrice:     t.Current,
		LowestPrice:      t.Lowest,
		HighestPrice:     t.Highest,
		FirstPrice:       t.First,
		ChangePercentage: t.ChangePercent,
		Direction:        t.Direction,
		Records:          t.Records,
	}
}

type alertResp struct {
	ID           string          `json:"id"`
	LaptopID     string          `json:"laptop_id"`
	LaptopName   string          `json:"laptop_name"`
	LaptopSlug   string          `json:"laptop_slug"`
	TargetPrice  decimal.Decimal `json:"target_price"`
	Retailer     string          `json:"retailer"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	LastNotified *time.Time      `json:"last_notified"`
}

func newAlertResp(a pricing.Alert) alertResp {
	return alertResp{
		ID:           a.ID,
		LaptopID:     a.LaptopID,
		LaptopName:   a.LaptopName,
		LaptopSlug:   a.LaptopSlug,
		TargetPrice:  a.TargetPrice,
		Retailer:     a.Retailer,
		Active:       a.Active,
		CreatedAt:    a.CreatedAt,
		LastNotified: a.LastNotified,
	}
}

func newAlertResps(alerts []pricing.Alert) []alertResp {
	out := make([]alertResp, len(alerts))
	for i, a := range alerts {
		out[i] = newAlertResp(a)
	}
	return out
}
