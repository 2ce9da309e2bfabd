package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Price history
	Record(ctx context.Context, sc model.Scope, input RecordInput) (PriceRecord, error)
	History(ctx context.Context, input HistoryInput) ([]HistoryEntry, error)
	Trend(ctx context.Context, slug string) (Trend, error)

	// Alerts
	CreateAlert(ctx context.Context, sc model.Scope, input CreateAlertInput) (Alert, error)
	ListAlerts(ctx context.Context, sc model.Scope) ([]Alert, error)
	DeleteAlert(ctx context.Context, sc model.Scope, id string) error
	CheckAlerts(ctx context.Context, lp laptop.Laptop, price decimal.Decimal, retailer string) (int, error)
}

// LaptopCatalog is the part of the catalog the pricing domain reads and
// updates.
type LaptopCatalog interface {
	GetBySlug(ctx context.Context, slug string) (laptop.Laptop, error)
	GetByIDs(ctx context.Context, ids []string) ([]laptop.Laptop, error)
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
}

// Preferences reports which users turned email notifications off.
type Preferences interface {
	EmailOptOuts(ctx context.Context, userIDs []string) (map[string]bool, error)
}

// Notifier delivers triggered price alerts.
type Notifier interface {
	NotifyPriceDrop(ctx context.Context, n Notification) error
}
