package repository

import (
	"context"
	"time"

	"laptopxplorer/internal/pricing"
)

//go:generate mockery --name Repository
type Repository interface {
	RecordRepository
	AlertRepository
}

type RecordRepository interface {
	CreateRecord(ctx context.Context, opt CreateRecordOptions) (pricing.PriceRecord, error)
	// ListRecords returns records oldest first.
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]pricing.PriceRecord, error)
}

type AlertRepository interface {
	CreateAlert(ctx context.Context, opt CreateAlertOptions) (pricing.Alert, error)
	// ListAlerts returns alerts newest first.
	ListAlerts(ctx context.Context, opt ListAlertsOptions) ([]pricing.Alert, error)
	GetOneAlert(ctx context.Context, id string) (pricing.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
	MarkNotified(ctx context.Context, ids []string, at time.Time) error
}
