package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRecordOptions struct {
	LaptopID    string
	Price       decimal.Decimal
	Retailer    string
	RetailerURL string
	InStock     bool
	RecordedAt  time.Time
}

// ListRecordsOptions filters a laptop's records. Empty Retailer means all.
type ListRecordsOptions struct {
	LaptopID string
	Retailer string
}

type CreateAlertOptions struct {
	UserID      string
	UserEmail   string
	LaptopID    string
	TargetPrice decimal.Decimal
	Retailer    string
}

// ListAlertsOptions filters alerts. Non-empty fields are AND-ed.
type ListAlertsOptions struct {
	UserID     string
	LaptopID   string
	ActiveOnly bool
}
