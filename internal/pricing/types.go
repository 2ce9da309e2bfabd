package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"laptopxplorer/internal/laptop"
)

const (
	RetailerAmazon  = "amazon"
	RetailerBestBuy = "bestbuy"
	RetailerNewegg  = "newegg"
	RetailerWalmart = "walmart"
	RetailerDirect  = "direct"
	RetailerOther   = "other"

	DefaultRetailer = RetailerDirect
)

// Retailers lists every retailer a price can be recorded for.
var Retailers = []string{
	RetailerAmazon, RetailerBestBuy, RetailerNewegg, RetailerWalmart, RetailerDirect, RetailerOther,
}

// ValidRetailer reports whether r is one of Retailers.
func ValidRetailer(r string) bool {
	for _, known := range Retailers {
		if r == known {
			return true
		}
	}
	return false
}

const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStable = "stable"
)

// PriceRecord is one observed price of a laptop at a retailer.
type PriceRecord struct {
	ID          string
	LaptopID    string
	Price       decimal.Decimal
	Retailer    string
	RetailerURL string
	InStock     bool
	RecordedAt  time.Time
}

// HistoryEntry is a record with its change from the previous record of the
// same retailer. Both are zero for a retailer's first record.
type HistoryEntry struct {
	PriceRecord
	Change        decimal.Decimal
	ChangePercent float64
}

// Trend summarizes every record of a laptop across retailers.
type Trend struct {
	LaptopID      string
	Current       decimal.Decimal
	Lowest        decimal.Decimal
	Highest       decimal.Decimal
	First         decimal.Decimal
	ChangePercent float64
	Direction     string
	Records       int
}

// Alert asks to be told when a laptop's price drops to TargetPrice or below.
// An empty Retailer matches every retailer.
type Alert struct {
	ID           string
	UserID       string
	UserEmail    string
	LaptopID     string
	LaptopName   string
	LaptopSlug   string
	TargetPrice  decimal.Decimal
	Retailer     string
	Active       bool
	CreatedAt    time.Time
	LastNotified *time.Time
}

// Notification is handed to the Notifier for every triggered alert.
type Notification struct {
	Alert    Alert
	Laptop   laptop.Laptop
	Price    decimal.Decimal
	Retailer string
}

// --- UseCase Inputs ---

type RecordInput struct {
	LaptopSlug  string
	Price       decimal.Decimal
	Retailer    string
	RetailerURL string
	InStock     bool
}

type HistoryInput struct {
	LaptopSlug string
	Retailer   string
}

type CreateAlertInput struct {
	LaptopID    string
	TargetPrice decimal.Decimal
	Retailer    string
}
