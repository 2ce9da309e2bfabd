package pricing

import (
	"context"

	"laptopxplorer/pkg/log"
)

// LogNotifier writes triggered alerts to the log instead of mailing them.
type LogNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) LogNotifier {
	return LogNotifier{l: l}
}

func (n LogNotifier) NotifyPriceDrop(ctx context.Context, msg Notification) error {
	n.l.Infof(ctx, "pricing.NotifyPriceDrop: alert=%s user=%s email=%s laptop=%q price=%s target=%s retailer=%s",
		msg.Alert.ID, msg.Alert.UserID, msg.Alert.UserEmail, msg.Laptop.Name,
		msg.Price.StringFixed(2), msg.Alert.TargetPrice.StringFixed(2), msg.Retailer,
	)
	return nil
}
