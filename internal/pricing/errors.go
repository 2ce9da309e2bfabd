package pricing

import "errors"

var (
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidTarget   = errors.New("target price must be greater than zero")
	ErrInvalidRetailer = errors.New("unknown retailer")
	ErrAlertExists     = errors.New("an alert for this laptop and retailer already exists")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrMissingIdentity = errors.New("user identity is required")
	ErrForbidden       = errors.New("admin role required")
)
