package http

import (
	"net/http"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/pricing"
	pkgErrors "laptopxplorer/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case pricing.ErrInvalidPrice, pricing.ErrInvalidTarget, pricing.ErrInvalidRetailer:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case pricing.ErrAlertExists:
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case pricing.ErrAlertNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case laptop.ErrLaptopNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "laptop not found")
	case pricing.ErrMissingIdentity:
		return pkgErrors.ErrUnauthorized
	case pricing.ErrForbidden:
		return pkgErrors.ErrForbidden
	default:
		return pkgErrors.ErrInternalServerError
	}
}
