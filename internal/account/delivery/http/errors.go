package http

import (
	"net/http"

	"laptopxplorer/internal/account"
	"laptopxplorer/internal/laptop"
	pkgErrors "laptopxplorer/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case account.ErrMissingIdentity:
		return pkgErrors.ErrUnauthorized
	case account.ErrBioTooLong, account.ErrLocationTooLong, account.ErrInvalidWebsite:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case laptop.ErrLaptopNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "laptop not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
