package http

import (
	"net/http"

	"laptopxplorer/internal/laptop"
	pkgErrors "laptopxplorer/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case laptop.ErrLaptopNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "laptop not found")
	case laptop.ErrBrandNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "brand not found")
	case laptop.ErrCompareCount:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
