package http

import (
	"net/http"

	"laptopxplorer/internal/laptop"
	pkgErrors "laptopxplorer/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case laptop.ErrLaptopNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "laptop not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
