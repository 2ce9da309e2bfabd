package http

import (
	"net/http"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/review"
	pkgErrors "laptopxplorer/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case review.ErrInvalidScore, review.ErrCommentTooLong:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case review.ErrMissingIdentity:
		return pkgErrors.ErrUnauthorized
	case laptop.ErrLaptopNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "laptop not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
