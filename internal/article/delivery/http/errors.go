package http

import (
	"net/http"

	"laptopxplorer/internal/article"
	"laptopxplorer/internal/laptop"
	pkgErrors "laptopxplorer/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case article.ErrInvalidTitle, article.ErrInvalidSlug, article.ErrExcerptTooLong, article.ErrInvalidReadTime:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case article.ErrDuplicateSlug:
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case article.ErrArticleNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case laptop.ErrLaptopNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "laptop not found")
	case article.ErrMissingIdentity:
		return pkgErrors.ErrUnauthorized
	case article.ErrForbidden:
		return pkgErrors.ErrForbidden
	default:
		return pkgErrors.ErrInternalServerError
	}
}
