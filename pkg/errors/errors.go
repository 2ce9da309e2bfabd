package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is an error that knows which status code it maps to.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

// ValidationErrors is a field-scoped list of rejected inputs.
// A nil or empty list means every field was accepted.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Add appends a validation error for field.
func (es *ValidationErrors) Add(field, value, reason string) {
	*es = append(*es, ValidationError{Field: field, Value: value, Reason: reason})
}

// HasField reports whether field has at least one error.
func (es ValidationErrors) HasField(field string) bool {
	for _, e := range es {
		if e.Field == field {
			return true
		}
	}
	return false
}
