package errors_test

import (
	"errors"
	"net/http"
	"testing"

	pkgErrors "laptopxplorer/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "duplicate")
	if err.Error() != "duplicate" {
		t.Errorf("unexpected message %q", err.Error())
	}

	var wrapped error = err
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Code != http.StatusConflict {
		t.Errorf("expected errors.As to find HTTPError with 409")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs pkgErrors.ValidationErrors
	if errs.HasField("ram") {
		t.Fatal("empty list should not have fields")
	}

	errs.Add("ram", "abc", "must be an integer")
	errs.Add("min_price", "x", "must be a decimal number")

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if !errs.HasField("ram") || errs.HasField("page") {
		t.Errorf("HasField mismatch")
	}
	want := `ram: must be an integer (got "abc"); min_price: must be a decimal number (got "x")`
	if errs.Error() != want {
		t.Errorf("unexpected Error():\n got %s\nwant %s", errs.Error(), want)
	}
}
