package account

import "errors"

var (
	ErrMissingIdentity = errors.New("user identity is required")
	ErrBioTooLong      = errors.New("bio is too long")
	ErrLocationTooLong = errors.New("location is too long")
	ErrInvalidWebsite  = errors.New("website must be an http or https URL")
)
