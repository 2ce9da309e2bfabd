package review

import "errors"

var (
	ErrInvalidScore    = errors.New("score must be between 1 and 5")
	ErrCommentTooLong  = errors.New("comment is too long")
	ErrMissingIdentity = errors.New("reviewer identity is required")
)
