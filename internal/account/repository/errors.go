package repository

import "errors"

var (
	ErrFailedToToggle = errors.New("failed to toggle favorite")
	ErrFailedToList   = errors.New("failed to list favorites")
	ErrFailedToCount  = errors.New("failed to count favorites")
	ErrFailedToGet    = errors.New("failed to get profile")
	ErrFailedToSave   = errors.New("failed to save profile")
)
