package repository

import "errors"

var (
	ErrDuplicate         = errors.New("duplicate record")
	ErrFailedToInsert    = errors.New("failed to insert record")
	ErrFailedToGet       = errors.New("failed to get record")
	ErrFailedToList      = errors.New("failed to list records")
	ErrFailedToIncrement = errors.New("failed to increment views")
)
