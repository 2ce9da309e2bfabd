package laptop

import "errors"

var (
	ErrLaptopNotFound = errors.New("laptop not found")
	ErrBrandNotFound  = errors.New("brand not found")
	ErrCompareCount   = errors.New("compare needs between 2 and 4 laptops")
	ErrInvalidPrice   = errors.New("price must not be negative")
	ErrDuplicateSlug  = errors.New("slug already exists")
	ErrInvalidPayload = errors.New("invalid payload")
)
