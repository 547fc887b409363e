package booking

import "errors"

var (
	ErrNotFound        = errors.New("booking not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)
