package listing

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("listing not found")

// ValidationError carries the per-field violations of a create or update.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}
