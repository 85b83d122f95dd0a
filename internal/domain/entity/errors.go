package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base lookup failure. The usecase packages define
// entity-specific sentinels (article, comment, user) for their handlers.
var ErrNotFound = errors.New("entity not found")

// ValidationError reports which field of an article, comment or user
// failed validation. Handlers map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
