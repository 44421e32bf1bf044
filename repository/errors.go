package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the requested id has no row.
	ErrNotFound = errors.New("record not found")
	// ErrValidation marks a request that violates a required-field or
	// referential rule. Nothing is written when it is returned.
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable wraps every other database failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// translate maps gorm errors onto the package taxonomy. Errors already in the
// taxonomy pass through untouched.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrStoreUnavailable):
		return err
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
}
