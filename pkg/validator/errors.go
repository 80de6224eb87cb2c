package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingTarget is returned when a field with rules has no value, or its value is false.
	// It aborts the whole validation call.
	ErrMissingTarget = errors.New("validation target is missing")

	// ErrUnknownRule marks a rule name that has no registered validator.
	ErrUnknownRule = errors.New("unknown validation rule")
)

// AbortError reports the field that aborted a validation call.
type AbortError struct {
	Field string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("validation aborted: field %q: %s", e.Field, ErrMissingTarget)
}

func (e *AbortError) Unwrap() error {
	return ErrMissingTarget
}
