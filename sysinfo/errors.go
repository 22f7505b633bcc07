package sysinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceUnavailable reports that an OS or runtime fact could not be
	// obtained at all. It is never retried.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrProcessNotFound reports that the current process is missing from the
	// process table. It wraps ErrResourceUnavailable.
	ErrProcessNotFound = fmt.Errorf("process not found: %w", ErrResourceUnavailable)
)

// CategoryError identifies which snapshot category failed during Collect.
type CategoryError struct {
	Category string
	Err      error
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// unavailable wraps cause so that both ErrResourceUnavailable and cause match errors.Is.
func unavailable(what string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", what, ErrResourceUnavailable)
	}
	return fmt.Errorf("%s: %w: %w", what, ErrResourceUnavailable, cause)
}
