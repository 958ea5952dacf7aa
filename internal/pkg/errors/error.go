package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrBadRequest    = errors.New("bad request")
	ErrRateLimited   = errors.New("too many requests")
	ErrFetchFailed   = errors.New("fetch failed")
	ErrAlreadyLoaded = errors.New("view already loaded")
	ErrViewClosed    = errors.New("view closed")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
