// Package apperr defines the error taxonomy shared by services, storage, and
// the HTTP layer. Callers classify failures with errors.Is against the
// sentinels below; detail is attached by wrapping.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed or out-of-range input. Caller's fault,
	// never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied marks an authorization denial. Kept distinct from
	// ErrNotFound so the HTTP layer can render them differently.
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyExists marks a uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorageUnavailable marks a storage collaborator failure. Callers may
	// retry with backoff; the services themselves do not.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Invalidf wraps ErrInvalidArgument with a formatted reason.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// NotFoundf wraps ErrNotFound with a formatted reason.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}
