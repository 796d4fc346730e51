// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist or is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing, unknown or expired session token or bad credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary sign-in lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exist")

	// ErrInvalidJob marks a derivative job that can never succeed; it must not be retried.
	ErrInvalidJob = errors.New("invalid job")
)

// ValidationError reports a missing or malformed required field.
// Msg is safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a *ValidationError with the given message.
func Validation(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PipelineError is a derivative generation failure for one node/size.
// Size is zero when the failure is not size specific.
type PipelineError struct {
	NodeID uuid.UUID
	Size   int
	Err    error
}

func (e *PipelineError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("derivative %s: %v", e.NodeID, e.Err)
	}
	return fmt.Sprintf("derivative %s@%d: %v", e.NodeID, e.Size, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
