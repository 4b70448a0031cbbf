/*
errors.go - Centralized error types for the overtime engine

PURPOSE:
  All claim errors in one place. Everything here is a recoverable,
  user-facing validation failure except ErrLookupFailed, which is a
  transient infrastructure failure: callers should retry it instead of
  telling the user they lack permission.

USAGE:
  API handlers map these with errors.Is:

    if errors.Is(err, overtime.ErrNotAuthorized) { ... 403 ... }
    if overtime.IsRetryable(err) { ... 503 ... }
*/
package overtime

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInsufficientDuration is returned when a claim is below the
	// 30-minute floor.
	ErrInsufficientDuration = errors.New("claimed duration below minimum")

	// ErrInvalidIncrement is returned when the minutes component is not
	// one of the allowed half-hour steps.
	ErrInvalidIncrement = errors.New("minutes must be 0 or 30")

	// ErrMissingJustification is returned when the mandatory free-text
	// note is empty or whitespace-only.
	ErrMissingJustification = errors.New("justification note is required")

	// ErrNotAuthorized is returned when no authorization record exists for
	// the user, or the record is disabled.
	ErrNotAuthorized = errors.New("overtime not authorized for user")

	// ErrInvalidRate is returned when the authorization record carries a
	// non-positive hourly rate.
	ErrInvalidRate = errors.New("authorization has invalid hourly rate")

	// ErrLookupFailed is returned when the authorization store cannot be
	// reached. Distinct from ErrNotAuthorized so callers can retry.
	ErrLookupFailed = errors.New("authorization lookup failed")

	// ErrNotRequestOwner is returned when someone other than the owner
	// attempts an owner-only edit.
	ErrNotRequestOwner = errors.New("not the request owner")

	// ErrRequestImmutable is returned on any attempt to mutate a request
	// that has left the pending state.
	ErrRequestImmutable = errors.New("request is no longer pending")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// LookupError wraps a store failure during authorization lookup.
type LookupError struct {
	OwnerID string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("authorization lookup for %s: %v", e.OwnerID, e.Err)
}

func (e *LookupError) Unwrap() error { return ErrLookupFailed }

// TransitionError reports an illegal status transition.
type TransitionError struct {
	RequestID string
	From      Status
	To        Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("request %s: cannot transition %s -> %s", e.RequestID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrRequestImmutable }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsRetryable returns true if the error might succeed on retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLookupFailed)
}

// IsClientError returns true if the error is due to invalid client input
// or a permission rule, as opposed to an infrastructure failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInsufficientDuration) ||
		errors.Is(err, ErrInvalidIncrement) ||
		errors.Is(err, ErrMissingJustification) ||
		errors.Is(err, ErrNotAuthorized) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrNotRequestOwner) ||
		errors.Is(err, ErrRequestImmutable)
}
