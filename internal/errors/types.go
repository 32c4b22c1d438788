// Package errors provides error normalization for the client SDK.
// HTTP failures carry their status and body so callers can render
// validation messages; a coarse category drives the KYC poller's
// decision to keep polling or fail fast.
package errors

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks 401 responses after the credential-clear side effect
// has run. Compare with errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound marks 404 responses. Compare with errors.Is.
var ErrNotFound = errors.New("not found")

// Category determines how a failure should be treated by polling logic.
type Category int

const (
	// Recoverable failures may be observed again on a later attempt.
	// Examples: 500 Internal Server Error, network timeouts.
	Recoverable Category = iota

	// Irrecoverable failures will not change on retry.
	// Examples: 400 Bad Request, 403 Forbidden, 404 Not Found.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// APIError is the normalized form of a non-2xx backend response.
type APIError struct {
	Op         string // operation label, e.g. "list bills"
	StatusCode int
	Body       string // response body, for page-level presentation
	Category   Category
	Underlying error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Underlying)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *APIError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err should not be observed again.
func IsIrrecoverable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Category == Irrecoverable
	}
	return false
}
