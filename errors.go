package soupfinance

import (
	"errors"

	clienterrors "github.com/tasltd/soupfinance-sub004/internal/errors"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrUnauthorized = clienterrors.ErrUnauthorized
	ErrNotFound     = clienterrors.ErrNotFound
)

// APIError is the normalized form of a non-2xx backend response, carrying
// the status code and raw body for page-level presentation.
type APIError = clienterrors.APIError

// IsUnauthorized reports whether err is a 401 whose credential-clear side
// effect has already run.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
