package errors

import (
	"fmt"
	"net/http"
)

// NewHTTPError normalizes a non-2xx response into an *APIError.
// The 401 and 404 cases carry their sentinel so callers can match with
// errors.Is without inspecting status codes.
func NewHTTPError(op string, statusCode int, body string) *APIError {
	var underlying error
	switch statusCode {
	case http.StatusUnauthorized:
		underlying = ErrUnauthorized
	case http.StatusNotFound:
		underlying = ErrNotFound
	default:
		underlying = fmt.Errorf("%s failed", op)
	}
	return &APIError{
		Op:         op,
		StatusCode: statusCode,
		Body:       body,
		Category:   categoryFor(statusCode),
		Underlying: underlying,
	}
}

// categoryFor maps HTTP status codes to a retry category:
// 4xx (except 408/429) will not change on retry, 5xx might.
func categoryFor(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}
