package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewHTTPError_Sentinels(t *testing.T) {
	t.Parallel()
	if err := NewHTTPError("list bills", 401, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("401 must carry ErrUnauthorized: %v", err)
	}
	if err := NewHTTPError("show bill", 404, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("404 must carry ErrNotFound: %v", err)
	}
}

func TestCategoryMapping(t *testing.T) {
	t.Parallel()
	cases := map[int]Category{
		400: Irrecoverable,
		401: Irrecoverable,
		403: Irrecoverable,
		404: Irrecoverable,
		408: Recoverable,
		422: Irrecoverable,
		429: Recoverable,
		500: Recoverable,
		503: Recoverable,
	}
	for status, want := range cases {
		err := NewHTTPError("op", status, "")
		if err.Category != want {
			t.Fatalf("status %d: category %s, want %s", status, err.Category, want)
		}
	}
}

func TestIsIrrecoverable(t *testing.T) {
	t.Parallel()
	if !IsIrrecoverable(NewHTTPError("op", 404, "")) {
		t.Fatal("404 must be irrecoverable")
	}
	if IsIrrecoverable(NewHTTPError("op", 500, "")) {
		t.Fatal("500 must not be irrecoverable")
	}
	if IsIrrecoverable(errors.New("plain")) {
		t.Fatal("plain errors are not classified")
	}
	// Wrapped APIErrors are still detected.
	wrapped := fmt.Errorf("outer: %w", NewHTTPError("op", 403, ""))
	if !IsIrrecoverable(wrapped) {
		t.Fatal("wrapped 403 must be irrecoverable")
	}
}
