// Package rest is the single point of egress for backend calls. It owns
// request construction (query strings, the two body encodings, the CSRF
// synchronizer handshake), auth-header attachment, and response
// normalization, so that resource modules only express paths and payload
// shapes.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	clienterrors "github.com/tasltd/soupfinance-sub004/internal/errors"
)

// LoginPath is the route the 401 handler redirects to.
const LoginPath = "/login"

// CredentialClearer is the slice of the session store the pipeline needs:
// on 401 it wipes stored credentials and nothing else.
type CredentialClearer interface {
	Clear() error
}

// Client executes backend requests over one long-lived http.Client.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Sessions CredentialClearer // may be nil
	Nav      Navigator         // may be nil
}

// Encoding selects the request-body wire convention for an endpoint.
// Modeled as an explicit per-call strategy rather than inferred, so legacy
// endpoints migrating to JSON change one field instead of drifting silently.
type Encoding int

const (
	// JSON is the current convention: application/json bodies.
	JSON Encoding = iota
	// Form is the legacy convention: application/x-www-form-urlencoded
	// bodies built by flattening the payload object.
	Form
)

// Request describes one backend call.
type Request struct {
	Method string
	Path   string // relative path, e.g. "bill/index.json"
	Query  Params
	Body   any // struct for JSON mode, map[string]any for Form mode
	Encode Encoding
	CSRF   *SyncToken // appended to the query string, never the body
	Op     string     // operation label for error messages
}

// Do executes the request and decodes a JSON response into out (when out is
// non-nil and the response has a body).
//
// Network-level failures are returned verbatim with no side effects. Non-2xx
// statuses return an *errors.APIError carrying status and body; a 401
// additionally clears stored credentials and redirects to the login route
// unless the current location already is it, before the error is returned.
// The pipeline never retries.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u := strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(r.Path, "/")
	if q := encodeQueryWithCSRF(r.Query, r.CSRF); q != "" {
		u += "?" + q
	}

	body, contentType, err := encodeBody(r.Encode, r.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Op, err)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// Network failure: no response, no credential side effect.
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(r.Method).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized()
		}
		return clienterrors.NewHTTPError(r.Op, resp.StatusCode, string(b))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", r.Op, err)
	}
	return nil
}

// handleUnauthorized clears stored credentials and redirects to the login
// route. The clear itself must never block the error from reaching the
// caller, so its failure is only logged.
func (c *Client) handleUnauthorized() {
	unauthorizedTotal.Inc()
	if c.Sessions != nil {
		if err := c.Sessions.Clear(); err != nil {
			log.Warn().Err(err).Msg("clearing credentials after 401 failed")
		}
	}
	if c.Nav != nil && c.Nav.Location() != LoginPath {
		c.Nav.Navigate(LoginPath)
	}
}

// encodeBody renders the request body per the endpoint's wire convention.
func encodeBody(enc Encoding, payload any) (io.Reader, string, error) {
	if payload == nil {
		return nil, "", nil
	}
	switch enc {
	case Form:
		fields, ok := payload.(map[string]any)
		if !ok {
			return nil, "", fmt.Errorf("form encoding requires map[string]any, got %T", payload)
		}
		return strings.NewReader(FlattenForm(fields).Encode()), "application/x-www-form-urlencoded", nil
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
