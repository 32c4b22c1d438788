package soupfinance

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/session"
)

// Option configures a Client during construction in New.
//
// Options are applied before the auth-token transport wrapper is installed,
// so transport-related options (like debug logging) sit underneath it.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. A request that exceeds it fails like any other network error.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The auth-token
// transport wrapper is still installed on top of its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and bodies, token included.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithPersistentSessions stores credentials in a JSON file at path so a
// remembered login survives process restarts. Without this option,
// "remember me" logins fall back to the process-scoped store.
func WithPersistentSessions(path string) Option {
	return func(c *Client) error {
		file, err := session.NewFileStore(path)
		if err != nil {
			return err
		}
		c.sessions = session.NewManager(file)
		return nil
	}
}

// WithKYCPollInterval sets the initial interval between KYC decision polls.
// The interval still grows exponentially from there.
func WithKYCPollInterval(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("kyc poll interval must be > 0")
		}
		c.kycPoll = d
		return nil
	}
}

// WithNavigator injects the host application's routing so the 401 handler
// can redirect to the login route. The default is an in-memory recorder.
func WithNavigator(nav rest.Navigator) Option {
	return func(c *Client) error {
		if nav == nil {
			return fmt.Errorf("navigator must not be nil")
		}
		c.nav = nav
		return nil
	}
}
