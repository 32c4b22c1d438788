// Package soupfinance is the Go client SDK for the SoupFinance accounting
// backend: invoicing, bills and vendor payments, the general ledger,
// corporate KYC onboarding, settings, and the authentication flows. All
// calls go through one pipeline that normalizes auth-header attachment, the
// CSRF synchronizer handshake, body encodings, and error shapes.
package soupfinance

import (
	"net/http"
	"time"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/session"
)

type Client struct {
	baseURL  string
	http     *http.Client
	rc       *rest.Client
	sessions *session.Manager
	nav      rest.Navigator
	kycPoll  time.Duration
}

// New constructs a Client for the backend at baseURL. Additional options can
// be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		kycPoll: 2 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.sessions == nil {
		c.sessions = session.NewManager(nil)
	}
	if c.nav == nil {
		c.nav = rest.NewMemoryNavigator("/")
	}

	// Wrap the transport so every request carries the stored token.
	c.http.Transport = rest.NewAuthTransport(c.http.Transport, c.sessions)

	c.rc = &rest.Client{
		BaseURL:  baseURL,
		HTTP:     c.http,
		Sessions: c.sessions,
		Nav:      c.nav,
	}
	return c
}

// Location returns the navigator's current route path. After any 401 this is
// "/login" unless it already was.
func (c *Client) Location() string {
	return c.nav.Location()
}
