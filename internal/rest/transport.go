package rest

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenSource is the read side of the session store used on every outbound
// request.
type TokenSource interface {
	Token() (string, bool)
}

// NewAuthTransport wraps base so every request carries the stored access
// token as X-Auth-Token. The backend's security layer validates a raw token
// header, not an Authorization bearer scheme. When no token is stored the
// header is omitted entirely, not sent empty.
func NewAuthTransport(base http.RoundTripper, tokens TokenSource) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens}
}

type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so the caller's request is never mutated.
	cloned := req.Clone(req.Context())
	if t.tokens != nil {
		if tok, ok := t.tokens.Token(); ok {
			cloned.Header.Set("X-Auth-Token", tok)
		}
	}
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(cloned)
}
