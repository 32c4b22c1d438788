package rest

import (
	"context"
	"fmt"
	"net/http"
)

// Query parameter names the backend expects the synchronizer pair under.
const (
	csrfTokenParam = "SYNCHRONIZER_TOKEN"
	csrfURIParam   = "SYNCHRONIZER_URI"
)

// SyncToken is the short-lived CSRF synchronizer pair fetched immediately
// before a mutating call and consumed exactly once as query parameters.
// It is never persisted.
type SyncToken struct {
	Token string
	URI   string
}

// csrfPayload is the shape nested under the resource key in a create/edit
// response body.
type csrfPayload struct {
	Token string `json:"SYNCHRONIZER_TOKEN"`
	URI   string `json:"SYNCHRONIZER_URI"`
}

// FetchCreateToken issues GET {resource}/create.json and extracts the
// synchronizer pair nested under the resource's lowerCamelCase key.
func (c *Client) FetchCreateToken(ctx context.Context, resource string) (*SyncToken, error) {
	return c.fetchToken(ctx, resource, resource+"/create.json")
}

// FetchEditToken issues GET {resource}/edit/{id}.json. Only legacy
// form-encoded endpoints require a token before update.
func (c *Client) FetchEditToken(ctx context.Context, resource, id string) (*SyncToken, error) {
	return c.fetchToken(ctx, resource, resource+"/edit/"+id+".json")
}

func (c *Client) fetchToken(ctx context.Context, resource, path string) (*SyncToken, error) {
	var payload map[string]csrfPayload
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   path,
		Op:     "fetch " + resource + " token",
	}, &payload)
	if err != nil {
		csrfFetchTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	entry, ok := payload[resource]
	if !ok || entry.Token == "" {
		csrfFetchTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch %s token: synchronizer pair missing from response", resource)
	}
	csrfFetchTotal.WithLabelValues("ok").Inc()
	return &SyncToken{Token: entry.Token, URI: entry.URI}, nil
}
