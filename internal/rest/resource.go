package rest

import (
	"context"
	"net/http"
)

// Resource captures the backend's path convention for one domain resource
// plus the write conventions it uses. Every endpoint follows the same shape:
//
//	GET    {name}/index.json[?query]
//	GET    {name}/show/{id}.json
//	POST   {name}/save.json
//	PUT    {name}/update/{id}.json
//	DELETE {name}/delete/{id}.json
//
// Sub-resources nest under their own name and reference the parent through a
// "{parent}.id" filter on index.json calls.
type Resource struct {
	// Name is the path segment and the CSRF response key, lowerCamelCase
	// (e.g. "bill", "billItem", "ledgerAccount").
	Name string
	// Encode selects the request-body convention for save/update.
	Encode Encoding
	// CSRFOnCreate fetches a synchronizer token via create.json before save.
	CSRFOnCreate bool
	// CSRFOnUpdate fetches a token via edit/{id}.json before update. Only
	// legacy form-mode endpoints still do this; JSON-mode updates carry the
	// id in the body and skip the handshake.
	CSRFOnUpdate bool
}

// List issues the index call. An empty query produces no "?" at all.
func (r Resource) List(ctx context.Context, c *Client, q Params, out any) error {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   r.Name + "/index.json",
		Query:  q,
		Op:     "list " + r.Name,
	}, out)
}

// Show fetches one record by id.
func (r Resource) Show(ctx context.Context, c *Client, id string, out any) error {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   r.Name + "/show/" + id + ".json",
		Op:     "show " + r.Name,
	}, out)
}

// Save creates a record. When the endpoint requires a synchronizer token the
// handshake runs first; a failed fetch aborts the operation before any
// mutating call is attempted.
func (r Resource) Save(ctx context.Context, c *Client, payload, out any) error {
	var tok *SyncToken
	if r.CSRFOnCreate {
		var err error
		if tok, err = c.FetchCreateToken(ctx, r.Name); err != nil {
			return err
		}
	}
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   r.Name + "/save.json",
		Body:   payload,
		Encode: r.Encode,
		CSRF:   tok,
		Op:     "create " + r.Name,
	}, out)
}

// Update modifies a record by id.
func (r Resource) Update(ctx context.Context, c *Client, id string, payload, out any) error {
	var tok *SyncToken
	if r.CSRFOnUpdate {
		var err error
		if tok, err = c.FetchEditToken(ctx, r.Name, id); err != nil {
			return err
		}
	}
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   r.Name + "/update/" + id + ".json",
		Body:   payload,
		Encode: r.Encode,
		CSRF:   tok,
		Op:     "update " + r.Name,
	}, out)
}

// Delete soft-deletes a record by id.
func (r Resource) Delete(ctx context.Context, c *Client, id string) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   r.Name + "/delete/" + id + ".json",
		Op:     "delete " + r.Name,
	}, nil)
}
