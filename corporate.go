package soupfinance

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/tasltd/soupfinance-sub004/internal/api"
	clienterrors "github.com/tasltd/soupfinance-sub004/internal/errors"
)

// --------------------------------------------------------------------
// Corporate KYC operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCorporates retrieves companies in onboarding.
func (c *Client) ListCorporates(ctx context.Context, q Params) ([]Corporate, error) {
	return api.ListCorporates(ctx, c.rc, q)
}

// GetCorporate fetches one company by id.
func (c *Client) GetCorporate(ctx context.Context, id string) (*Corporate, error) {
	return api.GetCorporate(ctx, c.rc, id)
}

// CreateCorporate starts KYC onboarding for a company.
func (c *Client) CreateCorporate(ctx context.Context, req CreateCorporateRequest) (*Corporate, error) {
	return api.CreateCorporate(ctx, c.rc, req)
}

// UpdateCorporate modifies company details.
func (c *Client) UpdateCorporate(ctx context.Context, id string, req UpdateCorporateRequest) (*Corporate, error) {
	return api.UpdateCorporate(ctx, c.rc, id, req)
}

// SubmitKYC hands the company over for backend review.
func (c *Client) SubmitKYC(ctx context.Context, id string) (*Corporate, error) {
	return api.SubmitKYC(ctx, c.rc, id)
}

// AwaitKYCDecision polls the corporate until the backend reaches a terminal
// status (APPROVED or REJECTED), backing off exponentially between polls.
// Recoverable failures (5xx, transient network errors) keep the poll alive;
// irrecoverable ones (404, 403) abort immediately. The domain requests
// themselves never retry; polling a status page is the one exception.
func (c *Client) AwaitKYCDecision(ctx context.Context, id string) (*Corporate, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.kycPoll
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 0 // bounded by ctx, not the clock
	exp.Reset()

	for {
		corp, err := api.GetCorporate(ctx, c.rc, id)
		switch {
		case err == nil && api.KYCDecided(corp.Status):
			return corp, nil
		case err != nil && clienterrors.IsIrrecoverable(err):
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(exp.NextBackOff()):
		}
	}
}

// ListDirectors retrieves the directors declared for one company.
func (c *Client) ListDirectors(ctx context.Context, corporateID string) ([]Director, error) {
	return api.ListDirectors(ctx, c.rc, corporateID)
}

// CreateDirector declares a company officer.
func (c *Client) CreateDirector(ctx context.Context, req CreateDirectorRequest) (*Director, error) {
	return api.CreateDirector(ctx, c.rc, req)
}

// DeleteDirector removes a declared officer.
func (c *Client) DeleteDirector(ctx context.Context, id string) error {
	return api.DeleteDirector(ctx, c.rc, id)
}

// ListKYCDocuments retrieves the documents registered for one company.
func (c *Client) ListKYCDocuments(ctx context.Context, corporateID string) ([]KYCDocument, error) {
	return api.ListKYCDocuments(ctx, c.rc, corporateID)
}

// CreateKYCDocument registers an onboarding document.
func (c *Client) CreateKYCDocument(ctx context.Context, req CreateKYCDocumentRequest) (*KYCDocument, error) {
	return api.CreateKYCDocument(ctx, c.rc, req)
}

// DeleteKYCDocument removes a registered document.
func (c *Client) DeleteKYCDocument(ctx context.Context, id string) error {
	return api.DeleteKYCDocument(ctx, c.rc, id)
}
