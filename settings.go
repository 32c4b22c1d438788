package soupfinance

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/api"
)

// --------------------------------------------------------------------
// User settings operations - delegated to internal/api
// --------------------------------------------------------------------

// GetUser fetches a user profile.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	return api.GetUser(ctx, c.rc, id)
}

// UpdateUser modifies profile fields.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	return api.UpdateUser(ctx, c.rc, id, req)
}

// ListBankAccounts retrieves the user's settlement accounts.
func (c *Client) ListBankAccounts(ctx context.Context, q Params) ([]BankAccount, error) {
	return api.ListBankAccounts(ctx, c.rc, q)
}

// CreateBankAccount registers a settlement account (legacy form convention).
func (c *Client) CreateBankAccount(ctx context.Context, in BankAccountInput) (*BankAccount, error) {
	return api.CreateBankAccount(ctx, c.rc, in)
}

// UpdateBankAccount modifies a settlement account.
func (c *Client) UpdateBankAccount(ctx context.Context, id string, in BankAccountInput) (*BankAccount, error) {
	return api.UpdateBankAccount(ctx, c.rc, id, in)
}

// DeleteBankAccount removes a settlement account.
func (c *Client) DeleteBankAccount(ctx context.Context, id string) error {
	return api.DeleteBankAccount(ctx, c.rc, id)
}
