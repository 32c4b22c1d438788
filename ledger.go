package soupfinance

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/api"
)

// --------------------------------------------------------------------
// Ledger operations - delegated to internal/api
// --------------------------------------------------------------------

// ListLedgerAccounts retrieves the chart of accounts.
func (c *Client) ListLedgerAccounts(ctx context.Context, q Params) ([]LedgerAccount, error) {
	return api.ListLedgerAccounts(ctx, c.rc, q)
}

// GetLedgerAccount fetches one account by id.
func (c *Client) GetLedgerAccount(ctx context.Context, id string) (*LedgerAccount, error) {
	return api.GetLedgerAccount(ctx, c.rc, id)
}

// CreateLedgerAccount adds an account to the chart of accounts.
func (c *Client) CreateLedgerAccount(ctx context.Context, req CreateLedgerAccountRequest) (*LedgerAccount, error) {
	return api.CreateLedgerAccount(ctx, c.rc, req)
}

// UpdateLedgerAccount modifies an account.
func (c *Client) UpdateLedgerAccount(ctx context.Context, id string, req UpdateLedgerAccountRequest) (*LedgerAccount, error) {
	return api.UpdateLedgerAccount(ctx, c.rc, id, req)
}

// DeleteLedgerAccount soft-deletes an account.
func (c *Client) DeleteLedgerAccount(ctx context.Context, id string) error {
	return api.DeleteLedgerAccount(ctx, c.rc, id)
}

// ListLedgerTransactions retrieves journal transactions. Balances and the
// trial balance are computed server-side; the client only lists.
func (c *Client) ListLedgerTransactions(ctx context.Context, q Params) ([]LedgerTransaction, error) {
	return api.ListLedgerTransactions(ctx, c.rc, q)
}

// GetLedgerTransaction fetches one journal transaction by id.
func (c *Client) GetLedgerTransaction(ctx context.Context, id string) (*LedgerTransaction, error) {
	return api.GetLedgerTransaction(ctx, c.rc, id)
}

// CreateLedgerTransaction creates a journal transaction header.
func (c *Client) CreateLedgerTransaction(ctx context.Context, req CreateLedgerTransactionRequest) (*LedgerTransaction, error) {
	return api.CreateLedgerTransaction(ctx, c.rc, req)
}

// DeleteLedgerTransaction soft-deletes a journal transaction.
func (c *Client) DeleteLedgerTransaction(ctx context.Context, id string) error {
	return api.DeleteLedgerTransaction(ctx, c.rc, id)
}

// ListLedgerEntries retrieves the debit/credit lines of one transaction.
func (c *Client) ListLedgerEntries(ctx context.Context, transactionID string) ([]LedgerEntry, error) {
	return api.ListLedgerEntries(ctx, c.rc, transactionID)
}

// CreateLedgerEntry adds one debit/credit line to a transaction.
func (c *Client) CreateLedgerEntry(ctx context.Context, req CreateLedgerEntryRequest) (*LedgerEntry, error) {
	return api.CreateLedgerEntry(ctx, c.rc, req)
}
