package api

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

var (
	ledgerAccountResource     = rest.Resource{Name: "ledgerAccount", Encode: rest.JSON, CSRFOnCreate: true}
	ledgerTransactionResource = rest.Resource{Name: "ledgerTransaction", Encode: rest.JSON, CSRFOnCreate: true}
	ledgerEntryResource       = rest.Resource{Name: "ledgerEntry", Encode: rest.JSON, CSRFOnCreate: true}
)

// ListLedgerAccounts retrieves the chart of accounts.
func ListLedgerAccounts(ctx context.Context, c *rest.Client, q rest.Params) ([]types.LedgerAccount, error) {
	var accounts []types.LedgerAccount
	if err := ledgerAccountResource.List(ctx, c, q, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetLedgerAccount fetches one account by id.
func GetLedgerAccount(ctx context.Context, c *rest.Client, id string) (*types.LedgerAccount, error) {
	if err := types.ValidateIDPresent(id, "ledgerAccountId"); err != nil {
		return nil, err
	}
	var account types.LedgerAccount
	if err := ledgerAccountResource.Show(ctx, c, id, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateLedgerAccount adds an account to the chart of accounts.
func CreateLedgerAccount(ctx context.Context, c *rest.Client, req types.CreateLedgerAccountRequest) (*types.LedgerAccount, error) {
	var account types.LedgerAccount
	if err := ledgerAccountResource.Save(ctx, c, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateLedgerAccount modifies an account.
func UpdateLedgerAccount(ctx context.Context, c *rest.Client, id string, req types.UpdateLedgerAccountRequest) (*types.LedgerAccount, error) {
	if err := types.ValidateIDPresent(id, "ledgerAccountId"); err != nil {
		return nil, err
	}
	req.ID = id
	var account types.LedgerAccount
	if err := ledgerAccountResource.Update(ctx, c, id, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteLedgerAccount soft-deletes an account.
func DeleteLedgerAccount(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "ledgerAccountId"); err != nil {
		return err
	}
	return ledgerAccountResource.Delete(ctx, c, id)
}

// ListLedgerTransactions retrieves journal transactions.
func ListLedgerTransactions(ctx context.Context, c *rest.Client, q rest.Params) ([]types.LedgerTransaction, error) {
	var txs []types.LedgerTransaction
	if err := ledgerTransactionResource.List(ctx, c, q, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetLedgerTransaction fetches one journal transaction by id.
func GetLedgerTransaction(ctx context.Context, c *rest.Client, id string) (*types.LedgerTransaction, error) {
	if err := types.ValidateIDPresent(id, "ledgerTransactionId"); err != nil {
		return nil, err
	}
	var tx types.LedgerTransaction
	if err := ledgerTransactionResource.Show(ctx, c, id, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateLedgerTransaction creates a journal transaction header. Balance
// enforcement (debits == credits) is the server's job.
func CreateLedgerTransaction(ctx context.Context, c *rest.Client, req types.CreateLedgerTransactionRequest) (*types.LedgerTransaction, error) {
	var tx types.LedgerTransaction
	if err := ledgerTransactionResource.Save(ctx, c, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteLedgerTransaction soft-deletes a journal transaction.
func DeleteLedgerTransaction(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "ledgerTransactionId"); err != nil {
		return err
	}
	return ledgerTransactionResource.Delete(ctx, c, id)
}

// ListLedgerEntries retrieves the debit/credit lines of one transaction.
func ListLedgerEntries(ctx context.Context, c *rest.Client, transactionID string) ([]types.LedgerEntry, error) {
	if err := types.ValidateIDPresent(transactionID, "ledgerTransactionId"); err != nil {
		return nil, err
	}
	var entries []types.LedgerEntry
	if err := ledgerEntryResource.List(ctx, c, rest.Params{"ledgerTransaction.id": transactionID}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateLedgerEntry adds one debit/credit line to a transaction.
func CreateLedgerEntry(ctx context.Context, c *rest.Client, req types.CreateLedgerEntryRequest) (*types.LedgerEntry, error) {
	if err := types.ValidateRef(req.Transaction, "ledgerTransaction"); err != nil {
		return nil, err
	}
	if err := types.ValidateRef(req.Account, "ledgerAccount"); err != nil {
		return nil, err
	}
	var entry types.LedgerEntry
	if err := ledgerEntryResource.Save(ctx, c, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
