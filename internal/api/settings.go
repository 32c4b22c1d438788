package api

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

var userResource = rest.Resource{Name: "user", Encode: rest.JSON}

// Bank accounts are still on the legacy convention, like vendors.
var bankAccountResource = rest.Resource{
	Name:         "bankAccount",
	Encode:       rest.Form,
	CSRFOnCreate: true,
	CSRFOnUpdate: true,
}

func bankAccountForm(in types.BankAccountInput) map[string]any {
	fields := map[string]any{
		"bankName":      in.BankName,
		"accountNumber": in.AccountNumber,
		"primary":       in.Primary,
	}
	if in.Currency != "" {
		fields["currency"] = in.Currency
	}
	return fields
}

// GetUser fetches a user profile for the settings page.
func GetUser(ctx context.Context, c *rest.Client, id string) (*types.User, error) {
	if err := types.ValidateIDPresent(id, "userId"); err != nil {
		return nil, err
	}
	var user types.User
	if err := userResource.Show(ctx, c, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser modifies profile fields. No synchronizer handshake: the user
// endpoint follows the JSON-mode update convention.
func UpdateUser(ctx context.Context, c *rest.Client, id string, req types.UpdateUserRequest) (*types.User, error) {
	if err := types.ValidateIDPresent(id, "userId"); err != nil {
		return nil, err
	}
	req.ID = id
	var user types.User
	if err := userResource.Update(ctx, c, id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListBankAccounts retrieves the user's settlement accounts.
func ListBankAccounts(ctx context.Context, c *rest.Client, q rest.Params) ([]types.BankAccount, error) {
	var accounts []types.BankAccount
	if err := bankAccountResource.List(ctx, c, q, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateBankAccount registers a settlement account with a form body.
func CreateBankAccount(ctx context.Context, c *rest.Client, in types.BankAccountInput) (*types.BankAccount, error) {
	var account types.BankAccount
	if err := bankAccountResource.Save(ctx, c, bankAccountForm(in), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateBankAccount modifies a settlement account; the legacy convention
// fetches a token from edit/{id}.json first.
func UpdateBankAccount(ctx context.Context, c *rest.Client, id string, in types.BankAccountInput) (*types.BankAccount, error) {
	if err := types.ValidateIDPresent(id, "bankAccountId"); err != nil {
		return nil, err
	}
	var account types.BankAccount
	if err := bankAccountResource.Update(ctx, c, id, bankAccountForm(in), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteBankAccount removes a settlement account.
func DeleteBankAccount(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "bankAccountId"); err != nil {
		return err
	}
	return bankAccountResource.Delete(ctx, c, id)
}
