package soupfinance

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/api"
	"github.com/tasltd/soupfinance-sub004/internal/rest"
)

// --------------------------------------------------------------------
// Bill operations - delegated to internal/api
// --------------------------------------------------------------------

// Params is a flat set of filter/pagination parameters for list calls
// (page, max, offset, sort, order, search, status, ...). Nil values are
// dropped from the query string.
type Params = rest.Params

// ListBills retrieves bills. With nil params the URL carries no query string.
func (c *Client) ListBills(ctx context.Context, q Params) ([]Bill, error) {
	return api.ListBills(ctx, c.rc, q)
}

// GetBill fetches one bill by id.
func (c *Client) GetBill(ctx context.Context, id string) (*Bill, error) {
	return api.GetBill(ctx, c.rc, id)
}

// CreateBill creates a bill. The synchronizer handshake runs first; if the
// token fetch fails the bill is never submitted.
func (c *Client) CreateBill(ctx context.Context, req CreateBillRequest) (*Bill, error) {
	return api.CreateBill(ctx, c.rc, req)
}

// UpdateBill modifies a bill.
func (c *Client) UpdateBill(ctx context.Context, id string, req UpdateBillRequest) (*Bill, error) {
	return api.UpdateBill(ctx, c.rc, id, req)
}

// DeleteBill soft-deletes a bill.
func (c *Client) DeleteBill(ctx context.Context, id string) error {
	return api.DeleteBill(ctx, c.rc, id)
}

// MarkBillPaid transitions a bill to PAID.
func (c *Client) MarkBillPaid(ctx context.Context, id string) (*Bill, error) {
	return api.MarkBillPaid(ctx, c.rc, id)
}

// ListBillItems retrieves the line items of one bill.
func (c *Client) ListBillItems(ctx context.Context, billID string) ([]BillItem, error) {
	return api.ListBillItems(ctx, c.rc, billID)
}

// CreateBillItem adds a line item to a bill.
func (c *Client) CreateBillItem(ctx context.Context, req CreateBillItemRequest) (*BillItem, error) {
	return api.CreateBillItem(ctx, c.rc, req)
}

// DeleteBillItem removes a line item from a bill.
func (c *Client) DeleteBillItem(ctx context.Context, id string) error {
	return api.DeleteBillItem(ctx, c.rc, id)
}
