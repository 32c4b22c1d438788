// Package api maps each backend domain resource to its list/show/save/
// update/delete calls over the rest pipeline. Functions validate their
// identifiers, express the resource's wire conventions, and leave all
// transport concerns to rest.
package api

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// Bills are a current-convention resource: JSON bodies, synchronizer token
// on create only.
var billResource = rest.Resource{Name: "bill", Encode: rest.JSON, CSRFOnCreate: true}

var billItemResource = rest.Resource{Name: "billItem", Encode: rest.JSON, CSRFOnCreate: true}

// ListBills retrieves bills matching the given filter/pagination params.
func ListBills(ctx context.Context, c *rest.Client, q rest.Params) ([]types.Bill, error) {
	var bills []types.Bill
	if err := billResource.List(ctx, c, q, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetBill fetches one bill by id.
func GetBill(ctx context.Context, c *rest.Client, id string) (*types.Bill, error) {
	if err := types.ValidateIDPresent(id, "billId"); err != nil {
		return nil, err
	}
	var bill types.Bill
	if err := billResource.Show(ctx, c, id, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// CreateBill creates a bill after the synchronizer handshake.
func CreateBill(ctx context.Context, c *rest.Client, req types.CreateBillRequest) (*types.Bill, error) {
	var bill types.Bill
	if err := billResource.Save(ctx, c, req, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// UpdateBill modifies a bill. JSON-mode updates carry the id in the body and
// do not fetch a token.
func UpdateBill(ctx context.Context, c *rest.Client, id string, req types.UpdateBillRequest) (*types.Bill, error) {
	if err := types.ValidateIDPresent(id, "billId"); err != nil {
		return nil, err
	}
	req.ID = id
	var bill types.Bill
	if err := billResource.Update(ctx, c, id, req, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// DeleteBill soft-deletes a bill.
func DeleteBill(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "billId"); err != nil {
		return err
	}
	return billResource.Delete(ctx, c, id)
}

// ListBillItems retrieves the line items of one bill via the sub-resource
// index filtered on the parent id.
func ListBillItems(ctx context.Context, c *rest.Client, billID string) ([]types.BillItem, error) {
	if err := types.ValidateIDPresent(billID, "billId"); err != nil {
		return nil, err
	}
	var items []types.BillItem
	if err := billItemResource.List(ctx, c, rest.Params{"bill.id": billID}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateBillItem adds a line item to a bill.
func CreateBillItem(ctx context.Context, c *rest.Client, req types.CreateBillItemRequest) (*types.BillItem, error) {
	if err := types.ValidateRef(req.Bill, "bill"); err != nil {
		return nil, err
	}
	var item types.BillItem
	if err := billItemResource.Save(ctx, c, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteBillItem removes a line item.
func DeleteBillItem(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "billItemId"); err != nil {
		return err
	}
	return billItemResource.Delete(ctx, c, id)
}

// MarkBillPaid transitions a bill's status; the server recomputes balances.
func MarkBillPaid(ctx context.Context, c *rest.Client, id string) (*types.Bill, error) {
	return UpdateBill(ctx, c, id, types.UpdateBillRequest{Status: "PAID"})
}
