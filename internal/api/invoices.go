package api

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

var (
	invoiceResource        = rest.Resource{Name: "invoice", Encode: rest.JSON, CSRFOnCreate: true}
	invoiceItemResource    = rest.Resource{Name: "invoiceItem", Encode: rest.JSON, CSRFOnCreate: true}
	invoicePaymentResource = rest.Resource{Name: "invoicePayment", Encode: rest.JSON, CSRFOnCreate: true}
)

// ListInvoices retrieves invoices matching the given filter/pagination params.
func ListInvoices(ctx context.Context, c *rest.Client, q rest.Params) ([]types.Invoice, error) {
	var invoices []types.Invoice
	if err := invoiceResource.List(ctx, c, q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice fetches one invoice, then its line items, and re-derives
// TotalAmount as the sum of quantity x unitPrice across items: the show
// endpoint does not always return a precomputed total. The recomputation is
// strictly a subtotal proxy and ignores tax/discount fields.
func GetInvoice(ctx context.Context, c *rest.Client, id string) (*types.Invoice, error) {
	if err := types.ValidateIDPresent(id, "invoiceId"); err != nil {
		return nil, err
	}
	var inv types.Invoice
	if err := invoiceResource.Show(ctx, c, id, &inv); err != nil {
		return nil, err
	}
	items, err := ListInvoiceItems(ctx, c, id)
	if err != nil {
		return nil, err
	}
	inv.TotalAmount = subtotal(items)
	return &inv, nil
}

func subtotal(items []types.InvoiceItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}

// CreateInvoice creates an invoice after the synchronizer handshake.
func CreateInvoice(ctx context.Context, c *rest.Client, req types.CreateInvoiceRequest) (*types.Invoice, error) {
	var inv types.Invoice
	if err := invoiceResource.Save(ctx, c, req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvoice modifies an invoice; id travels in the JSON body, no token.
func UpdateInvoice(ctx context.Context, c *rest.Client, id string, req types.UpdateInvoiceRequest) (*types.Invoice, error) {
	if err := types.ValidateIDPresent(id, "invoiceId"); err != nil {
		return nil, err
	}
	req.ID = id
	var inv types.Invoice
	if err := invoiceResource.Update(ctx, c, id, req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvoice soft-deletes an invoice.
func DeleteInvoice(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "invoiceId"); err != nil {
		return err
	}
	return invoiceResource.Delete(ctx, c, id)
}

// ListInvoiceItems retrieves the line items of one invoice.
func ListInvoiceItems(ctx context.Context, c *rest.Client, invoiceID string) ([]types.InvoiceItem, error) {
	if err := types.ValidateIDPresent(invoiceID, "invoiceId"); err != nil {
		return nil, err
	}
	var items []types.InvoiceItem
	if err := invoiceItemResource.List(ctx, c, rest.Params{"invoice.id": invoiceID}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateInvoiceItem adds a line item to an invoice.
func CreateInvoiceItem(ctx context.Context, c *rest.Client, req types.CreateInvoiceItemRequest) (*types.InvoiceItem, error) {
	if err := types.ValidateRef(req.Invoice, "invoice"); err != nil {
		return nil, err
	}
	var item types.InvoiceItem
	if err := invoiceItemResource.Save(ctx, c, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteInvoiceItem removes a line item.
func DeleteInvoiceItem(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "invoiceItemId"); err != nil {
		return err
	}
	return invoiceItemResource.Delete(ctx, c, id)
}

// ListInvoicePayments retrieves the payments applied to one invoice.
func ListInvoicePayments(ctx context.Context, c *rest.Client, invoiceID string) ([]types.InvoicePayment, error) {
	if err := types.ValidateIDPresent(invoiceID, "invoiceId"); err != nil {
		return nil, err
	}
	var payments []types.InvoicePayment
	if err := invoicePaymentResource.List(ctx, c, rest.Params{"invoice.id": invoiceID}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreateInvoicePayment records a payment against an invoice. The server owns
// payment application; the client only submits it.
func CreateInvoicePayment(ctx context.Context, c *rest.Client, req types.CreateInvoicePaymentRequest) (*types.InvoicePayment, error) {
	if err := types.ValidateRef(req.Invoice, "invoice"); err != nil {
		return nil, err
	}
	var payment types.InvoicePayment
	if err := invoicePaymentResource.Save(ctx, c, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
