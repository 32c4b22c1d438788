package soupfinance

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/api"
)

// --------------------------------------------------------------------
// Invoice operations - delegated to internal/api
// --------------------------------------------------------------------

// ListInvoices retrieves invoices.
func (c *Client) ListInvoices(ctx context.Context, q Params) ([]Invoice, error) {
	return api.ListInvoices(ctx, c.rc, q)
}

// GetInvoice fetches one invoice plus its line items and re-derives
// TotalAmount as the item subtotal, overriding whatever the show endpoint
// returned. The displayed total is a subtotal proxy until the server
// confirms the authoritative figure on the next save round-trip.
func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	return api.GetInvoice(ctx, c.rc, id)
}

// CreateInvoice creates an invoice after the synchronizer handshake.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	return api.CreateInvoice(ctx, c.rc, req)
}

// UpdateInvoice modifies an invoice.
func (c *Client) UpdateInvoice(ctx context.Context, id string, req UpdateInvoiceRequest) (*Invoice, error) {
	return api.UpdateInvoice(ctx, c.rc, id, req)
}

// DeleteInvoice soft-deletes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return api.DeleteInvoice(ctx, c.rc, id)
}

// ListInvoiceItems retrieves the line items of one invoice.
func (c *Client) ListInvoiceItems(ctx context.Context, invoiceID string) ([]InvoiceItem, error) {
	return api.ListInvoiceItems(ctx, c.rc, invoiceID)
}

// CreateInvoiceItem adds a line item to an invoice.
func (c *Client) CreateInvoiceItem(ctx context.Context, req CreateInvoiceItemRequest) (*InvoiceItem, error) {
	return api.CreateInvoiceItem(ctx, c.rc, req)
}

// DeleteInvoiceItem removes a line item from an invoice.
func (c *Client) DeleteInvoiceItem(ctx context.Context, id string) error {
	return api.DeleteInvoiceItem(ctx, c.rc, id)
}

// ListInvoicePayments retrieves the payments applied to one invoice.
func (c *Client) ListInvoicePayments(ctx context.Context, invoiceID string) ([]InvoicePayment, error) {
	return api.ListInvoicePayments(ctx, c.rc, invoiceID)
}

// CreateInvoicePayment records a payment against an invoice.
func (c *Client) CreateInvoicePayment(ctx context.Context, req CreateInvoicePaymentRequest) (*InvoicePayment, error) {
	return api.CreateInvoicePayment(ctx, c.rc, req)
}
