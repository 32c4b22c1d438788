package soupfinance

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/api"
)

// --------------------------------------------------------------------
// Vendor operations - delegated to internal/api (legacy form convention)
// --------------------------------------------------------------------

// ListVendors retrieves vendors.
func (c *Client) ListVendors(ctx context.Context, q Params) ([]Vendor, error) {
	return api.ListVendors(ctx, c.rc, q)
}

// GetVendor fetches one vendor by id.
func (c *Client) GetVendor(ctx context.Context, id string) (*Vendor, error) {
	return api.GetVendor(ctx, c.rc, id)
}

// CreateVendor creates a vendor. The vendor endpoint is still on the legacy
// convention: form-encoded body, synchronizer token on create.
func (c *Client) CreateVendor(ctx context.Context, in VendorInput) (*Vendor, error) {
	return api.CreateVendor(ctx, c.rc, in)
}

// UpdateVendor modifies a vendor, fetching a fresh token via edit/{id}.json
// first per the legacy convention.
func (c *Client) UpdateVendor(ctx context.Context, id string, in VendorInput) (*Vendor, error) {
	return api.UpdateVendor(ctx, c.rc, id, in)
}

// DeleteVendor soft-deletes a vendor.
func (c *Client) DeleteVendor(ctx context.Context, id string) error {
	return api.DeleteVendor(ctx, c.rc, id)
}
