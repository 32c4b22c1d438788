package api

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// Vendors are a legacy-convention resource: form-encoded bodies, and the
// synchronizer handshake runs before update too (via edit/{id}.json).
var vendorResource = rest.Resource{
	Name:         "vendor",
	Encode:       rest.Form,
	CSRFOnCreate: true,
	CSRFOnUpdate: true,
}

func vendorForm(in types.VendorInput) map[string]any {
	fields := map[string]any{
		"name":   in.Name,
		"active": in.Active,
	}
	// Optional scalars are dropped when empty rather than sent blank.
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	if in.TaxID != "" {
		fields["taxId"] = in.TaxID
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	return fields
}

// ListVendors retrieves vendors matching the given filter/pagination params.
func ListVendors(ctx context.Context, c *rest.Client, q rest.Params) ([]types.Vendor, error) {
	var vendors []types.Vendor
	if err := vendorResource.List(ctx, c, q, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetVendor fetches one vendor by id.
func GetVendor(ctx context.Context, c *rest.Client, id string) (*types.Vendor, error) {
	if err := types.ValidateIDPresent(id, "vendorId"); err != nil {
		return nil, err
	}
	var vendor types.Vendor
	if err := vendorResource.Show(ctx, c, id, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// CreateVendor creates a vendor with a flattened form body.
func CreateVendor(ctx context.Context, c *rest.Client, in types.VendorInput) (*types.Vendor, error) {
	var vendor types.Vendor
	if err := vendorResource.Save(ctx, c, vendorForm(in), &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// UpdateVendor modifies a vendor. The legacy convention fetches a fresh
// synchronizer token from edit/{id}.json before the PUT.
func UpdateVendor(ctx context.Context, c *rest.Client, id string, in types.VendorInput) (*types.Vendor, error) {
	if err := types.ValidateIDPresent(id, "vendorId"); err != nil {
		return nil, err
	}
	var vendor types.Vendor
	if err := vendorResource.Update(ctx, c, id, vendorForm(in), &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// DeleteVendor soft-deletes a vendor.
func DeleteVendor(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "vendorId"); err != nil {
		return err
	}
	return vendorResource.Delete(ctx, c, id)
}
