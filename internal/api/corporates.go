package api

import (
	"context"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

var (
	corporateResource   = rest.Resource{Name: "corporate", Encode: rest.JSON, CSRFOnCreate: true}
	directorResource    = rest.Resource{Name: "director", Encode: rest.JSON, CSRFOnCreate: true}
	kycDocumentResource = rest.Resource{Name: "kycDocument", Encode: rest.JSON, CSRFOnCreate: true}
)

// KYC onboarding statuses. APPROVED and REJECTED are terminal.
const (
	KYCStatusDraft     = "DRAFT"
	KYCStatusSubmitted = "SUBMITTED"
	KYCStatusApproved  = "APPROVED"
	KYCStatusRejected  = "REJECTED"
)

// KYCDecided reports whether status is terminal.
func KYCDecided(status string) bool {
	return status == KYCStatusApproved || status == KYCStatusRejected
}

// ListCorporates retrieves companies in onboarding.
func ListCorporates(ctx context.Context, c *rest.Client, q rest.Params) ([]types.Corporate, error) {
	var corporates []types.Corporate
	if err := corporateResource.List(ctx, c, q, &corporates); err != nil {
		return nil, err
	}
	return corporates, nil
}

// GetCorporate fetches one company by id.
func GetCorporate(ctx context.Context, c *rest.Client, id string) (*types.Corporate, error) {
	if err := types.ValidateIDPresent(id, "corporateId"); err != nil {
		return nil, err
	}
	var corp types.Corporate
	if err := corporateResource.Show(ctx, c, id, &corp); err != nil {
		return nil, err
	}
	return &corp, nil
}

// CreateCorporate starts onboarding for a company.
func CreateCorporate(ctx context.Context, c *rest.Client, req types.CreateCorporateRequest) (*types.Corporate, error) {
	var corp types.Corporate
	if err := corporateResource.Save(ctx, c, req, &corp); err != nil {
		return nil, err
	}
	return &corp, nil
}

// UpdateCorporate modifies company details.
func UpdateCorporate(ctx context.Context, c *rest.Client, id string, req types.UpdateCorporateRequest) (*types.Corporate, error) {
	if err := types.ValidateIDPresent(id, "corporateId"); err != nil {
		return nil, err
	}
	req.ID = id
	var corp types.Corporate
	if err := corporateResource.Update(ctx, c, id, req, &corp); err != nil {
		return nil, err
	}
	return &corp, nil
}

// SubmitKYC transitions a company to SUBMITTED for backend review. Approval
// itself is a backend decision; the client only observes the outcome.
func SubmitKYC(ctx context.Context, c *rest.Client, id string) (*types.Corporate, error) {
	return UpdateCorporate(ctx, c, id, types.UpdateCorporateRequest{Status: KYCStatusSubmitted})
}

// ListDirectors retrieves the directors declared for one company.
func ListDirectors(ctx context.Context, c *rest.Client, corporateID string) ([]types.Director, error) {
	if err := types.ValidateIDPresent(corporateID, "corporateId"); err != nil {
		return nil, err
	}
	var directors []types.Director
	if err := directorResource.List(ctx, c, rest.Params{"corporate.id": corporateID}, &directors); err != nil {
		return nil, err
	}
	return directors, nil
}

// CreateDirector declares a company officer.
func CreateDirector(ctx context.Context, c *rest.Client, req types.CreateDirectorRequest) (*types.Director, error) {
	if err := types.ValidateRef(req.Corporate, "corporate"); err != nil {
		return nil, err
	}
	var director types.Director
	if err := directorResource.Save(ctx, c, req, &director); err != nil {
		return nil, err
	}
	return &director, nil
}

// DeleteDirector removes a declared officer.
func DeleteDirector(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "directorId"); err != nil {
		return err
	}
	return directorResource.Delete(ctx, c, id)
}

// ListKYCDocuments retrieves the documents registered for one company.
func ListKYCDocuments(ctx context.Context, c *rest.Client, corporateID string) ([]types.KYCDocument, error) {
	if err := types.ValidateIDPresent(corporateID, "corporateId"); err != nil {
		return nil, err
	}
	var docs []types.KYCDocument
	if err := kycDocumentResource.List(ctx, c, rest.Params{"corporate.id": corporateID}, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// CreateKYCDocument registers an onboarding document.
func CreateKYCDocument(ctx context.Context, c *rest.Client, req types.CreateKYCDocumentRequest) (*types.KYCDocument, error) {
	if err := types.ValidateRef(req.Corporate, "corporate"); err != nil {
		return nil, err
	}
	var doc types.KYCDocument
	if err := kycDocumentResource.Save(ctx, c, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteKYCDocument removes a registered document.
func DeleteKYCDocument(ctx context.Context, c *rest.Client, id string) error {
	if err := types.ValidateIDPresent(id, "kycDocumentId"); err != nil {
		return err
	}
	return kycDocumentResource.Delete(ctx, c, id)
}
