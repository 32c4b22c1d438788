package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OTPRequest asks the backend to send a one-time code.
type OTPRequest struct {
	Username string `json:"username"`
}

// VerifyOTPRequest exchanges a one-time code for a session.
type VerifyOTPRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// ForgotPasswordRequest starts the password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password-reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// CreateBillRequest holds parameters for a new bill.
type CreateBillRequest struct {
	Number      string `json:"billNumber"`
	Vendor      *Ref   `json:"vendor,omitempty"`
	IssueDate   string `json:"issueDate,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateBillRequest holds changed fields for an existing bill.
// ID is filled in by the client from the update target.
type UpdateBillRequest struct {
	ID          string `json:"id,omitempty"`
	Number      string `json:"billNumber,omitempty"`
	Vendor      *Ref   `json:"vendor,omitempty"`
	IssueDate   string `json:"issueDate,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateInvoiceRequest holds parameters for a new invoice.
type CreateInvoiceRequest struct {
	Number      string `json:"invoiceNumber"`
	Client      *Ref   `json:"client,omitempty"`
	IssueDate   string `json:"issueDate,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateInvoiceRequest holds changed fields for an existing invoice.
type UpdateInvoiceRequest struct {
	ID          string `json:"id,omitempty"`
	Number      string `json:"invoiceNumber,omitempty"`
	Client      *Ref   `json:"client,omitempty"`
	IssueDate   string `json:"issueDate,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateInvoiceItemRequest adds a line item to an invoice.
type CreateInvoiceItemRequest struct {
	Invoice     *Ref    `json:"invoice"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateInvoicePaymentRequest applies a payment to an invoice.
type CreateInvoicePaymentRequest struct {
	Invoice     *Ref    `json:"invoice"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate,omitempty"`
	Method      string  `json:"method,omitempty"`
	Reference   string  `json:"reference,omitempty"`
}

// CreateBillItemRequest adds a line item to a bill.
type CreateBillItemRequest struct {
	Bill        *Ref    `json:"bill"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// VendorInput carries vendor fields for the legacy form-encoded endpoint.
type VendorInput struct {
	Name    string
	Email   string
	Phone   string
	TaxID   string
	Address string
	Active  bool
}

// CreateLedgerAccountRequest holds parameters for a new chart-of-accounts entry.
type CreateLedgerAccountRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateLedgerAccountRequest holds changed fields for an account.
type UpdateLedgerAccountRequest struct {
	ID     string `json:"id,omitempty"`
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// CreateLedgerTransactionRequest holds a new journal transaction header.
type CreateLedgerTransactionRequest struct {
	Reference   string `json:"reference,omitempty"`
	Date        string `json:"transactionDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateLedgerEntryRequest holds one debit/credit line.
type CreateLedgerEntryRequest struct {
	Transaction *Ref    `json:"ledgerTransaction"`
	Account     *Ref    `json:"ledgerAccount"`
	Debit       float64 `json:"debit,omitempty"`
	Credit      float64 `json:"credit,omitempty"`
}

// CreateCorporateRequest starts KYC onboarding for a company.
type CreateCorporateRequest struct {
	LegalName          string `json:"legalName"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Country            string `json:"country,omitempty"`
	Email              string `json:"email,omitempty"`
}

// UpdateCorporateRequest holds changed company fields.
type UpdateCorporateRequest struct {
	ID                 string `json:"id,omitempty"`
	LegalName          string `json:"legalName,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Country            string `json:"country,omitempty"`
	Email              string `json:"email,omitempty"`
	Status             string `json:"status,omitempty"`
}

// CreateDirectorRequest declares a company officer.
type CreateDirectorRequest struct {
	Corporate   *Ref   `json:"corporate"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// CreateKYCDocumentRequest registers an onboarding document.
type CreateKYCDocumentRequest struct {
	Corporate *Ref   `json:"corporate"`
	Type      string `json:"type"`
	FileName  string `json:"fileName,omitempty"`
}

// UpdateUserRequest holds profile fields for the settings page.
type UpdateUserRequest struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// BankAccountInput carries bank-account fields for the legacy form-encoded
// endpoint.
type BankAccountInput struct {
	BankName      string
	AccountNumber string
	Currency      string
	Primary       bool
}
