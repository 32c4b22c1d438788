package types

// ------------------------------
// Core Domain Entities
// ------------------------------
//
// These mirror the backend's JSON representations. The client does not
// enforce their invariants (totals arithmetic, debit/credit balance); the
// server owns those. Monetary amounts are float64 display mirrors.

// Ref is a foreign-key reference to another resource.
type Ref struct {
	ID string `json:"id"`
}

// User represents an authenticated user's profile.
type User struct {
	ID        string   `json:"id,omitempty"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// Vendor represents a supplier that bills are payable to.
type Vendor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
}

// Bill represents a payable received from a vendor.
type Bill struct {
	ID             string  `json:"id"`
	Number         string  `json:"billNumber"`
	Vendor         *Ref    `json:"vendor,omitempty"`
	IssueDate      string  `json:"issueDate,omitempty"`
	DueDate        string  `json:"dueDate,omitempty"`
	Status         string  `json:"status,omitempty"`
	Description    string  `json:"description,omitempty"`
	SubTotal       float64 `json:"subTotal,omitempty"`
	TaxAmount      float64 `json:"taxAmount,omitempty"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	TotalAmount    float64 `json:"totalAmount,omitempty"`
}

// BillItem is a line item on a bill.
type BillItem struct {
	ID          string  `json:"id"`
	Bill        *Ref    `json:"bill,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount,omitempty"`
}

// Invoice represents a receivable issued to a client.
type Invoice struct {
	ID             string  `json:"id"`
	Number         string  `json:"invoiceNumber"`
	Client         *Ref    `json:"client,omitempty"`
	IssueDate      string  `json:"issueDate,omitempty"`
	DueDate        string  `json:"dueDate,omitempty"`
	Status         string  `json:"status,omitempty"`
	Description    string  `json:"description,omitempty"`
	SubTotal       float64 `json:"subTotal,omitempty"`
	TaxAmount      float64 `json:"taxAmount,omitempty"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	TotalAmount    float64 `json:"totalAmount,omitempty"`
}

// InvoiceItem is a line item on an invoice.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Invoice     *Ref    `json:"invoice,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount,omitempty"`
}

// InvoicePayment records a payment applied against an invoice.
type InvoicePayment struct {
	ID          string  `json:"id"`
	Invoice     *Ref    `json:"invoice,omitempty"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate,omitempty"`
	Method      string  `json:"method,omitempty"`
	Reference   string  `json:"reference,omitempty"`
}

// LedgerAccount is one account in the chart of accounts.
type LedgerAccount struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Type   string `json:"type"` // ASSET, LIABILITY, EQUITY, INCOME, EXPENSE
	Active bool   `json:"active"`
}

// LedgerTransaction is a journal transaction header.
type LedgerTransaction struct {
	ID          string `json:"id"`
	Reference   string `json:"reference,omitempty"`
	Date        string `json:"transactionDate,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// LedgerEntry is a single debit or credit line within a transaction.
type LedgerEntry struct {
	ID          string  `json:"id"`
	Transaction *Ref    `json:"ledgerTransaction,omitempty"`
	Account     *Ref    `json:"ledgerAccount,omitempty"`
	Debit       float64 `json:"debit,omitempty"`
	Credit      float64 `json:"credit,omitempty"`
}

// Corporate is a company going through KYC onboarding.
type Corporate struct {
	ID                 string `json:"id"`
	LegalName          string `json:"legalName"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Country            string `json:"country,omitempty"`
	Email              string `json:"email,omitempty"`
	Status             string `json:"status,omitempty"` // DRAFT, SUBMITTED, APPROVED, REJECTED
}

// Director is a company officer declared during onboarding.
type Director struct {
	ID          string `json:"id"`
	Corporate   *Ref   `json:"corporate,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// KYCDocument is an uploaded onboarding document.
type KYCDocument struct {
	ID        string `json:"id"`
	Corporate *Ref   `json:"corporate,omitempty"`
	Type      string `json:"type,omitempty"` // CERTIFICATE_OF_INCORPORATION, PROOF_OF_ADDRESS, ...
	FileName  string `json:"fileName,omitempty"`
	Status    string `json:"status,omitempty"`
}

// BankAccount is a payout/settlement account in user settings.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Currency      string `json:"currency,omitempty"`
	Primary       bool   `json:"primary"`
}
