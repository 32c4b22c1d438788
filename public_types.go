package soupfinance

import (
	"github.com/tasltd/soupfinance-sub004/internal/session"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// Public type aliases so SDK consumers can import only this package.
type (
	// Domain entities
	Ref               = types.Ref
	User              = types.User
	Vendor            = types.Vendor
	Bill              = types.Bill
	BillItem          = types.BillItem
	Invoice           = types.Invoice
	InvoiceItem       = types.InvoiceItem
	InvoicePayment    = types.InvoicePayment
	LedgerAccount     = types.LedgerAccount
	LedgerTransaction = types.LedgerTransaction
	LedgerEntry       = types.LedgerEntry
	Corporate         = types.Corporate
	Director          = types.Director
	KYCDocument       = types.KYCDocument
	BankAccount       = types.BankAccount

	// Requests
	CreateBillRequest              = types.CreateBillRequest
	UpdateBillRequest              = types.UpdateBillRequest
	CreateBillItemRequest          = types.CreateBillItemRequest
	CreateInvoiceRequest           = types.CreateInvoiceRequest
	UpdateInvoiceRequest           = types.UpdateInvoiceRequest
	CreateInvoiceItemRequest       = types.CreateInvoiceItemRequest
	CreateInvoicePaymentRequest    = types.CreateInvoicePaymentRequest
	VendorInput                    = types.VendorInput
	CreateLedgerAccountRequest     = types.CreateLedgerAccountRequest
	UpdateLedgerAccountRequest     = types.UpdateLedgerAccountRequest
	CreateLedgerTransactionRequest = types.CreateLedgerTransactionRequest
	CreateLedgerEntryRequest       = types.CreateLedgerEntryRequest
	CreateCorporateRequest         = types.CreateCorporateRequest
	UpdateCorporateRequest         = types.UpdateCorporateRequest
	CreateDirectorRequest          = types.CreateDirectorRequest
	CreateKYCDocumentRequest       = types.CreateKYCDocumentRequest
	UpdateUserRequest              = types.UpdateUserRequest
	BankAccountInput               = types.BankAccountInput

	// Session
	Session = session.Session
)
