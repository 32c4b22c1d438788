package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

func TestGetInvoice_DerivesTotalFromItems(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/invoice/show/inv-1.json":
			// The show endpoint omits a usable total.
			_, _ = w.Write([]byte(`{"id":"inv-1","invoiceNumber":"INV-001"}`))
		case "/invoiceItem/index.json":
			if got := r.URL.Query().Get("invoice.id"); got != "inv-1" {
				t.Errorf("invoice.id = %q", got)
			}
			_, _ = w.Write([]byte(`[{"id":"ii-1","quantity":10,"unitPrice":100},{"id":"ii-2","quantity":5,"unitPrice":100}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	inv, err := GetInvoice(context.Background(), restClient(srv.URL), "inv-1")
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if inv.TotalAmount != 1500.00 {
		t.Fatalf("TotalAmount = %v, want 1500.00", inv.TotalAmount)
	}
}

func TestGetInvoice_OverridesServerTotal(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/invoice/show/inv-2.json":
			_, _ = w.Write([]byte(`{"id":"inv-2","totalAmount":999999}`))
		case "/invoiceItem/index.json":
			_, _ = w.Write([]byte(`[{"id":"ii-1","quantity":3,"unitPrice":7}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	inv, err := GetInvoice(context.Background(), restClient(srv.URL), "inv-2")
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if inv.TotalAmount != 21 {
		t.Fatalf("item subtotal must override the show total, got %v", inv.TotalAmount)
	}
}

func TestGetInvoice_ItemListFailurePropagates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/invoice/show/inv-3.json" {
			_, _ = w.Write([]byte(`{"id":"inv-3"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := GetInvoice(context.Background(), restClient(srv.URL), "inv-3"); err == nil {
		t.Fatal("expected follow-up list failure to propagate")
	}
}

func TestCreateInvoiceItem_RequiresParentRef(t *testing.T) {
	t.Parallel()
	if _, err := CreateInvoiceItem(context.Background(), restClient("http://example.invalid"), types.CreateInvoiceItemRequest{Quantity: 1, UnitPrice: 2}); err == nil {
		t.Fatal("expected validation error for missing invoice ref")
	}
}

func TestCreateInvoicePayment(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/invoicePayment/create.json":
			_, _ = w.Write([]byte(`{"invoicePayment":{"SYNCHRONIZER_TOKEN":"tok","SYNCHRONIZER_URI":"/invoicePayment/save"}}`))
		case "/invoicePayment/save.json":
			raw, _ := io.ReadAll(r.Body)
			var body map[string]any
			_ = json.Unmarshal(raw, &body)
			if body["amount"] != 120.5 {
				t.Errorf("amount = %v", body["amount"])
			}
			_, _ = w.Write([]byte(`{"id":"p-1","amount":120.5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	payment, err := CreateInvoicePayment(context.Background(), restClient(srv.URL), types.CreateInvoicePaymentRequest{
		Invoice: &types.Ref{ID: "inv-1"},
		Amount:  120.5,
	})
	if err != nil || payment.ID != "p-1" {
		t.Fatalf("CreateInvoicePayment: %v (%+v)", err, payment)
	}
}
