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

func TestSubmitKYC_TransitionsToSubmitted(t *testing.T) {
	t.Parallel()
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/corporate/update/c-1.json" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"id":"c-1","status":"SUBMITTED"}`))
	}))
	defer srv.Close()

	corp, err := SubmitKYC(context.Background(), restClient(srv.URL), "c-1")
	if err != nil || corp.Status != KYCStatusSubmitted {
		t.Fatalf("SubmitKYC: %v (%+v)", err, corp)
	}
	if body["status"] != "SUBMITTED" || body["id"] != "c-1" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestKYCDecided(t *testing.T) {
	t.Parallel()
	for status, want := range map[string]bool{
		KYCStatusDraft:     false,
		KYCStatusSubmitted: false,
		KYCStatusApproved:  true,
		KYCStatusRejected:  true,
	} {
		if got := KYCDecided(status); got != want {
			t.Fatalf("KYCDecided(%s) = %v", status, got)
		}
	}
}

func TestListDirectors_ParentFilter(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/director/index.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("corporate.id"); got != "c-1" {
			t.Errorf("corporate.id = %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":"d-1","firstName":"Ada","lastName":"Lovelace"}]`))
	}))
	defer srv.Close()

	directors, err := ListDirectors(context.Background(), restClient(srv.URL), "c-1")
	if err != nil || len(directors) != 1 || directors[0].FirstName != "Ada" {
		t.Fatalf("ListDirectors: %v (%+v)", err, directors)
	}
}

func TestCreateDirector_RequiresCorporateRef(t *testing.T) {
	t.Parallel()
	req := types.CreateDirectorRequest{FirstName: "Ada", LastName: "Lovelace"}
	if _, err := CreateDirector(context.Background(), restClient("http://example.invalid"), req); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCreateKYCDocument(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/kycDocument/create.json":
			_, _ = w.Write([]byte(`{"kycDocument":{"SYNCHRONIZER_TOKEN":"tok","SYNCHRONIZER_URI":"/kycDocument/save"}}`))
		case "/kycDocument/save.json":
			_, _ = w.Write([]byte(`{"id":"doc-1","type":"PROOF_OF_ADDRESS"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	doc, err := CreateKYCDocument(context.Background(), restClient(srv.URL), types.CreateKYCDocumentRequest{
		Corporate: &types.Ref{ID: "c-1"},
		Type:      "PROOF_OF_ADDRESS",
	})
	if err != nil || doc.ID != "doc-1" {
		t.Fatalf("CreateKYCDocument: %v (%+v)", err, doc)
	}
}
