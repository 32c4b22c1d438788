package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

func TestCreateVendor_FormEncoded(t *testing.T) {
	t.Parallel()
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vendor/create.json":
			_, _ = w.Write([]byte(`{"vendor":{"SYNCHRONIZER_TOKEN":"tok-c","SYNCHRONIZER_URI":"/vendor/save"}}`))
		case "/vendor/save.json":
			if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
				t.Errorf("content type %q", ct)
			}
			raw, _ := io.ReadAll(r.Body)
			form, _ = url.ParseQuery(string(raw))
			_, _ = w.Write([]byte(`{"id":"v-1","name":"Acme Ltd","active":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	vendor, err := CreateVendor(context.Background(), restClient(srv.URL), types.VendorInput{
		Name:   "Acme Ltd",
		Email:  "ap@acme.test",
		Active: true,
	})
	if err != nil || vendor.ID != "v-1" {
		t.Fatalf("CreateVendor: %v (%+v)", err, vendor)
	}
	if form.Get("name") != "Acme Ltd" || form.Get("email") != "ap@acme.test" || form.Get("active") != "true" {
		t.Fatalf("unexpected form body %v", form)
	}
	if form.Has("phone") {
		t.Fatalf("empty optional field must be omitted: %v", form)
	}
}

func TestUpdateVendor_LegacyEditHandshake(t *testing.T) {
	t.Parallel()
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/vendor/edit/v-1.json":
			_, _ = w.Write([]byte(`{"vendor":{"SYNCHRONIZER_TOKEN":"tok-e","SYNCHRONIZER_URI":"/vendor/update"}}`))
		case "/vendor/update/v-1.json":
			if r.URL.Query().Get("SYNCHRONIZER_TOKEN") != "tok-e" {
				t.Error("token missing from update query")
			}
			_, _ = w.Write([]byte(`{"id":"v-1","name":"Acme Renamed"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	vendor, err := UpdateVendor(context.Background(), restClient(srv.URL), "v-1", types.VendorInput{Name: "Acme Renamed"})
	if err != nil || vendor.Name != "Acme Renamed" {
		t.Fatalf("UpdateVendor: %v (%+v)", err, vendor)
	}
	if len(calls) != 2 || calls[0] != "GET /vendor/edit/v-1.json" || calls[1] != "PUT /vendor/update/v-1.json" {
		t.Fatalf("unexpected call sequence %v", calls)
	}
}

func TestListVendors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"v-1"},{"id":"v-2"}]`))
	}))
	defer srv.Close()

	vendors, err := ListVendors(context.Background(), restClient(srv.URL), nil)
	if err != nil || len(vendors) != 2 {
		t.Fatalf("ListVendors: %v (%+v)", err, vendors)
	}
}
