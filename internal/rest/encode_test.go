package rest

import (
	"strings"
	"testing"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

func TestEncodeQuery(t *testing.T) {
	t.Parallel()
	q := EncodeQuery(Params{
		"page":     1,
		"size":     20,
		"search":   "test query",
		"status":   "PAID",
		"archived": nil,
	})
	for _, want := range []string{"page=1", "size=20", "search=test+query", "status=PAID"} {
		if !strings.Contains(q, want) {
			t.Fatalf("query %q missing %q", q, want)
		}
	}
	if strings.Contains(q, "archived") {
		t.Fatalf("nil-valued key leaked into query: %q", q)
	}
	if strings.Contains(q, "%20") {
		t.Fatalf("spaces must encode as +, got %q", q)
	}
}

func TestEncodeQuery_Empty(t *testing.T) {
	t.Parallel()
	if got := EncodeQuery(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := EncodeQuery(Params{"only": nil}); got != "" {
		t.Fatalf("all-nil params must produce empty string, got %q", got)
	}
}

func TestFlattenForm(t *testing.T) {
	t.Parallel()
	values := FlattenForm(map[string]any{
		"name":   "Test Invoice",
		"amount": 1500.50,
		"client": map[string]any{"id": "client-uuid-123"},
		"active": true,
		"notes":  nil,
	})
	checks := map[string]string{
		"name":      "Test Invoice",
		"amount":    "1500.5",
		"client.id": "client-uuid-123",
		"active":    "true",
	}
	for key, want := range checks {
		if got := values.Get(key); got != want {
			t.Fatalf("field %s: got %q, want %q", key, got, want)
		}
	}
	if values.Has("notes") {
		t.Fatalf("nil field must be omitted, got %q", values.Encode())
	}
}

func TestFlattenForm_RefTypes(t *testing.T) {
	t.Parallel()
	values := FlattenForm(map[string]any{
		"vendor":  types.Ref{ID: "v-1"},
		"account": &types.Ref{ID: "a-1"},
		"empty":   &types.Ref{},
	})
	if got := values.Get("vendor.id"); got != "v-1" {
		t.Fatalf("Ref flattening: got %q", got)
	}
	if got := values.Get("account.id"); got != "a-1" {
		t.Fatalf("*Ref flattening: got %q", got)
	}
	if values.Has("empty.id") {
		t.Fatalf("empty reference must be omitted")
	}
}
