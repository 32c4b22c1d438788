package soupfinance

import (
	"net/http"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	if New("http://example.com") == nil {
		t.Fatalf("expected client")
	}
}

func TestNew_PanicsOnEmptyBaseURL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty baseURL")
		}
	}()
	New("")
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New("http://example.com")
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v, want 30s", c.http.Timeout)
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: 7 * time.Second}
	c := New("http://example.com", WithHTTPClient(hc))
	if c.http.Timeout != 7*time.Second {
		t.Fatalf("custom client not installed")
	}
	if err := WithHTTPClient(nil)(&Client{}); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestCurrentSession_EmptyByDefault(t *testing.T) {
	c := New("http://example.com")
	if _, ok := c.CurrentSession(); ok {
		t.Fatalf("fresh client must have no session")
	}
}
