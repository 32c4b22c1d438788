package soupfinance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestAwaitKYCDecisionPollsUntilApproved(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/corporate/show/c-1.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		status := "SUBMITTED"
		if polls.Add(1) >= 3 {
			status = "APPROVED"
		}
		fmt.Fprintf(w, `{"id":"c-1","legalName":"Soupy Ltd","status":%q}`, status)
	}))
	defer srv.Close()

	c := New(srv.URL, WithKYCPollInterval(5*time.Millisecond))
	corp, err := c.AwaitKYCDecision(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("AwaitKYCDecision: %v", err)
	}
	if corp.Status != "APPROVED" {
		t.Fatalf("status = %q, want APPROVED", corp.Status)
	}
	if polls.Load() < 3 {
		t.Fatalf("expected at least 3 polls, got %d", polls.Load())
	}
}

func TestAwaitKYCDecisionAbortsOnMissingCorporate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, WithKYCPollInterval(5*time.Millisecond))
	_, err := c.AwaitKYCDecision(context.Background(), "gone")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found abort, got %v", err)
	}
}

func TestAwaitKYCDecisionSurvivesTransientErrors(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if polls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":"c-2","legalName":"Soupy Ltd","status":"REJECTED"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithKYCPollInterval(5*time.Millisecond))
	corp, err := c.AwaitKYCDecision(context.Background(), "c-2")
	if err != nil {
		t.Fatalf("AwaitKYCDecision: %v", err)
	}
	if corp.Status != "REJECTED" {
		t.Fatalf("status = %q, want REJECTED", corp.Status)
	}
}

func TestAwaitKYCDecisionHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"c-3","status":"SUBMITTED"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	c := New(srv.URL, WithKYCPollInterval(10*time.Millisecond))
	if _, err := c.AwaitKYCDecision(ctx, "c-3"); err == nil {
		t.Fatal("expected context error")
	}
}
