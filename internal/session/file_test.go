package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	s := Session{
		Token: "tok-abc",
		User:  types.User{Username: "alice", Email: "alice@example.com", Roles: []string{"ROLE_USER"}},
	}
	if err := store.SetSession(s); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if tok, ok := store.Token(); !ok || tok != "tok-abc" {
		t.Fatalf("Token() = %q, %v", tok, ok)
	}
	if user, ok := store.User(); !ok || user.Username != "alice" {
		t.Fatalf("User() = %+v, %v", user, ok)
	}

	// A second store on the same path resumes the session.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if tok, ok := reopened.Token(); !ok || tok != "tok-abc" {
		t.Fatalf("reopened Token() = %q, %v", tok, ok)
	}
}

func TestFileStore_EnvelopeLayout(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.SetSession(Session{Token: "t", User: types.User{Username: "bob"}}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, slot := range []string{"access_token", "user", "auth-storage"} {
		if _, ok := doc[slot]; !ok {
			t.Fatalf("slot %q missing from %s", slot, raw)
		}
	}

	var env struct {
		State struct {
			User            *types.User `json:"user"`
			IsAuthenticated bool        `json:"isAuthenticated"`
		} `json:"state"`
		Version int `json:"version"`
	}
	if err := json.Unmarshal(doc["auth-storage"], &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.State.IsAuthenticated || env.State.User == nil || env.State.User.Username != "bob" {
		t.Fatalf("envelope out of sync: %+v", env)
	}
	if env.Version != 0 {
		t.Fatalf("envelope version = %d", env.Version)
	}
}

func TestFileStore_Clear(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.SetSession(Session{Token: "t"}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Fatal("token survived Clear")
	}
	if _, ok := store.User(); ok {
		t.Fatal("user survived Clear")
	}
	// Clearing an empty store is a no-op.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
