// Package session holds the client's auth credentials: an access token plus
// the user profile returned at login. Two store implementations mirror the
// "remember me" toggle: MemoryStore lives for the process, FileStore
// persists across runs.
package session

import "github.com/tasltd/soupfinance-sub004/internal/types"

// Storage slot names. FileStore keeps all three in one JSON document;
// the envelope slot duplicates the profile for the reactive-store format.
const (
	slotAccessToken = "access_token"
	slotUser        = "user"
	slotEnvelope    = "auth-storage"
)

// envelopeVersion is the auth-storage schema version.
const envelopeVersion = 0

// Session is the credential pair established by login or OTP verification.
type Session struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// Store is the read-many/write-rarely credential holder. Writes happen at
// login, logout, and on 401; every outbound request reads Token.
type Store interface {
	// SetSession replaces the stored credentials.
	SetSession(s Session) error
	// Token returns the access token, reporting whether one is present.
	Token() (string, bool)
	// User returns the cached profile, reporting whether one is present.
	User() (types.User, bool)
	// Clear removes all credential slots. Clearing an empty store is a no-op.
	Clear() error
}

// envelope is the versioned wrapper kept alongside the raw slots.
type envelope struct {
	State   envelopeState `json:"state"`
	Version int           `json:"version"`
}

type envelopeState struct {
	User            *types.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

func newEnvelope(u types.User) envelope {
	return envelope{
		State:   envelopeState{User: &u, IsAuthenticated: true},
		Version: envelopeVersion,
	}
}
