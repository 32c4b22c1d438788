package session

import (
	"sync"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// MemoryStore keeps credentials for the lifetime of the process only
// ("remember me" off).
type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewMemoryStore returns an empty process-scoped store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) SetSession(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	return nil
}

func (m *MemoryStore) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil || m.session.Token == "" {
		return "", false
	}
	return m.session.Token, true
}

func (m *MemoryStore) User() (types.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return types.User{}, false
	}
	return m.session.User, true
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
