package session

import (
	"sync"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// Manager routes credential reads and writes to the store selected by the
// "remember me" choice at login: the persistent FileStore when remembered,
// the process-scoped MemoryStore otherwise. Reads always hit the active
// store; Clear wipes both so a 401 cannot leave a stale persisted token.
type Manager struct {
	mu     sync.RWMutex
	memory *MemoryStore
	file   *FileStore // nil when persistence is not configured
	active Store
}

// NewManager builds a manager over a fresh MemoryStore and the optional
// persistent store. When the persistent store already holds a token from a
// previous run it becomes the active store, resuming that session.
func NewManager(file *FileStore) *Manager {
	m := &Manager{memory: NewMemoryStore(), file: file}
	m.active = m.memory
	if file != nil {
		if _, ok := file.Token(); ok {
			m.active = file
		}
	}
	return m
}

// Activate selects the storage medium for subsequent writes. Remembered
// sessions fall back to memory when no persistent store is configured.
func (m *Manager) Activate(remember bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if remember && m.file != nil {
		m.active = m.file
		return
	}
	m.active = m.memory
}

func (m *Manager) SetSession(s Session) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active.SetSession(s)
}

func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active.Token()
}

func (m *Manager) User() (types.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active.User()
}

// Clear wipes every configured store, not just the active one.
func (m *Manager) Clear() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.memory.Clear(); err != nil {
		return err
	}
	if m.file != nil {
		return m.file.Clear()
	}
	return nil
}
