package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// FileStore persists credentials to a JSON file ("remember me" on). The
// document holds the raw access_token and user slots plus the versioned
// auth-storage envelope, kept in sync on every write and clear.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileDocument struct {
	AccessToken string      `json:"access_token,omitempty"`
	User        *types.User `json:"user,omitempty"`
	Envelope    *envelope   `json:"auth-storage,omitempty"`
}

// NewFileStore opens (or lazily creates) the credential file at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path must not be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) SetSession(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	env := newEnvelope(s.User)
	doc := fileDocument{
		AccessToken: s.Token,
		User:        &s.User,
		Envelope:    &env,
	}
	return f.write(doc)
}

func (f *FileStore) Token() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil || doc.AccessToken == "" {
		return "", false
	}
	return doc.AccessToken, true
}

func (f *FileStore) User() (types.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil || doc.User == nil {
		return types.User{}, false
	}
	return *doc.User, true
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session file: %w", err)
	}
	return nil
}

func (f *FileStore) read() (fileDocument, error) {
	var doc fileDocument
	data, err := os.ReadFile(f.path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fileDocument{}, fmt.Errorf("decode session file: %w", err)
	}
	return doc, nil
}

func (f *FileStore) write(doc fileDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	// Write-then-rename so a crash never leaves a torn credential file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
