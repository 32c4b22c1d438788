package rest

import "sync"

// Navigator abstracts the host application's routing. The pipeline never
// reaches into global navigation state; the 401 handler asks for the current
// location and redirects through this interface, injected at construction.
type Navigator interface {
	// Location returns the current route path.
	Location() string
	// Navigate moves the host application to path.
	Navigate(path string)
}

// MemoryNavigator records navigation in memory. It is the default for hosts
// that have no routing of their own and the vehicle for tests.
type MemoryNavigator struct {
	mu  sync.Mutex
	loc string
}

// NewMemoryNavigator starts at path.
func NewMemoryNavigator(path string) *MemoryNavigator {
	return &MemoryNavigator{loc: path}
}

func (n *MemoryNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loc
}

func (n *MemoryNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.loc = path
}
