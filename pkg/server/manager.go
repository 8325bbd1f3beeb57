package server

import (
	"context"
	"sync"
	"time"

	"products-api/internal/config"
)

// staleAfter is how long an idle container is still reported healthy
const staleAfter = 5 * time.Minute

// Manager owns the container across warm Lambda invocations
type Manager struct {
	container *Container
	lastUsed  time.Time
	mu        sync.RWMutex
	loadCfg   func() (*config.Config, error)
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global manager instance
func GetManager() *Manager {
	managerOnce.Do(func() {
		globalManager = NewManager(config.GetOptimizedConfig)
	})
	return globalManager
}

// NewManager creates a manager that builds its container from loadCfg on first use
func NewManager(loadCfg func() (*config.Config, error)) *Manager {
	return &Manager{loadCfg: loadCfg}
}

// GetContainer returns the container, initializing it if necessary.
// A failed initialization is retried on the next call.
func (m *Manager) GetContainer(ctx context.Context) (*Container, error) {
	m.mu.RLock()
	if m.container != nil {
		container := m.container
		m.mu.RUnlock()
		m.UpdateLastUsed()
		return container, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another invocation may have won the race
	if m.container != nil {
		m.lastUsed = time.Now()
		return m.container, nil
	}

	cfg, err := m.loadCfg()
	if err != nil {
		return nil, err
	}
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, err
	}

	m.container = container
	m.lastUsed = time.Now()
	return container, nil
}

// IsHealthy checks if the container is initialized and recently used
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.container == nil {
		return false
	}
	return time.Since(m.lastUsed) < staleAfter
}

// Cleanup releases the container; the next GetContainer rebuilds it
func (m *Manager) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.container != nil {
		if err := m.container.Close(); err != nil {
			return err
		}
		m.container = nil
	}
	return nil
}

// UpdateLastUsed updates the last used timestamp
func (m *Manager) UpdateLastUsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUsed = time.Now()
}
