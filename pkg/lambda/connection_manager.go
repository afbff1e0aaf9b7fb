package lambda

import (
	"context"
	"errors"
	"sync"
	"time"

	"aya-cleaning-api/internal/config"
	"aya-cleaning-api/pkg/server"
)

// ConnectionManager keeps the service container, and with it the storage
// client, alive for the lifetime of the process so warm invocations reuse it.
type ConnectionManager struct {
	container *server.Container
	lastUsed  time.Time
	mu        sync.RWMutex
	initErr   error
	initOnce  sync.Once
	loadCfg   func() (*config.Config, error)
}

// ErrClosed is returned by GetContainer after Cleanup
var ErrClosed = errors.New("connection manager is closed")

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager that loads its
// configuration with loadCfg on first use
func NewConnectionManager(loadCfg func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadCfg: loadCfg}
}

// GetContainer returns the service container, initializing it on first use.
// A failed initialization is remembered and returned on every call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.initOnce.Do(func() {
		cfg, err := cm.loadCfg()
		if err != nil {
			cm.initErr = err
			return
		}

		container, err := server.NewContainer(ctx, cfg)
		if err != nil {
			cm.initErr = err
			return
		}

		cm.mu.Lock()
		cm.container = container
		cm.mu.Unlock()
	})

	if cm.initErr != nil {
		return nil, cm.initErr
	}

	cm.mu.Lock()
	cm.lastUsed = time.Now()
	container := cm.container
	cm.mu.Unlock()

	if container == nil {
		return nil, ErrClosed
	}
	return container, nil
}

// IsHealthy reports whether the container has been initialized
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container != nil
}

// LastUsed returns the time of the last GetContainer call
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lastUsed
}

// Cleanup releases the container's resources
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}

	err := cm.container.Close()
	cm.container = nil
	return err
}
