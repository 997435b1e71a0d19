package landing

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("landing config not found")

// Repository persists landing configs per tenant.
type Repository interface {
	Get(tenantID int) (Config, error)
	Save(tenantID int, cfg Config) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	configs map[int]Config
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{configs: make(map[int]Config)}
}

func (r *InMemoryRepository) Get(tenantID int) (Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[tenantID]
	if !ok {
		return Config{}, ErrNotFound
	}
	return cfg.Clone(), nil
}

func (r *InMemoryRepository) Save(tenantID int, cfg Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[tenantID] = cfg.Clone()
	return nil
}
