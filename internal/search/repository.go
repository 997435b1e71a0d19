package search

import (
	"fmt"
	"sync"
)

// Repository persists recent-search lists per tenant and visitor key.
type Repository interface {
	Get(tenantID int, key string) (Recent, bool, error)
	Save(tenantID int, key string, recent Recent) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string]Recent
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string]Recent)}
}

func listKey(tenantID int, key string) string {
	return fmt.Sprintf("%d/%s", tenantID, key)
}

func (r *InMemoryRepository) Get(tenantID int, key string) (Recent, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.lists[listKey(tenantID, key)]
	if !ok {
		return Recent{}, false, nil
	}
	return Recent{Terms: rec.Snapshot()}, true, nil
}

func (r *InMemoryRepository) Save(tenantID int, key string, recent Recent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[listKey(tenantID, key)] = Recent{Terms: recent.Snapshot()}
	return nil
}
