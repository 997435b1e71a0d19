package cart

import (
	"fmt"
	"sync"
)

// Store persists whole-cart snapshots under a client-supplied cart key,
// scoped per tenant. found distinguishes "no snapshot yet" from "stored and
// empty" so callers can expose a hydration flag.
type Store interface {
	Load(tenantID int, key string) (c Cart, found bool, err error)
	Save(tenantID int, key string, c Cart) error
	Delete(tenantID int, key string) error
}

// InMemoryStore is used for tests and local scenarios.
type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{carts: make(map[string]Cart)}
}

func storeKey(tenantID int, key string) string {
	return fmt.Sprintf("%d/%s", tenantID, key)
}

func (s *InMemoryStore) Load(tenantID int, key string) (Cart, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[storeKey(tenantID, key)]
	if !ok {
		return Cart{}, false, nil
	}
	return Cart{Items: c.Snapshot()}, true, nil
}

func (s *InMemoryStore) Save(tenantID int, key string, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[storeKey(tenantID, key)] = Cart{Items: c.Snapshot()}
	return nil
}

func (s *InMemoryStore) Delete(tenantID int, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, storeKey(tenantID, key))
	return nil
}
