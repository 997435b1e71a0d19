package discovery

import (
	"strings"
	"sync"
)

// Repository provides access to marketplace listings.
type Repository interface {
	ListCategories() ([]StoreCategory, error)
	ListStores(limit int) ([]StoreCard, error)
	SearchStores(query string, limit int) ([]StoreCard, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []StoreCategory
	stores     []StoreCard
}

func NewInMemoryRepository(categories []StoreCategory, stores []StoreCard) *InMemoryRepository {
	return &InMemoryRepository{categories: categories, stores: stores}
}

func (r *InMemoryRepository) ListCategories() ([]StoreCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StoreCategory, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryRepository) ListStores(limit int) ([]StoreCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StoreCard, 0, limit)
	for _, s := range r.stores {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *InMemoryRepository) SearchStores(query string, limit int) ([]StoreCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	out := make([]StoreCard, 0)
	for _, s := range r.stores {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out, nil
}
