package tenant

import (
	"errors"
	"sync"
)

var (
	ErrNotFound   = errors.New("tenant not found")
	ErrSlugExists = errors.New("slug already taken")
)

// Repository provides access to tenant records.
type Repository interface {
	GetByID(id int) (Tenant, error)
	GetBySlug(slug string) (Tenant, error)
	GetByMerchantID(merchantID int) (Tenant, error)
	Create(t Tenant) (Tenant, error)
	Update(id int, t Tenant) (Tenant, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	tenants []Tenant
	nextID  int
}

func NewInMemoryRepository(seed []Tenant) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	for _, t := range seed {
		r.tenants = append(r.tenants, t)
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) GetByID(id int) (Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

func (r *InMemoryRepository) GetByMerchantID(merchantID int) (Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tenants {
		if t.MerchantID == merchantID {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

func (r *InMemoryRepository) Create(t Tenant) (Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tenants {
		if existing.Slug == t.Slug {
			return Tenant{}, ErrSlugExists
		}
	}
	t.ID = r.nextID
	r.nextID++
	r.tenants = append(r.tenants, t)
	return t, nil
}

func (r *InMemoryRepository) Update(id int, t Tenant) (Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.tenants {
		if existing.ID == id {
			t.ID = id
			r.tenants[i] = t
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}
