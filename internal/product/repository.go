package product

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Repository provides access to catalog entries.
type Repository interface {
	ListByTenant(tenantID int) ([]Product, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	nextID   int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	for _, p := range seed {
		r.products = append(r.products, p)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) ListByTenant(tenantID int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == id {
			p.ID = id
			p.TenantID = existing.TenantID
			r.products[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
