package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	GetByNumber(orderNumber string) (Order, error)
	ListByTenant(tenantID int) ([]Order, error)
	UpdateStatus(id int, status, updatedAt string) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) GetByNumber(orderNumber string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByTenant(tenantID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	// newest first
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].TenantID == tenantID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = updatedAt
			r.orders[i] = o
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}
