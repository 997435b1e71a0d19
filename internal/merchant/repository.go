package merchant

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("merchant not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository provides access to merchant accounts.
type Repository interface {
	GetByID(id int) (Merchant, error)
	GetByEmail(email string) (Merchant, error)
	Create(m Merchant) (Merchant, error)
	Update(id int, m Merchant) (Merchant, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	merchants []Merchant
	nextID    int
}

func NewInMemoryRepository(seed []Merchant) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	for _, m := range seed {
		r.merchants = append(r.merchants, m)
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) GetByID(id int) (Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.ID == id {
			return m, nil
		}
	}
	return Merchant{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.Email == email {
			return m, nil
		}
	}
	return Merchant{}, ErrNotFound
}

func (r *InMemoryRepository) Create(m Merchant) (Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	r.merchants = append(r.merchants, m)
	return m, nil
}

func (r *InMemoryRepository) Update(id int, m Merchant) (Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.merchants {
		if existing.ID == id {
			m.ID = id
			r.merchants[i] = m
			return m, nil
		}
	}
	return Merchant{}, ErrNotFound
}
