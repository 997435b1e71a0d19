package subscription

import (
	"errors"
	"sync"
)

var ErrNoSubscription = errors.New("merchant has no subscription")

// Repository provides read access to plans and billing records.
type Repository interface {
	ListPlans() ([]Plan, error)
	StatusForMerchant(merchantID int) (Status, error)
	ListPayments(merchantID int) ([]Payment, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	plans    []Plan
	statuses map[int]Status
	payments map[int][]Payment
}

func NewInMemoryRepository(plans []Plan) *InMemoryRepository {
	r := &InMemoryRepository{
		plans:    make([]Plan, 0, len(plans)),
		statuses: make(map[int]Status),
		payments: make(map[int][]Payment),
	}
	r.plans = append(r.plans, plans...)
	return r
}

func (r *InMemoryRepository) SetStatus(merchantID int, st Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[merchantID] = st
}

func (r *InMemoryRepository) AddPayment(merchantID int, p Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[merchantID] = append(r.payments[merchantID], p)
}

func (r *InMemoryRepository) ListPlans() ([]Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plan, len(r.plans))
	copy(out, r.plans)
	return out, nil
}

func (r *InMemoryRepository) StatusForMerchant(merchantID int) (Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.statuses[merchantID]
	if !ok {
		return Status{}, ErrNoSubscription
	}
	return st, nil
}

func (r *InMemoryRepository) ListPayments(merchantID int) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.payments[merchantID]
	out := make([]Payment, len(src))
	copy(out, src)
	return out, nil
}
