package order

import "errors"

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrInvalidStatus = errors.New("invalid status")
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(ord Order) (Order, error) {
	if ord.TenantID <= 0 {
		return Order{}, errors.New("invalid tenant")
	}
	if len(ord.Items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	if ord.Status == "" {
		ord.Status = StatusPending
	}
	return s.repo.Create(ord)
}

func (s *Service) GetByNumber(orderNumber string) (Order, error) {
	if orderNumber == "" {
		return Order{}, ErrNotFound
	}
	return s.repo.GetByNumber(orderNumber)
}

func (s *Service) ListByTenant(tenantID int) ([]Order, error) {
	if tenantID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByTenant(tenantID)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(id, status, updatedAt)
}
