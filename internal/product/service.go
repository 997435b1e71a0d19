package product

import "errors"

var ErrInvalidProduct = errors.New("invalid product")

// Service orchestrates catalog operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByTenant(tenantID int) ([]Product, error) {
	if tenantID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByTenant(tenantID)
}

// ListActive returns the products visible on the public storefront.
func (s *Service) ListActive(tenantID int) ([]Product, error) {
	all, err := s.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetByID(id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.TenantID <= 0 || p.Name == "" || p.Price < 0 {
		return Product{}, ErrInvalidProduct
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	if p.Name == "" || p.Price < 0 {
		return Product{}, ErrInvalidProduct
	}
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
