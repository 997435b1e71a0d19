package discovery

import "strings"

const defaultListLimit = 20

// Service orchestrates marketplace listings.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCategories() ([]StoreCategory, error) {
	return s.repo.ListCategories()
}

func (s *Service) ListStores(limit int) ([]StoreCard, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.repo.ListStores(limit)
}

func (s *Service) SearchStores(query string, limit int) ([]StoreCard, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []StoreCard{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.repo.SearchStores(query, limit)
}
