package search

import "errors"

// ErrSearchKeyRequired is returned when a request carries no visitor key.
var ErrSearchKeyRequired = errors.New("search key required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Recent returns the visitor's recent search terms, newest first.
func (s *Service) Recent(tenantID int, key string) ([]string, error) {
	if key == "" {
		return nil, ErrSearchKeyRequired
	}
	rec, _, err := s.repo.Get(tenantID, key)
	if err != nil {
		return nil, err
	}
	return rec.Snapshot(), nil
}

// Record stores a term at the head of the visitor's list and returns
// the updated list.
func (s *Service) Record(tenantID int, key string, term string) ([]string, error) {
	if key == "" {
		return nil, ErrSearchKeyRequired
	}
	rec, _, err := s.repo.Get(tenantID, key)
	if err != nil {
		return nil, err
	}
	rec.Record(term)
	if err := s.repo.Save(tenantID, key, rec); err != nil {
		return nil, err
	}
	return rec.Snapshot(), nil
}
