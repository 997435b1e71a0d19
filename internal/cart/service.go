package cart

import "errors"

var ErrCartKeyRequired = errors.New("cart key required")

// Session is the loaded view of one shopper's cart. Hydrated distinguishes
// "not yet loaded from storage" from "loaded and empty".
type Session struct {
	Cart     Cart `json:"cart"`
	Hydrated bool `json:"hydrated"`
}

// Service loads cart sessions and writes the whole snapshot back after every
// mutation.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load hydrates the shopper's cart. A missing snapshot yields an empty,
// hydrated session — the distinction only matters before Load returns.
func (s *Service) Load(tenantID int, key string) (Session, error) {
	if key == "" {
		return Session{}, ErrCartKeyRequired
	}
	c, _, err := s.store.Load(tenantID, key)
	if err != nil {
		return Session{}, err
	}
	return Session{Cart: c, Hydrated: true}, nil
}

// mutate loads, applies fn, and persists the result.
func (s *Service) mutate(tenantID int, key string, fn func(*Cart)) (Session, error) {
	sess, err := s.Load(tenantID, key)
	if err != nil {
		return Session{}, err
	}
	fn(&sess.Cart)
	if err := s.store.Save(tenantID, key, sess.Cart); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) AddItem(tenantID int, key string, item Item) (Session, error) {
	return s.mutate(tenantID, key, func(c *Cart) {
		if c.ItemQty(item.ID) > 0 {
			// adding an existing product bumps the quantity instead
			c.IncrementQty(item.ID)
			return
		}
		c.AddItem(item)
	})
}

func (s *Service) IncrementQty(tenantID int, key, id string) (Session, error) {
	return s.mutate(tenantID, key, func(c *Cart) { c.IncrementQty(id) })
}

func (s *Service) DecrementQty(tenantID int, key, id string) (Session, error) {
	return s.mutate(tenantID, key, func(c *Cart) { c.DecrementQty(id) })
}

func (s *Service) RemoveItem(tenantID int, key, id string) (Session, error) {
	return s.mutate(tenantID, key, func(c *Cart) { c.RemoveItem(id) })
}

// Clear empties and deletes the stored snapshot, e.g. after checkout.
func (s *Service) Clear(tenantID int, key string) error {
	if key == "" {
		return ErrCartKeyRequired
	}
	return s.store.Delete(tenantID, key)
}
