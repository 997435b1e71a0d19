package landing

import "sync"

// Service manages one editing session per tenant on top of the repository.
// Drafts live in memory between requests; the persisted copy is only written
// on publish.
type Service struct {
	repo Repository

	mu      sync.Mutex
	editors map[int]*Editor
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, editors: make(map[int]*Editor)}
}

// editor returns the tenant's editing session, seeding it from the persisted
// config on first access.
func (s *Service) editor(tenantID int) (*Editor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.editors[tenantID]; ok {
		return e, nil
	}
	cfg, err := s.repo.Get(tenantID)
	if err != nil {
		return nil, err
	}
	e := NewEditor(tenantID, cfg)
	s.editors[tenantID] = e
	return e, nil
}

// State is the dashboard view of a tenant's landing config.
type State struct {
	Config Config `json:"config"`
	Dirty  bool   `json:"unsavedChanges"`
}

func (s *Service) Get(tenantID int) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

func (s *Service) UpdateConfig(tenantID int, p ConfigPatch) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	e.UpdateConfig(p)
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

func (s *Service) UpdateSection(tenantID int, key string, p SectionPatch) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	e.UpdateSection(key, p)
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

func (s *Service) ToggleSection(tenantID int, key string, enabled bool) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	e.ToggleSection(key, enabled)
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

func (s *Service) Reorder(tenantID int, order []string) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	e.Reorder(order)
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

// Publish persists the draft. On failure the draft stays dirty for retry.
func (s *Service) Publish(tenantID int) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	if err := e.Publish(s.repo); err != nil {
		return State{Config: e.Current(), Dirty: e.Dirty()}, err
	}
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

func (s *Service) Discard(tenantID int) (State, error) {
	e, err := s.editor(tenantID)
	if err != nil {
		return State{}, err
	}
	e.Discard()
	return State{Config: e.Current(), Dirty: e.Dirty()}, nil
}

// Published returns the persisted config for storefront rendering, skipping
// any draft state.
func (s *Service) Published(tenantID int) (Config, error) {
	cfg, err := s.repo.Get(tenantID)
	if err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	return cfg, nil
}
