package subscription

// FreePlanCode is the tier every merchant starts on.
const FreePlanCode = "free"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Plans() ([]Plan, error) {
	return s.repo.ListPlans()
}

// Status returns the merchant's active plan. Merchants without a
// subscription row are on the free plan.
func (s *Service) Status(merchantID int) (Status, error) {
	st, err := s.repo.StatusForMerchant(merchantID)
	if err == ErrNoSubscription {
		return s.freeStatus()
	}
	if err != nil {
		return Status{}, err
	}
	return st, nil
}

func (s *Service) freeStatus() (Status, error) {
	plans, err := s.repo.ListPlans()
	if err != nil {
		return Status{}, err
	}
	for _, p := range plans {
		if p.Code == FreePlanCode {
			return Status{Plan: p}, nil
		}
	}
	return Status{Plan: Plan{Code: FreePlanCode, Name: "Free"}}, nil
}

func (s *Service) Payments(merchantID int) ([]Payment, error) {
	return s.repo.ListPayments(merchantID)
}
