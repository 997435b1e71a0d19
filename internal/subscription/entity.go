package subscription

import "time"

// Plan is a subscription tier a merchant can be on.
type Plan struct {
	ID       int      `json:"id"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

// Status of the merchant's subscription, including the active plan and
// when it lapses. A zero ExpiresAt means the plan never expires.
type Status struct {
	Plan      Plan       `json:"plan"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Payment is a settled billing record. The API only reads these; charging
// happens outside this service.
type Payment struct {
	ID        int       `json:"id"`
	PlanCode  string    `json:"planCode"`
	Amount    int       `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"paidAt"`
}
