package checkout

import (
	"errors"

	"github.com/fibidy/fibidy-backend/internal/cart"
	"github.com/fibidy/fibidy-backend/internal/tenant"
)

// Validation failures, each surfaced as its own user-facing message. These
// are all caught before any side effect runs.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrAddressRequired = errors.New("address is required")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Request is the customer-entered checkout form.
type Request struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Courier       string `json:"courier,omitempty"`
}

// Validate checks the form and cart before submission. The first missing
// field wins; nothing is submitted partially.
func (r Request) Validate(c *cart.Cart) error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if r.Phone == "" {
		return ErrPhoneRequired
	}
	if r.Address == "" {
		return ErrAddressRequired
	}
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	return nil
}

// Totals is the price breakdown derived from cart contents and tenant
// settings. It is recomputed from scratch, never accumulated.
type Totals struct {
	Subtotal int     `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping int     `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices the cart under the tenant's checkout settings:
// tax only when a rate is configured, shipping waived at the free-shipping
// threshold.
func ComputeTotals(c *cart.Cart, settings tenant.CheckoutSettings) Totals {
	subtotal := c.TotalPrice()

	var tax float64
	if settings.TaxRate > 0 {
		tax = float64(subtotal) * settings.TaxRate / 100
	}

	shipping := settings.DefaultShippingCost
	if subtotal >= settings.FreeShippingThreshold {
		shipping = 0
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    float64(subtotal+shipping) + tax,
	}
}
