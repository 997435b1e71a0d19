package tenant

// CheckoutSettings drive cart totals and the checkout form options. Stored as
// JSONB on the tenant row.
type CheckoutSettings struct {
	// TaxRate is a percentage; 0 disables tax.
	TaxRate float64 `json:"taxRate"`
	// FreeShippingThreshold waives shipping once the subtotal reaches it.
	FreeShippingThreshold int `json:"freeShippingThreshold"`
	DefaultShippingCost   int `json:"defaultShippingCost"`
	// PaymentMethods and Couriers are the options offered on the checkout form.
	PaymentMethods []string `json:"paymentMethods,omitempty"`
	Couriers       []string `json:"couriers,omitempty"`
}

// Tenant is a single merchant store within the platform.
type Tenant struct {
	ID          int    `json:"tenantId"`
	MerchantID  int    `json:"merchantId"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	// WhatsApp is the number checkout deep links open a chat with.
	WhatsApp  string           `json:"whatsapp,omitempty"`
	Logo      string           `json:"logo,omitempty"`
	Enabled   bool             `json:"enabled"`
	Settings  CheckoutSettings `json:"settings"`
	CreatedAt string           `json:"createdAt,omitempty"`
	UpdatedAt string           `json:"updatedAt,omitempty"`
}

// DefaultSettings are assigned when a tenant is provisioned.
func DefaultSettings() CheckoutSettings {
	return CheckoutSettings{
		TaxRate:               0,
		FreeShippingThreshold: 0,
		DefaultShippingCost:   0,
		PaymentMethods:        []string{"transfer", "cod"},
		Couriers:              []string{"jne", "sicepat", "gosend"},
	}
}
