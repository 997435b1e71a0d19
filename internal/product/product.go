package product

// Product is a tenant-scoped catalog entry. Prices are whole rupiah.
type Product struct {
	ID          int    `json:"productId"`
	TenantID    int    `json:"tenantId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	Image       string `json:"image,omitempty"`
	// Unit is the display label shown next to quantities ("pcs", "porsi", "kg").
	Unit string `json:"unit,omitempty"`
	// Stock is the purchasable ceiling; nil means untracked.
	Stock     *int   `json:"stock,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
