package merchant

// Merchant is a dashboard account owning one tenant store.
type Merchant struct {
	ID        int    `json:"merchantId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
