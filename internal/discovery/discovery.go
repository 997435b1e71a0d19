package discovery

// StoreCategory groups tenants on the marketplace home page.
type StoreCategory struct {
	ID     int    `json:"categoryId"`
	Name   string `json:"name"`
	NameID string `json:"nameId"`
	Icon   string `json:"icon,omitempty"`
}

// StoreCard is the marketplace listing DTO for one tenant store.
type StoreCard struct {
	TenantID    int    `json:"tenantId"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Logo        string `json:"logo,omitempty"`
}
