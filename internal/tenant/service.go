package tenant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fibidy/fibidy-backend/internal/landing"
	"github.com/fibidy/fibidy-backend/internal/optimistic"
)

// Service orchestrates tenant operations. It also owns store provisioning so
// a new merchant always gets a tenant with a default landing config.
type Service struct {
	repo    Repository
	landing landing.Repository
}

func NewService(repo Repository, landingRepo landing.Repository) *Service {
	return &Service{repo: repo, landing: landingRepo}
}

func (s *Service) GetByID(id int) (Tenant, error)        { return s.repo.GetByID(id) }
func (s *Service) GetBySlug(slug string) (Tenant, error) { return s.repo.GetBySlug(slug) }

// GetByMerchantID returns the merchant's store.
func (s *Service) GetByMerchantID(merchantID int) (Tenant, error) {
	return s.repo.GetByMerchantID(merchantID)
}

// TenantIDForMerchant satisfies the resolver interfaces used by the dashboard
// handlers.
func (s *Service) TenantIDForMerchant(merchantID int) (int, error) {
	t, err := s.repo.GetByMerchantID(merchantID)
	if err != nil {
		return 0, err
	}
	return t.ID, nil
}

// PublicStore resolves the storefront view of an enabled store for the
// public landing page.
func (s *Service) PublicStore(slug string) (landing.StoreInfo, error) {
	t, err := s.repo.GetBySlug(slug)
	if err != nil {
		return landing.StoreInfo{}, err
	}
	if !t.Enabled {
		return landing.StoreInfo{}, ErrNotFound
	}
	return landing.StoreInfo{
		TenantID:    t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Category:    t.Category,
		WhatsApp:    t.WhatsApp,
		Logo:        t.Logo,
	}, nil
}

// TenantIDForSlug satisfies the resolver interfaces used by the public
// storefront handlers. Disabled stores are not resolvable.
func (s *Service) TenantIDForSlug(slug string) (int, error) {
	t, err := s.repo.GetBySlug(slug)
	if err != nil {
		return 0, err
	}
	if !t.Enabled {
		return 0, ErrNotFound
	}
	return t.ID, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a store name into a URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Provision creates the merchant's tenant with default settings and a default
// landing config. If the slug is taken a numeric suffix is tried.
func (s *Service) Provision(merchantID int, storeName, whatsapp string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	base := Slugify(storeName)
	if base == "" {
		base = fmt.Sprintf("toko-%d", merchantID)
	}

	t := Tenant{
		MerchantID: merchantID,
		Name:       storeName,
		WhatsApp:   whatsapp,
		Enabled:    true,
		Settings:   DefaultSettings(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var created Tenant
	var err error
	for i := 0; i < 5; i++ {
		t.Slug = base
		if i > 0 {
			t.Slug = fmt.Sprintf("%s-%d", base, i+1)
		}
		created, err = s.repo.Create(t)
		if err == nil {
			break
		}
		if err != ErrSlugExists {
			return err
		}
	}
	if err != nil {
		return err
	}

	return s.landing.Save(created.ID, landing.DefaultConfig())
}

// Patch holds the tenant fields a merchant may edit from the dashboard.
type Patch struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	WhatsApp    *string           `json:"whatsapp,omitempty"`
	Logo        *string           `json:"logo,omitempty"`
	Enabled     *bool             `json:"enabled,omitempty"`
	Settings    *CheckoutSettings `json:"settings,omitempty"`
}

// ApplyPatch merges the patch into the merchant's tenant and persists it.
func (s *Service) ApplyPatch(merchantID int, p Patch) (Tenant, error) {
	t, err := s.repo.GetByMerchantID(merchantID)
	if err != nil {
		return Tenant{}, err
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.WhatsApp != nil {
		t.WhatsApp = *p.WhatsApp
	}
	if p.Logo != nil {
		t.Logo = *p.Logo
	}
	if p.Enabled != nil {
		t.Enabled = *p.Enabled
	}
	if p.Settings != nil {
		t.Settings = *p.Settings
	}
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(t.ID, t)
}

// ClearLogo removes the store logo optimistically: clear first, persist, and
// restore the previous value if the write fails.
func (s *Service) ClearLogo(merchantID int) (Tenant, error) {
	t, err := s.repo.GetByMerchantID(merchantID)
	if err != nil {
		return Tenant{}, err
	}
	err = optimistic.Replace(&t.Logo, "", func(string) error {
		t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		_, err := s.repo.Update(t.ID, t)
		return err
	})
	if err != nil {
		return Tenant{}, err
	}
	return t, nil
}
