package tenant

import (
	"errors"
	"testing"

	"github.com/fibidy/fibidy-backend/internal/landing"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Warung Bu Sri", "warung-bu-sri"},
		{"  Kopi & Teh!  ", "kopi-teh"},
		{"TOKO123", "toko123"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestProvisionCreatesTenantWithDefaults(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	landingRepo := landing.NewInMemoryRepository()
	svc := NewService(repo, landingRepo)

	if err := svc.Provision(7, "Warung Bu Sri", "081234567890"); err != nil {
		t.Fatalf("provision failed: %v", err)
	}

	created, err := repo.GetByMerchantID(7)
	if err != nil {
		t.Fatalf("tenant not created: %v", err)
	}
	if created.Slug != "warung-bu-sri" {
		t.Fatalf("expected slug warung-bu-sri, got %q", created.Slug)
	}
	if !created.Enabled {
		t.Fatalf("new stores start enabled")
	}
	if created.Settings.DefaultShippingCost != DefaultSettings().DefaultShippingCost {
		t.Fatalf("expected default checkout settings, got %+v", created.Settings)
	}

	cfg, err := landingRepo.Get(created.ID)
	if err != nil {
		t.Fatalf("landing config not provisioned: %v", err)
	}
	if cfg.Template != "classic" {
		t.Fatalf("expected default landing config, got %+v", cfg)
	}
}

func TestProvisionRetriesTakenSlug(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	landingRepo := landing.NewInMemoryRepository()
	svc := NewService(repo, landingRepo)

	if err := svc.Provision(1, "Warung Maju", ""); err != nil {
		t.Fatalf("first provision failed: %v", err)
	}
	if err := svc.Provision(2, "Warung Maju", ""); err != nil {
		t.Fatalf("second provision failed: %v", err)
	}

	second, err := repo.GetByMerchantID(2)
	if err != nil {
		t.Fatalf("second tenant missing: %v", err)
	}
	if second.Slug != "warung-maju-2" {
		t.Fatalf("expected suffixed slug, got %q", second.Slug)
	}
}

func TestProvisionFallsBackOnEmptySlug(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo, landing.NewInMemoryRepository())

	if err := svc.Provision(9, "!!!", ""); err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	created, err := repo.GetByMerchantID(9)
	if err != nil {
		t.Fatalf("tenant missing: %v", err)
	}
	if created.Slug != "toko-9" {
		t.Fatalf("expected fallback slug toko-9, got %q", created.Slug)
	}
}

func TestTenantIDForSlugSkipsDisabledStores(t *testing.T) {
	repo := NewInMemoryRepository([]Tenant{
		{ID: 1, MerchantID: 1, Slug: "open", Enabled: true},
		{ID: 2, MerchantID: 2, Slug: "closed", Enabled: false},
	})
	svc := NewService(repo, landing.NewInMemoryRepository())

	if id, err := svc.TenantIDForSlug("open"); err != nil || id != 1 {
		t.Fatalf("expected id 1, got %d (%v)", id, err)
	}
	if _, err := svc.TenantIDForSlug("closed"); err != ErrNotFound {
		t.Fatalf("disabled stores must not resolve, got %v", err)
	}
}

func TestPublicStoreExposesDisplayFields(t *testing.T) {
	repo := NewInMemoryRepository([]Tenant{
		{ID: 1, MerchantID: 1, Slug: "open", Name: "Kopi Senja", Category: "fnb", WhatsApp: "0812", Enabled: true},
		{ID: 2, MerchantID: 2, Slug: "closed", Enabled: false},
	})
	svc := NewService(repo, landing.NewInMemoryRepository())

	info, err := svc.PublicStore("open")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if info.TenantID != 1 || info.Name != "Kopi Senja" || info.WhatsApp != "0812" {
		t.Fatalf("unexpected store info: %+v", info)
	}
	if _, err := svc.PublicStore("closed"); err != ErrNotFound {
		t.Fatalf("disabled stores must not resolve, got %v", err)
	}
}

func TestApplyPatchMergesFields(t *testing.T) {
	repo := NewInMemoryRepository([]Tenant{{
		ID: 1, MerchantID: 7, Slug: "warung", Name: "Warung",
		Description: "asli", WhatsApp: "0812", Enabled: true,
		Settings: DefaultSettings(),
	}})
	svc := NewService(repo, landing.NewInMemoryRepository())

	name := "Warung Bu Sri"
	settings := CheckoutSettings{TaxRate: 11, DefaultShippingCost: 10000}
	updated, err := svc.ApplyPatch(7, Patch{Name: &name, Settings: &settings})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if updated.Name != "Warung Bu Sri" {
		t.Fatalf("name not patched, got %q", updated.Name)
	}
	if updated.Description != "asli" || updated.WhatsApp != "0812" {
		t.Fatalf("untouched fields must survive: %+v", updated)
	}
	if updated.Settings.TaxRate != 11 {
		t.Fatalf("settings not replaced: %+v", updated.Settings)
	}
}

type failingTenantRepo struct {
	Repository
	t Tenant
}

func (r *failingTenantRepo) GetByMerchantID(int) (Tenant, error) { return r.t, nil }
func (r *failingTenantRepo) Update(int, Tenant) (Tenant, error) {
	return Tenant{}, errors.New("db down")
}

func TestClearLogoRollsBackOnFailure(t *testing.T) {
	repo := &failingTenantRepo{t: Tenant{ID: 1, MerchantID: 7, Logo: "/logo.png"}}
	svc := NewService(repo, landing.NewInMemoryRepository())

	if _, err := svc.ClearLogo(7); err == nil {
		t.Fatalf("expected update error to surface")
	}
}

func TestClearLogoSuccess(t *testing.T) {
	repo := NewInMemoryRepository([]Tenant{{ID: 1, MerchantID: 7, Slug: "s", Logo: "/logo.png"}})
	svc := NewService(repo, landing.NewInMemoryRepository())

	updated, err := svc.ClearLogo(7)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if updated.Logo != "" {
		t.Fatalf("logo should be cleared, got %q", updated.Logo)
	}
	stored, _ := repo.GetByID(1)
	if stored.Logo != "" {
		t.Fatalf("cleared logo not persisted")
	}
}
