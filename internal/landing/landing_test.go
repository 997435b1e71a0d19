package landing

import (
	"errors"
	"testing"
)

func TestPatchSectionPreservesUntouchedFields(t *testing.T) {
	cfg := DefaultConfig()
	title := "Kopi Nusantara"
	cfg.PatchSection(SectionHero, SectionPatch{Title: &title})

	variant := "split"
	cfg.PatchSection(SectionHero, SectionPatch{Variant: &variant})

	hero := cfg.Sections[SectionHero]
	if hero.Title != "Kopi Nusantara" {
		t.Fatalf("title lost after variant patch, got %q", hero.Title)
	}
	if hero.Variant != "split" {
		t.Fatalf("expected variant split, got %q", hero.Variant)
	}
	if !hero.Enabled {
		t.Fatalf("enabled flag should survive patches")
	}
}

func TestPatchSectionMergesConfigKeyByKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PatchSection(SectionCTA, SectionPatch{Config: map[string]interface{}{
		"buttonText": "Pesan Sekarang",
		"buttonLink": "#products",
	}})
	cfg.PatchSection(SectionCTA, SectionPatch{Config: map[string]interface{}{
		"buttonText": "Beli",
	}})

	got := cfg.Sections[SectionCTA].Config
	if got["buttonText"] != "Beli" {
		t.Fatalf("expected buttonText overwritten, got %v", got["buttonText"])
	}
	if got["buttonLink"] != "#products" {
		t.Fatalf("unrelated config key should survive, got %v", got["buttonLink"])
	}
}

func TestReorderReconcilesClientInput(t *testing.T) {
	cfg := DefaultConfig()

	// duplicates and unknown keys are dropped, missing keys appended
	cfg.Reorder([]string{"products", "hero", "products", "bogus"})

	want := []string{"products", "hero", "about", "testimonials", "contact", "cta"}
	if len(cfg.Order) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), cfg.Order)
	}
	for i, key := range want {
		if cfg.Order[i] != key {
			t.Fatalf("order[%d]: expected %q, got %q (full: %v)", i, key, cfg.Order[i], cfg.Order)
		}
	}
}

func TestReorderFullPermutationRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	perm := []string{"cta", "contact", "testimonials", "products", "about", "hero"}
	cfg.Reorder(perm)
	for i, key := range perm {
		if cfg.Order[i] != key {
			t.Fatalf("permutation not preserved at %d: got %v", i, cfg.Order)
		}
	}
}

func TestNormalizeFallsBackOnUnknownVariant(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.Sections[SectionHero]
	s.Variant = "retired-style"
	cfg.Sections[SectionHero] = s

	cfg.Normalize()

	if got := cfg.Sections[SectionHero].Variant; got != "centered" {
		t.Fatalf("expected fallback to default variant, got %q", got)
	}
}

func TestDefaultConfigShape(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Template != "classic" || !cfg.Enabled {
		t.Fatalf("unexpected defaults: template=%q enabled=%v", cfg.Template, cfg.Enabled)
	}
	if cfg.Sections[SectionTestimonials].Enabled || cfg.Sections[SectionCTA].Enabled {
		t.Fatalf("testimonials and cta should start disabled")
	}
	if !cfg.Sections[SectionHero].Enabled || !cfg.Sections[SectionProducts].Enabled {
		t.Fatalf("hero and products should start enabled")
	}
}

func TestEnabledSectionsFollowOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reorder([]string{"products", "hero", "about", "contact"})
	pub := cfg.EnabledSections()

	wantKeys := []string{"products", "hero", "about", "contact"}
	if len(pub) != len(wantKeys) {
		t.Fatalf("expected %d enabled sections, got %d", len(wantKeys), len(pub))
	}
	for i, key := range wantKeys {
		if pub[i].Key != key {
			t.Fatalf("enabled[%d]: expected %q, got %q", i, key, pub[i].Key)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PatchSection(SectionHero, SectionPatch{Config: map[string]interface{}{"image": "a.jpg"}})

	clone := cfg.Clone()
	clone.PatchSection(SectionHero, SectionPatch{Config: map[string]interface{}{"image": "b.jpg"}})
	clone.Order[0] = "about"

	if cfg.Sections[SectionHero].Config["image"] != "a.jpg" {
		t.Fatalf("clone edit leaked into original config map")
	}
	if cfg.Order[0] != "hero" {
		t.Fatalf("clone edit leaked into original order")
	}
}

func TestEditorPublishFailureKeepsDraft(t *testing.T) {
	e := NewEditor(1, DefaultConfig())
	title := "Warung Bu Sri"
	e.UpdateSection(SectionHero, SectionPatch{Title: &title})
	if !e.Dirty() {
		t.Fatalf("editor should be dirty after an edit")
	}

	if err := e.Publish(failingRepo{}); err == nil {
		t.Fatalf("expected publish error")
	}
	if !e.Dirty() {
		t.Fatalf("failed publish must keep the dirty flag")
	}
	if e.Current().Sections[SectionHero].Title != "Warung Bu Sri" {
		t.Fatalf("failed publish must keep the draft edits")
	}
}

func TestEditorPublishAndDiscard(t *testing.T) {
	repo := NewInMemoryRepository()
	e := NewEditor(1, DefaultConfig())

	title := "Toko Maju"
	e.UpdateSection(SectionHero, SectionPatch{Title: &title})
	if err := e.Publish(repo); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if e.Dirty() {
		t.Fatalf("publish should clear the dirty flag")
	}

	other := "Scratch"
	e.UpdateSection(SectionHero, SectionPatch{Title: &other})
	e.Discard()
	if e.Dirty() {
		t.Fatalf("discard should clear the dirty flag")
	}
	if got := e.Current().Sections[SectionHero].Title; got != "Toko Maju" {
		t.Fatalf("discard should revert to the published title, got %q", got)
	}

	saved, err := repo.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if saved.Sections[SectionHero].Title != "Toko Maju" {
		t.Fatalf("published title not persisted")
	}
}

type failingRepo struct{}

func (failingRepo) Get(int) (Config, error) { return Config{}, errors.New("down") }
func (failingRepo) Save(int, Config) error  { return errors.New("down") }
