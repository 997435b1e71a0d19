package landing

// Section keys in canonical render order.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionProducts     = "products"
	SectionTestimonials = "testimonials"
	SectionContact      = "contact"
	SectionCTA          = "cta"
)

// SectionKeys is the canonical ordering used for new tenants and when
// reconciling a stored order that is missing keys.
var SectionKeys = []string{
	SectionHero,
	SectionAbout,
	SectionProducts,
	SectionTestimonials,
	SectionContact,
	SectionCTA,
}

// sectionVariants enumerates the visual templates allowed per section. The
// first entry is the default; unrecognized variants fall back to it so that
// configs referencing retired variant names keep rendering.
var sectionVariants = map[string][]string{
	SectionHero:         {"centered", "split", "minimal"},
	SectionAbout:        {"standard", "side-image"},
	SectionProducts:     {"grid", "carousel"},
	SectionTestimonials: {"cards", "quotes"},
	SectionContact:      {"simple", "map"},
	SectionCTA:          {"banner", "boxed"},
}

// Section is the per-section landing configuration.
type Section struct {
	Enabled  bool   `json:"enabled"`
	Variant  string `json:"variant"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	// Config holds section-specific structured fields (CTA button text/link,
	// product grid limit, testimonial entries, ...).
	Config map[string]interface{} `json:"config,omitempty"`
}

// Config is a tenant's full landing-page description.
type Config struct {
	Template string             `json:"template"`
	Enabled  bool               `json:"enabled"`
	Sections map[string]Section `json:"sections"`
	// Order is an explicit permutation of the section keys.
	Order []string `json:"order"`
}

// SectionPatch is a partial update to one section. Nil pointer fields are
// left untouched; Config entries are merged key-by-key so unrelated fields
// survive a patch.
type SectionPatch struct {
	Enabled  *bool                  `json:"enabled,omitempty"`
	Variant  *string                `json:"variant,omitempty"`
	Title    *string                `json:"title,omitempty"`
	Subtitle *string                `json:"subtitle,omitempty"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// ConfigPatch is a partial update to the whole config.
type ConfigPatch struct {
	Template *string                 `json:"template,omitempty"`
	Enabled  *bool                   `json:"enabled,omitempty"`
	Sections map[string]SectionPatch `json:"sections,omitempty"`
	Order    []string                `json:"order,omitempty"`
}

// DefaultVariant returns the default variant for a section key, or "" for an
// unknown key.
func DefaultVariant(key string) string {
	vs, ok := sectionVariants[key]
	if !ok {
		return ""
	}
	return vs[0]
}

// ValidVariant reports whether variant belongs to the enumerated set for key.
func ValidVariant(key, variant string) bool {
	for _, v := range sectionVariants[key] {
		if v == variant {
			return true
		}
	}
	return false
}

// DefaultConfig builds the config assigned to a freshly provisioned tenant:
// every section present with its default variant, hero/about/products/contact
// enabled, order in canonical sequence.
func DefaultConfig() Config {
	sections := make(map[string]Section, len(SectionKeys))
	for _, key := range SectionKeys {
		enabled := key != SectionTestimonials && key != SectionCTA
		sections[key] = Section{Enabled: enabled, Variant: DefaultVariant(key)}
	}
	order := make([]string, len(SectionKeys))
	copy(order, SectionKeys)
	return Config{
		Template: "classic",
		Enabled:  true,
		Sections: sections,
		Order:    order,
	}
}

// Apply merges the patch into the section. Scalar fields are replaced only
// when present in the patch; Config keys are merged individually rather than
// replacing the whole map.
func (s Section) Apply(p SectionPatch) Section {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.Variant != nil {
		s.Variant = *p.Variant
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if len(p.Config) > 0 {
		merged := make(map[string]interface{}, len(s.Config)+len(p.Config))
		for k, v := range s.Config {
			merged[k] = v
		}
		for k, v := range p.Config {
			merged[k] = v
		}
		s.Config = merged
	}
	return s
}

// ApplyPatch merges a partial config into c. Section patches for keys not yet
// present create the section from its defaults first.
func (c *Config) ApplyPatch(p ConfigPatch) {
	if p.Template != nil {
		c.Template = *p.Template
	}
	if p.Enabled != nil {
		c.Enabled = *p.Enabled
	}
	for key, sp := range p.Sections {
		c.PatchSection(key, sp)
	}
	if p.Order != nil {
		c.Reorder(p.Order)
	}
}

// PatchSection merges updates into one section without touching the others.
func (c *Config) PatchSection(key string, p SectionPatch) {
	if c.Sections == nil {
		c.Sections = make(map[string]Section)
	}
	current, ok := c.Sections[key]
	if !ok {
		current = Section{Variant: DefaultVariant(key)}
	}
	c.Sections[key] = current.Apply(p)
}

// SetSectionEnabled toggles one section, preserving its other fields.
func (c *Config) SetSectionEnabled(key string, enabled bool) {
	c.PatchSection(key, SectionPatch{Enabled: &enabled})
}

// Reorder replaces the section order with the reconciled form of newOrder:
// duplicates and keys without a section are dropped, and sections missing
// from newOrder are appended in canonical order. Client input is not trusted
// to be a true permutation.
func (c *Config) Reorder(newOrder []string) {
	c.Order = c.reconcileOrder(newOrder)
}

func (c *Config) reconcileOrder(order []string) []string {
	seen := make(map[string]bool, len(c.Sections))
	out := make([]string, 0, len(c.Sections))
	for _, key := range order {
		if seen[key] {
			continue
		}
		if _, ok := c.Sections[key]; !ok {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	for _, key := range SectionKeys {
		if _, ok := c.Sections[key]; ok && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	// sections outside the canonical set still deserve a slot
	for key := range c.Sections {
		if !seen[key] {
			out = append(out, key)
		}
	}
	return out
}

// Normalize repairs a config in place: unknown variants fall back to the
// section default and the order array is reconciled against the section set.
// Stored configs that reference retired variants keep rendering instead of
// failing the save.
func (c *Config) Normalize() {
	if c.Sections == nil {
		c.Sections = make(map[string]Section)
	}
	for _, key := range SectionKeys {
		s, ok := c.Sections[key]
		if !ok {
			c.Sections[key] = Section{Variant: DefaultVariant(key)}
			continue
		}
		if !ValidVariant(key, s.Variant) {
			s.Variant = DefaultVariant(key)
			c.Sections[key] = s
		}
	}
	c.Order = c.reconcileOrder(c.Order)
	if c.Template == "" {
		c.Template = "classic"
	}
}

// Clone returns a deep copy, so draft edits never alias the persisted copy.
func (c Config) Clone() Config {
	out := c
	out.Sections = make(map[string]Section, len(c.Sections))
	for key, s := range c.Sections {
		if s.Config != nil {
			cfg := make(map[string]interface{}, len(s.Config))
			for k, v := range s.Config {
				cfg[k] = v
			}
			s.Config = cfg
		}
		out.Sections[key] = s
	}
	out.Order = make([]string, len(c.Order))
	copy(out.Order, c.Order)
	return out
}

// EnabledSections returns the sections that render on the public page, in
// display order.
func (c Config) EnabledSections() []PublicSection {
	out := make([]PublicSection, 0, len(c.Order))
	for _, key := range c.Order {
		s, ok := c.Sections[key]
		if !ok || !s.Enabled {
			continue
		}
		out = append(out, PublicSection{Key: key, Section: s})
	}
	return out
}

// PublicSection pairs a section with its key for ordered storefront output.
type PublicSection struct {
	Key string `json:"key"`
	Section
}
