package landing

// Editor holds a tenant's in-progress landing edits: the current draft, the
// last-persisted snapshot, and whether the two diverge.
type Editor struct {
	tenantID  int
	current   Config
	persisted Config
	dirty     bool
}

// NewEditor starts an editing session from the persisted config.
func NewEditor(tenantID int, persisted Config) *Editor {
	return &Editor{
		tenantID:  tenantID,
		current:   persisted.Clone(),
		persisted: persisted.Clone(),
	}
}

// Current returns a copy of the draft config.
func (e *Editor) Current() Config { return e.current.Clone() }

// Dirty reports whether unsaved changes exist.
func (e *Editor) Dirty() bool { return e.dirty }

// UpdateConfig shallow-merges a partial config into the draft and marks it
// dirty. The persisted copy is untouched.
func (e *Editor) UpdateConfig(p ConfigPatch) {
	e.current.ApplyPatch(p)
	e.dirty = true
}

// ToggleSection enables or disables one section of the draft.
func (e *Editor) ToggleSection(key string, enabled bool) {
	e.current.SetSectionEnabled(key, enabled)
	e.dirty = true
}

// UpdateSection merges updates into one section of the draft. Used for
// variant changes, title/subtitle edits and nested config field edits.
func (e *Editor) UpdateSection(key string, p SectionPatch) {
	e.current.PatchSection(key, p)
	e.dirty = true
}

// Reorder replaces the draft's section order with the reconciled permutation.
func (e *Editor) Reorder(newOrder []string) {
	e.current.Reorder(newOrder)
	e.dirty = true
}

// Publish normalizes the draft and persists it through repo. On success the
// persisted snapshot is refreshed and the dirty flag cleared; on failure the
// draft is kept as-is so the user can retry without re-entering data.
func (e *Editor) Publish(repo Repository) error {
	e.current.Normalize()
	if err := repo.Save(e.tenantID, e.current); err != nil {
		return err
	}
	e.persisted = e.current.Clone()
	e.dirty = false
	return nil
}

// Discard reverts the draft to the last-persisted snapshot.
func (e *Editor) Discard() {
	e.current = e.persisted.Clone()
	e.dirty = false
}
