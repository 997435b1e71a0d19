package search

import "strings"

// maxRecent caps the number of recent searches kept per visitor key.
const maxRecent = 5

// Recent is an ordered list of past search terms, newest first.
type Recent struct {
	Terms []string `json:"terms"`
}

// Record prepends a term, deduplicating case-insensitively and
// evicting the oldest entry past the cap. Blank terms are ignored.
func (r *Recent) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	kept := make([]string, 0, len(r.Terms)+1)
	kept = append(kept, term)
	for _, t := range r.Terms {
		if strings.EqualFold(t, term) {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) > maxRecent {
		kept = kept[:maxRecent]
	}
	r.Terms = kept
}

// Snapshot returns a copy safe to hand to callers.
func (r *Recent) Snapshot() []string {
	out := make([]string, len(r.Terms))
	copy(out, r.Terms)
	return out
}
