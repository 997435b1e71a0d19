// Package optimistic implements the snapshot/apply/commit-or-rollback helper
// used for "edit one field, save immediately" interactions.
package optimistic

// Replace applies next to *current, then runs commit. If commit fails the
// previous value is restored and the error returned; on success the new value
// stays in place.
func Replace[T any](current *T, next T, commit func(T) error) error {
	prev := *current
	*current = next
	if err := commit(next); err != nil {
		*current = prev
		return err
	}
	return nil
}
