package domain

import "slices"

// Relation is a list of cross references that distinguishes a list that was never
// populated from one that was populated and later emptied.
//
// The zero value is unmaterialized. Append materializes the list. Clear empties a
// materialized list without returning it to the unmaterialized state.
type Relation[T comparable] struct {
	items        []T
	materialized bool
}

// Materialized reports whether anything was ever appended to the relation.
func (r *Relation[T]) Materialized() bool {
	return r.materialized
}

// Items returns the current elements. The slice must not be modified.
func (r *Relation[T]) Items() []T {
	return r.items
}

// Len returns the number of elements.
func (r *Relation[T]) Len() int {
	return len(r.items)
}

// Append adds v and materializes the relation.
func (r *Relation[T]) Append(v T) {
	r.items = append(r.items, v)
	r.materialized = true
}

// Contains reports whether v is an element of the relation.
func (r *Relation[T]) Contains(v T) bool {
	return slices.Contains(r.items, v)
}

// Clear empties a materialized relation. Unmaterialized relations are left untouched.
func (r *Relation[T]) Clear() {
	if !r.materialized {
		return
	}
	r.items = r.items[:0]
}
