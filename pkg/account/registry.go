package account

import (
	"fmt"
	"strings"
)

// Registry tracks every account id ever reserved, across all directories that
// share it. It is the single uniqueness authority: whoever constructs accounts
// owns a Registry explicitly instead of relying on ambient global state.
type Registry struct {
	used map[string]struct{}
}

// NewRegistry creates an empty id registry.
func NewRegistry() *Registry {
	return &Registry{used: make(map[string]struct{})}
}

// Reserve claims an id. It fails if the id is blank or already reserved.
func (r *Registry) Reserve(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if _, ok := r.used[id]; ok {
		return fmt.Errorf("reserve %q: %w", id, ErrDuplicateID)
	}
	r.used[id] = struct{}{}
	return nil
}

// Release frees a previously reserved id. Releasing an unknown id is a no-op.
func (r *Registry) Release(id string) {
	delete(r.used, id)
}

// Has reports whether an id is currently reserved.
func (r *Registry) Has(id string) bool {
	_, ok := r.used[id]
	return ok
}

// Clear forgets every reserved id. Intended for test isolation and for
// rebuilding state from a serialized snapshot.
func (r *Registry) Clear() {
	r.used = make(map[string]struct{})
}

// Len returns the number of reserved ids.
func (r *Registry) Len() int {
	return len(r.used)
}
