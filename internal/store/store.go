// Package store holds the per-entity in-memory collections behind the
// catalog UI. A Store is mutated exclusively by dispatching lifecycle
// actions; readers only ever see snapshot copies.
package store

import "sync"

// Entity is any catalog record with a stable unique key.
type Entity interface {
	Key() string
	DisplayName() string
}

// State is one store's observable contents. Snapshot returns a copy, so a
// State in a reader's hands never changes under it.
type State[E Entity] struct {
	// Collection preserves display order: list fetches replace it
	// wholesale, creations prepend.
	Collection []E
	Total      int
	Selected   *E
	Loading    bool
	Err        string
	Success    string
	Query      string
	Facets     map[string]string
}

// Store is the single-writer container for one entity kind. All mutation
// goes through Dispatch; there is no other write path.
type Store[E Entity] struct {
	mu    sync.Mutex
	state State[E]
}

// New returns an empty store.
func New[E Entity]() *Store[E] {
	return &Store[E]{state: State[E]{Facets: map[string]string{}}}
}

// Dispatch applies one lifecycle action. Actions from concurrent requests
// interleave in arrival order; there is no request identity, so when two
// requests race the later terminal action wins.
func (s *Store[E]) Dispatch(a Action[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.apply(&s.state)
}

// Snapshot returns a copy of the current state. The collection slice,
// selection and facet map are copied so readers cannot mutate the store.
func (s *Store[E]) Snapshot() State[E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Collection = append([]E(nil), s.state.Collection...)
	if s.state.Selected != nil {
		sel := *s.state.Selected
		out.Selected = &sel
	}
	out.Facets = make(map[string]string, len(s.state.Facets))
	for k, v := range s.state.Facets {
		out.Facets[k] = v
	}
	return out
}
