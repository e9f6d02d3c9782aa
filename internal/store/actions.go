package store

// Action is the closed set of store mutations. Each request lifecycle is
// Requested -> (Committed | Rejected); every Requested action is followed by
// exactly one terminal action, so Loading can never stick.
//
// The union is closed by the unexported apply method: adding an operation
// means adding a variant here, and nothing outside this package can invent
// one.
type Action[E Entity] interface {
	apply(*State[E])
}

func begin[E Entity](st *State[E]) {
	st.Loading = true
	st.Err = ""
}

func commit[E Entity](st *State[E], msg string) {
	st.Loading = false
	st.Err = ""
	st.Success = msg
}

func reject[E Entity](st *State[E], msg string) {
	st.Loading = false
	st.Err = msg
}

// ListRequested marks a collection fetch in flight.
type ListRequested[E Entity] struct{}

func (ListRequested[E]) apply(st *State[E]) { begin(st) }

// ListCommitted replaces the collection wholesale with the fetched items.
type ListCommitted[E Entity] struct {
	Items   []E
	Message string
}

func (a ListCommitted[E]) apply(st *State[E]) {
	commit(st, a.Message)
	// Copy so the store owns its backing array: later in-place transitions
	// must not reach through to the slice the committer still holds.
	st.Collection = append([]E(nil), a.Items...)
	st.Total = len(a.Items)
}

// ListRejected fails a collection fetch. The stale collection is wiped so
// the UI never renders data the server refused to confirm.
type ListRejected[E Entity] struct{ Message string }

func (a ListRejected[E]) apply(st *State[E]) {
	reject(st, a.Message)
	st.Collection = nil
	st.Total = 0
}

// GetOneRequested marks a single-item fetch in flight.
type GetOneRequested[E Entity] struct{}

func (GetOneRequested[E]) apply(st *State[E]) { begin(st) }

// GetOneCommitted sets the focused item.
type GetOneCommitted[E Entity] struct {
	Item    E
	Message string
}

func (a GetOneCommitted[E]) apply(st *State[E]) {
	commit(st, a.Message)
	item := a.Item
	st.Selected = &item
}

// GetOneRejected fails a single-item fetch and clears the selection.
type GetOneRejected[E Entity] struct{ Message string }

func (a GetOneRejected[E]) apply(st *State[E]) {
	reject(st, a.Message)
	st.Selected = nil
}

// CreateRequested marks a creation in flight.
type CreateRequested[E Entity] struct{}

func (CreateRequested[E]) apply(st *State[E]) { begin(st) }

// CreateCommitted prepends the created item so it shows first in listings.
type CreateCommitted[E Entity] struct {
	Item    E
	Message string
}

func (a CreateCommitted[E]) apply(st *State[E]) {
	commit(st, a.Message)
	// Key uniqueness holds even if the server echoes an item we already
	// track: the old occurrence is dropped before the prepend.
	st.Collection = removeByKey(st.Collection, a.Item.Key())
	st.Collection = append([]E{a.Item}, st.Collection...)
	st.Total = len(st.Collection)
}

// CreateRejected fails a creation; existing data is left untouched.
type CreateRejected[E Entity] struct{ Message string }

func (a CreateRejected[E]) apply(st *State[E]) { reject(st, a.Message) }

// UpdateRequested marks an update in flight.
type UpdateRequested[E Entity] struct{}

func (UpdateRequested[E]) apply(st *State[E]) { begin(st) }

// UpdateCommitted replaces the matching item in place. Position, the rest
// of the collection and a non-matching selection are untouched.
type UpdateCommitted[E Entity] struct {
	Item    E
	Message string
}

func (a UpdateCommitted[E]) apply(st *State[E]) {
	commit(st, a.Message)
	key := a.Item.Key()
	for i := range st.Collection {
		if st.Collection[i].Key() == key {
			st.Collection[i] = a.Item
			break
		}
	}
	if st.Selected != nil && (*st.Selected).Key() == key {
		item := a.Item
		st.Selected = &item
	}
}

// UpdateRejected fails an update; existing data is left untouched.
type UpdateRejected[E Entity] struct{ Message string }

func (a UpdateRejected[E]) apply(st *State[E]) { reject(st, a.Message) }

// DeleteRequested marks a deletion in flight.
type DeleteRequested[E Entity] struct{}

func (DeleteRequested[E]) apply(st *State[E]) { begin(st) }

// DeleteCommitted removes the item with the given key and clears a matching
// selection.
type DeleteCommitted[E Entity] struct {
	Key     string
	Message string
}

func (a DeleteCommitted[E]) apply(st *State[E]) {
	commit(st, a.Message)
	st.Collection = removeByKey(st.Collection, a.Key)
	st.Total = len(st.Collection)
	if st.Selected != nil && (*st.Selected).Key() == a.Key {
		st.Selected = nil
	}
}

// DeleteRejected fails a deletion; existing data is left untouched.
type DeleteRejected[E Entity] struct{ Message string }

func (a DeleteRejected[E]) apply(st *State[E]) { reject(st, a.Message) }

// QueryChanged records new free-text search input.
type QueryChanged[E Entity] struct{ Query string }

func (a QueryChanged[E]) apply(st *State[E]) { st.Query = a.Query }

// FacetChanged records one facet value; empty string removes the facet.
type FacetChanged[E Entity] struct{ Name, Value string }

func (a FacetChanged[E]) apply(st *State[E]) {
	if st.Facets == nil {
		st.Facets = map[string]string{}
	}
	if a.Value == "" {
		delete(st.Facets, a.Name)
		return
	}
	st.Facets[a.Name] = a.Value
}

// SelectionCleared drops the focused item, e.g. on navigation away.
type SelectionCleared[E Entity] struct{}

func (SelectionCleared[E]) apply(st *State[E]) { st.Selected = nil }

// Reset returns the store to its initial empty state.
type Reset[E Entity] struct{}

func (Reset[E]) apply(st *State[E]) {
	*st = State[E]{Facets: map[string]string{}}
}

// removeByKey allocates a fresh slice so slices handed out before the
// dispatch keep their contents.
func removeByKey[E Entity](items []E, key string) []E {
	out := make([]E, 0, len(items))
	for _, item := range items {
		if item.Key() != key {
			out = append(out, item)
		}
	}
	return out
}
