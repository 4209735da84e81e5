package mdq

import "sync"

// Results holds the ordered matches of one query execution. The backend's
// relevance ordering is preserved; no re-sorting happens here. Items stay
// valid until Close, which tears down the backend session; attribute access
// after Close fails with ErrItemInvalid.
type Results struct {
	gather Gather
	items  []*Item

	mu     sync.Mutex
	closed bool
}

func newResults(g Gather) *Results {
	r := &Results{gather: g}
	matches := g.Matches()
	r.items = make([]*Item, len(matches))
	for i, m := range matches {
		r.items[i] = &Item{match: m, owner: r}
	}
	return r
}

// Len reports the number of matches.
func (r *Results) Len() int {
	return len(r.items)
}

// Items returns the result items in backend order.
func (r *Results) Items() []*Item {
	items := make([]*Item, len(r.items))
	copy(items, r.items)
	return items
}

// Close releases the backend resources backing these results and invalidates
// all items. Close is idempotent.
func (r *Results) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()
	return r.gather.Close()
}

func (r *Results) valid() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed
}
