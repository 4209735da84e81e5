// Package mdqtest provides an in-memory search backend with resource
// accounting, for testing code built on mdq without a live Spotlight index.
//
// The fake does not evaluate predicates: every submission yields the canned
// items, capped by the submission's limit. Tests assert on the recorded
// predicate strings instead.
package mdqtest

import (
	"sort"
	"sync"

	"github.com/aviref/mdq"
)

// Submission records one query the backend received.
type Submission struct {
	Predicate string
	Scopes    []string
	Limit     int
}

// Backend is an in-memory mdq.Backend.
//
// Gathers complete immediately unless Hold is set, in which case they stay
// in flight until Release is called — that is how cancellation paths are
// exercised. OpenGathers counts submissions that have not been closed yet;
// a test that cancels an execution can assert it returns to zero.
type Backend struct {
	// SubmitErr, when set, makes Submit fail outright.
	SubmitErr error
	// GatherErr, when set, makes every gather complete with this error.
	GatherErr error
	// Hold keeps gathers in flight until Release is called.
	Hold bool

	mu          sync.Mutex
	items       []*match
	submissions []Submission
	open        int
	pending     []*gather
}

// New returns an empty fake backend.
func New() *Backend {
	return &Backend{}
}

// Add registers a canned item. The path is stored under kMDItemPath; attrs
// may carry any further attributes (kMDItemDisplayName, kMDItemFSSize, ...).
func (b *Backend) Add(path string, attrs map[string]any) {
	m := &match{attrs: map[string]any{"kMDItemPath": path}}
	for k, v := range attrs {
		m.attrs[k] = v
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, m)
}

// Submit implements mdq.Backend.
func (b *Backend) Submit(predicate string, scopes []string, limit int) (mdq.Gather, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sc := make([]string, len(scopes))
	copy(sc, scopes)
	b.submissions = append(b.submissions, Submission{Predicate: predicate, Scopes: sc, Limit: limit})

	if b.SubmitErr != nil {
		return nil, b.SubmitErr
	}

	matches := make([]mdq.Match, 0, len(b.items))
	for _, m := range b.items {
		if limit > 0 && len(matches) == limit {
			break
		}
		matches = append(matches, m)
	}

	g := &gather{backend: b, done: make(chan struct{}), matches: matches, err: b.GatherErr}
	b.open++
	if b.Hold {
		b.pending = append(b.pending, g)
	} else {
		close(g.done)
	}
	return g, nil
}

// Release completes every held gather.
func (b *Backend) Release() {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()
	for _, g := range pending {
		close(g.done)
	}
}

// OpenGathers reports how many submissions have not been closed yet.
func (b *Backend) OpenGathers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Submissions returns the queries received so far, in order.
func (b *Backend) Submissions() []Submission {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := make([]Submission, len(b.submissions))
	copy(subs, b.submissions)
	return subs
}

type gather struct {
	backend *Backend
	done    chan struct{}
	matches []mdq.Match
	err     error
	once    sync.Once
}

func (g *gather) Done() <-chan struct{} { return g.done }

func (g *gather) Err() error { return g.err }

func (g *gather) Matches() []mdq.Match { return g.matches }

func (g *gather) Close() error {
	g.once.Do(func() {
		g.backend.mu.Lock()
		g.backend.open--
		// Drop from pending so Release does not close it twice.
		for i, p := range g.backend.pending {
			if p == g {
				g.backend.pending = append(g.backend.pending[:i], g.backend.pending[i+1:]...)
				close(g.done)
				break
			}
		}
		g.backend.mu.Unlock()
	})
	return nil
}

type match struct {
	attrs map[string]any
}

func (m *match) Attribute(name string) (any, bool, error) {
	v, ok := m.attrs[name]
	return v, ok, nil
}

func (m *match) AttributeNames() ([]string, error) {
	names := make([]string, 0, len(m.attrs))
	for k := range m.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}
