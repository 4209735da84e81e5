package mdq

// Backend submits compiled queries to a native search index. Implementations
// must support concurrent submissions; each Submit is an independent unit of
// work with its own native resources.
type Backend interface {
	// Submit starts a search for predicate over the resolved scope roots.
	// A limit of zero means no result cap. The returned Gather is live and
	// must be closed by the caller.
	Submit(predicate string, scopeRoots []string, limit int) (Gather, error)
}

// Gather is one in-flight query submission: the first, static pass over the
// index, with a single "gathering complete" signal.
type Gather interface {
	// Done is closed once the index has finished gathering results.
	Done() <-chan struct{}
	// Err reports how the gather ended. Only valid after Done is closed.
	Err() error
	// Matches returns the gathered match handles in the backend's order.
	// Only valid after Done is closed.
	Matches() []Match
	// Close releases the native resources held by the gather, cancelling it
	// if it is still running. Close is idempotent.
	Close() error
}

// Match is an opaque handle to one item the index judged to satisfy the
// predicate. Attribute values are fetched on demand, never eagerly.
type Match interface {
	// Attribute returns the raw value for the named attribute, or ok=false
	// if the index holds no value for this item.
	Attribute(name string) (value any, ok bool, err error)
	// AttributeNames lists the attributes the index populated for this item.
	AttributeNames() ([]string, error)
}
