package mdq

// Query is an immutable, executable metadata query: a predicate, a non-empty
// ordered scope list, and an optional result limit. A Query may be executed
// repeatedly and shared across goroutines without synchronization; each
// execution is an independent submission to the backend.
type Query struct {
	pred   Pred
	scopes []Scope
	limit  int
}

// NewQuery assembles a query from a hand-built predicate tree. Most callers
// should use Builder instead; hand-assembled predicates are re-validated by
// the compiler at execution time. A nil pred means match everything.
func NewQuery(pred Pred, scopes []Scope, limit int) (*Query, error) {
	if len(scopes) == 0 {
		return nil, &BuildError{Reason: "no search scopes supplied"}
	}
	if limit < 0 {
		return nil, &BuildError{Reason: "negative result limit"}
	}
	if pred == nil {
		pred = MatchAll{}
	}
	sc := make([]Scope, len(scopes))
	copy(sc, scopes)
	return &Query{pred: pred, scopes: sc, limit: limit}, nil
}

// Pred returns the query's predicate tree.
func (q *Query) Pred() Pred { return q.pred }

// Scopes returns a copy of the query's scope list.
func (q *Query) Scopes() []Scope {
	sc := make([]Scope, len(q.scopes))
	copy(sc, q.scopes)
	return sc
}

// Limit returns the result cap, 0 meaning unlimited.
func (q *Query) Limit() int { return q.limit }

// Predicate compiles the query's predicate into the native query string.
func (q *Query) Predicate() (string, error) {
	return Compile(q.pred)
}
