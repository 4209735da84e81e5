package mdq

import "context"

// Executor runs queries against a search backend.
type Executor struct {
	backend Backend
}

// NewExecutor creates an executor bound to the given backend.
func NewExecutor(backend Backend) *Executor {
	return &Executor{backend: backend}
}

// Execute runs the query and blocks until the index finishes its first
// gathering pass. Zero matches is success with empty results, not an error.
// The caller owns the returned Results and must close them to release the
// backend's resources.
func (e *Executor) Execute(q *Query) (*Results, error) {
	return e.ExecuteContext(context.Background(), q)
}

// ExecuteContext runs the query, suspending on ctx rather than blocking past
// cancellation. If ctx is cancelled before the gather completes, the native
// query resources are released before returning ctx's error; cancellation is
// a withdrawal of interest, not a backend failure.
func (e *Executor) ExecuteContext(ctx context.Context, q *Query) (*Results, error) {
	predicate, err := Compile(q.pred)
	if err != nil {
		return nil, err
	}
	roots, err := resolveScopes(q.scopes)
	if err != nil {
		return nil, err
	}

	g, err := e.backend.Submit(predicate, roots, q.limit)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	select {
	case <-ctx.Done():
		g.Close()
		return nil, ctx.Err()
	case <-g.Done():
	}

	if err := g.Err(); err != nil {
		g.Close()
		return nil, &QueryError{Err: err}
	}
	return newResults(g), nil
}
