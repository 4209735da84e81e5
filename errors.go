package mdq

import (
	"errors"
	"fmt"
)

// ErrItemInvalid is returned when a result item is accessed after its
// originating Results have been closed.
var ErrItemInvalid = errors.New("result item accessed after results were closed")

// BuildError reports an invalid builder state at Build time.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return "build: " + e.Reason
}

// CompileError reports a predicate that cannot be serialized into the native
// query grammar. The compiler re-validates structure and operator/domain
// compatibility independently of the builder, since a Query may be assembled
// from hand-built predicate nodes.
type CompileError struct {
	Reason string
}

func (e *CompileError) Error() string {
	return "compile: " + e.Reason
}

// InvalidScopeError reports a custom scope path that failed validation.
type InvalidScopeError struct {
	Path   string
	Reason string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid scope %q: %s", e.Path, e.Reason)
}

// QueryError wraps a failure reported by the native search backend.
// The backend's error is surfaced verbatim and never retried.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return "query: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// AttributeTypeMismatchError reports a value read under the wrong kind.
type AttributeTypeMismatchError struct {
	Requested ValueKind
	Actual    ValueKind
}

func (e *AttributeTypeMismatchError) Error() string {
	return fmt.Sprintf("attribute type mismatch: requested %s, have %s", e.Requested, e.Actual)
}
