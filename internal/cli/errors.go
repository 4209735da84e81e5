package cli

import (
	"errors"

	"github.com/aviref/mdq"
)

// Error codes for structured error responses. These codes are stable.
const (
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrQueryInvalid   = "QUERY_INVALID"
	ErrScopeInvalid   = "SCOPE_INVALID"
	ErrBackendFailed  = "BACKEND_FAILED"
	ErrSearchNotFound = "SEARCH_NOT_FOUND"
	ErrHistoryError   = "HISTORY_ERROR"
	ErrInvalidInput   = "INVALID_INPUT"
	ErrInternal       = "INTERNAL"
)

// errorCode maps library errors onto stable CLI error codes.
func errorCode(err error) string {
	var (
		buildErr   *mdq.BuildError
		compileErr *mdq.CompileError
		scopeErr   *mdq.InvalidScopeError
		queryErr   *mdq.QueryError
	)
	switch {
	case errors.As(err, &buildErr), errors.As(err, &compileErr):
		return ErrQueryInvalid
	case errors.As(err, &scopeErr):
		return ErrScopeInvalid
	case errors.As(err, &queryErr):
		return ErrBackendFailed
	default:
		return ErrInternal
	}
}
