package mdq

import (
	"os"
	"path/filepath"
)

// Scope identifies where a query searches: a backend-recognized sentinel or
// a custom filesystem root.
type Scope struct {
	root   string
	custom bool
}

// Symbolic search scopes understood by the native backend.
var (
	ScopeHome            = Scope{root: "kMDQueryScopeHome"}
	ScopeComputer        = Scope{root: "kMDQueryScopeComputer"}
	ScopeNetwork         = Scope{root: "kMDQueryScopeNetwork"}
	ScopeAllIndexed      = Scope{root: "kMDQueryScopeAllIndexed"}
	ScopeComputerIndexed = Scope{root: "kMDQueryScopeComputerIndexed"}
	ScopeNetworkIndexed  = Scope{root: "kMDQueryScopeNetworkIndexed"}
)

// CustomScope restricts the search to the given directory. The path is
// validated (absolute, existing) when the query is executed.
func CustomScope(path string) Scope {
	return Scope{root: path, custom: true}
}

// IsCustom reports whether the scope is a filesystem path rather than a
// symbolic sentinel.
func (s Scope) IsCustom() bool { return s.custom }

func (s Scope) String() string { return s.root }

// resolveScopes maps scopes to the root strings the backend expects.
// Sentinels pass through; custom paths must be absolute and exist.
// Duplicates are forwarded unchanged; deduplication is the backend's job.
func resolveScopes(scopes []Scope) ([]string, error) {
	roots := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if !s.custom {
			roots = append(roots, s.root)
			continue
		}
		if !filepath.IsAbs(s.root) {
			return nil, &InvalidScopeError{Path: s.root, Reason: "path is not absolute"}
		}
		if _, err := os.Stat(s.root); err != nil {
			return nil, &InvalidScopeError{Path: s.root, Reason: "path does not exist"}
		}
		roots = append(roots, s.root)
	}
	return roots, nil
}
