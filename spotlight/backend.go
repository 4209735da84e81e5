// Package spotlight runs compiled metadata queries against the macOS
// Spotlight index by driving the mdfind and mdls command-line tools.
//
// Result completeness and staleness are index-dependent: the backend reports
// whatever the local Spotlight index holds at submission time.
package spotlight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/aviref/mdq"
)

// Backend implements mdq.Backend on top of the mdfind tool.
type Backend struct {
	// MDFind and MDLS override the tool paths. Empty means look them up
	// in PATH.
	MDFind string
	MDLS   string
}

// New returns a backend using the mdfind and mdls tools from PATH.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) mdfindPath() string {
	if b.MDFind != "" {
		return b.MDFind
	}
	return "mdfind"
}

func (b *Backend) mdlsPath() string {
	if b.MDLS != "" {
		return b.MDLS
	}
	return "mdls"
}

// Submit starts an mdfind run for the predicate. mdfind has no result-count
// flag, so the limit is applied by truncating its output.
func (b *Backend) Submit(predicate string, scopeRoots []string, limit int) (mdq.Gather, error) {
	args := make([]string, 0, 2*len(scopeRoots)+1)
	for _, root := range scopeRoots {
		dir, restrict, err := onlyinDir(root)
		if err != nil {
			return nil, err
		}
		if restrict {
			args = append(args, "-onlyin", dir)
		}
	}
	args = append(args, predicate)

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, b.mdfindPath(), args...)

	g := &gather{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(g.done)
		out, err := cmd.Output()
		if err != nil {
			if ctx.Err() != nil {
				g.err = ctx.Err()
			} else {
				g.err = commandError("mdfind", err)
			}
			return
		}
		paths := splitLines(string(out))
		if limit > 0 && len(paths) > limit {
			paths = paths[:limit]
		}
		g.matches = make([]mdq.Match, len(paths))
		for i, p := range paths {
			g.matches[i] = &match{backend: b, path: p}
		}
	}()
	return g, nil
}

// onlyinDir maps a resolved scope root to an mdfind -onlyin directory.
// The computer-wide scopes place no restriction at all.
func onlyinDir(root string) (dir string, restrict bool, err error) {
	switch root {
	case "kMDQueryScopeHome":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, fmt.Errorf("resolve home scope: %w", err)
		}
		return home, true, nil
	case "kMDQueryScopeComputer", "kMDQueryScopeComputerIndexed", "kMDQueryScopeAllIndexed":
		return "", false, nil
	case "kMDQueryScopeNetwork", "kMDQueryScopeNetworkIndexed":
		return "/Network", true, nil
	default:
		return root, true, nil
	}
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// commandError surfaces the tool's stderr when available; exit codes alone
// say nothing useful about a bad query.
func commandError(tool string, err error) error {
	var exit *exec.ExitError
	if errors.As(err, &exit) && len(exit.Stderr) > 0 {
		return fmt.Errorf("%s: %s", tool, strings.TrimSpace(string(exit.Stderr)))
	}
	return fmt.Errorf("%s: %w", tool, err)
}

type gather struct {
	cancel  context.CancelFunc
	done    chan struct{}
	matches []mdq.Match
	err     error
	once    sync.Once
}

func (g *gather) Done() <-chan struct{} { return g.done }

func (g *gather) Err() error { return g.err }

func (g *gather) Matches() []mdq.Match { return g.matches }

func (g *gather) Close() error {
	g.once.Do(g.cancel)
	return nil
}
