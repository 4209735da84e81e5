package mdq_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aviref/mdq"
	"github.com/aviref/mdq/mdqtest"
)

func buildQuery(t *testing.T, scopes []mdq.Scope, limit int) *mdq.Query {
	t.Helper()
	q, err := mdq.NewBuilder().NameLike("report").Build(scopes, limit)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return q
}

func TestExecute(t *testing.T) {
	backend := mdqtest.New()
	backend.Add("/docs/report.pdf", map[string]any{
		"kMDItemDisplayName": "report.pdf",
		"kMDItemFSSize":      int64(2048),
	})
	backend.Add("/docs/notes.txt", map[string]any{
		"kMDItemDisplayName": "notes.txt",
	})

	q := buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 0)
	results, err := mdq.NewExecutor(backend).Execute(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer results.Close()

	if results.Len() != 2 {
		t.Fatalf("got %d results, want 2", results.Len())
	}

	items := results.Items()
	path, ok := items[0].Path()
	if !ok || path != "/docs/report.pdf" {
		t.Errorf("path: got (%q, %v)", path, ok)
	}
	name, ok := items[1].DisplayName()
	if !ok || name != "notes.txt" {
		t.Errorf("display name: got (%q, %v)", name, ok)
	}

	subs := backend.Submissions()
	if len(subs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(subs))
	}
	wantPred := `kMDItemDisplayName == "*report*"cw`
	if subs[0].Predicate != wantPred {
		t.Errorf("predicate: got %q, want %q", subs[0].Predicate, wantPred)
	}
	if len(subs[0].Scopes) != 1 || subs[0].Scopes[0] != "kMDQueryScopeHome" {
		t.Errorf("scopes: got %v", subs[0].Scopes)
	}
}

func TestExecuteZeroMatchesIsNotAnError(t *testing.T) {
	backend := mdqtest.New()
	q := buildQuery(t, []mdq.Scope{mdq.ScopeComputer}, 0)

	results, err := mdq.NewExecutor(backend).Execute(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer results.Close()
	if results.Len() != 0 {
		t.Errorf("got %d results, want 0", results.Len())
	}
}

func TestExecuteAppliesLimit(t *testing.T) {
	backend := mdqtest.New()
	for _, p := range []string{"/a", "/b", "/c"} {
		backend.Add(p, nil)
	}

	q := buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 2)
	results, err := mdq.NewExecutor(backend).Execute(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer results.Close()
	if results.Len() != 2 {
		t.Errorf("got %d results, want 2", results.Len())
	}
	if subs := backend.Submissions(); subs[0].Limit != 2 {
		t.Errorf("limit forwarded: got %d, want 2", subs[0].Limit)
	}
}

func TestExecuteScopeValidationPrecedesSubmission(t *testing.T) {
	backend := mdqtest.New()
	q := buildQuery(t, []mdq.Scope{mdq.CustomScope("not/absolute")}, 0)

	_, err := mdq.NewExecutor(backend).Execute(q)
	var serr *mdq.InvalidScopeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected InvalidScopeError, got %v", err)
	}
	if len(backend.Submissions()) != 0 {
		t.Error("backend was reached despite invalid scope")
	}
}

func TestExecuteBackendFailures(t *testing.T) {
	t.Run("submit error", func(t *testing.T) {
		backend := mdqtest.New()
		backend.SubmitErr = errors.New("index unavailable")

		_, err := mdq.NewExecutor(backend).Execute(buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 0))
		var qerr *mdq.QueryError
		if !errors.As(err, &qerr) {
			t.Fatalf("expected QueryError, got %v", err)
		}
		if !errors.Is(err, backend.SubmitErr) {
			t.Error("backend error not surfaced verbatim")
		}
	})

	t.Run("gather error releases resources", func(t *testing.T) {
		backend := mdqtest.New()
		backend.GatherErr = errors.New("gather failed")

		_, err := mdq.NewExecutor(backend).Execute(buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 0))
		var qerr *mdq.QueryError
		if !errors.As(err, &qerr) {
			t.Fatalf("expected QueryError, got %v", err)
		}
		if n := backend.OpenGathers(); n != 0 {
			t.Errorf("outstanding gathers: got %d, want 0", n)
		}
	})
}

func TestExecuteContextCancelReleasesResources(t *testing.T) {
	backend := mdqtest.New()
	backend.Hold = true
	backend.Add("/a", nil)

	ctx, cancel := context.WithCancel(context.Background())
	q := buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 0)

	errc := make(chan error, 1)
	go func() {
		_, err := mdq.NewExecutor(backend).ExecuteContext(ctx, q)
		errc <- err
	}()

	// Let the execution reach the gather before withdrawing interest.
	deadline := time.After(2 * time.Second)
	for len(backend.Submissions()) == 0 {
		select {
		case <-deadline:
			t.Fatal("execution never submitted")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	cancel()

	err := <-errc
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n := backend.OpenGathers(); n != 0 {
		t.Errorf("outstanding gathers after cancel: got %d, want 0", n)
	}
}

func TestConcurrentExecuteOnOneQuery(t *testing.T) {
	backend := mdqtest.New()
	backend.Add("/a", nil)
	backend.Add("/b", nil)

	q := buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 0)
	exec := mdq.NewExecutor(backend)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := exec.Execute(q)
			if err != nil {
				errs <- err
				return
			}
			defer results.Close()
			if results.Len() != 2 {
				errs <- errors.New("wrong result count")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent execute: %v", err)
	}

	if got := len(backend.Submissions()); got != workers {
		t.Errorf("got %d submissions, want %d", got, workers)
	}
	if n := backend.OpenGathers(); n != 0 {
		t.Errorf("outstanding gathers: got %d, want 0", n)
	}
}

func TestItemAttributes(t *testing.T) {
	backend := mdqtest.New()
	backend.Add("/pics/cat.png", map[string]any{
		"kMDItemDisplayName": "cat.png",
		"kMDItemFSSize":      int64(512),
		"kMDItemAuthors":     []string{"alice", "bob"},
	})

	results, err := mdq.NewExecutor(backend).Execute(buildQuery(t, []mdq.Scope{mdq.ScopeHome}, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := results.Items()[0]

	t.Run("names are all resolvable", func(t *testing.T) {
		names, err := item.AttributeNames()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) == 0 {
			t.Fatal("no attribute names")
		}
		for _, key := range names {
			v, err := item.Attribute(key)
			if err != nil {
				t.Errorf("attribute %s: %v", key, err)
			}
			if v.IsAbsent() {
				t.Errorf("attribute %s listed but absent", key)
			}
		}
	})

	t.Run("unset attribute is absent, not an error", func(t *testing.T) {
		v, err := item.Attribute(mdq.KeyTextContent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.IsAbsent() {
			t.Errorf("expected absent, got %v", v.Kind())
		}
	})

	t.Run("typed access", func(t *testing.T) {
		v, err := item.Attribute(mdq.KeyFSSize)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n, err := v.Number()
		if err != nil || n != 512 {
			t.Errorf("got (%v, %v)", n, err)
		}
		if _, err := v.String(); err == nil {
			t.Error("expected type mismatch reading size as string")
		}
	})

	t.Run("list attribute", func(t *testing.T) {
		v, err := item.Attribute(mdq.KeyAuthors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list, err := v.List()
		if err != nil || len(list) != 2 {
			t.Errorf("got (%v, %v)", list, err)
		}
	})

	t.Run("access after close fails deterministically", func(t *testing.T) {
		if err := results.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		if _, err := item.Attribute(mdq.KeyFSSize); !errors.Is(err, mdq.ErrItemInvalid) {
			t.Errorf("expected ErrItemInvalid, got %v", err)
		}
		if _, err := item.AttributeNames(); !errors.Is(err, mdq.ErrItemInvalid) {
			t.Errorf("expected ErrItemInvalid, got %v", err)
		}
		if _, ok := item.Path(); ok {
			t.Error("path still resolvable after close")
		}
		// Close is idempotent.
		if err := results.Close(); err != nil {
			t.Errorf("second close: %v", err)
		}
	})
}
