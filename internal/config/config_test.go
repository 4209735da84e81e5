package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aviref/mdq"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Scopes) != 0 || cfg.Limit != 0 {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("parses fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
scopes = ["home", "/Volumes/Archive"]
limit = 50

[ui]
accent = "#A78BFA"
code_theme = "dracula"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Scopes) != 2 || cfg.Scopes[1] != "/Volumes/Archive" {
			t.Errorf("scopes: got %v", cfg.Scopes)
		}
		if cfg.Limit != 50 {
			t.Errorf("limit: got %d, want 50", cfg.Limit)
		}
		if cfg.UI.Accent != "#A78BFA" || cfg.UI.CodeTheme != "dracula" {
			t.Errorf("ui: got %+v", cfg.UI)
		}
	})

	t.Run("invalid toml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("scopes = ["), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in   string
		want mdq.Scope
		err  bool
	}{
		{in: "home", want: mdq.ScopeHome},
		{in: "computer", want: mdq.ScopeComputer},
		{in: "network", want: mdq.ScopeNetwork},
		{in: "all", want: mdq.ScopeAllIndexed},
		{in: "/Users/shared", want: mdq.CustomScope("/Users/shared")},
		{in: "relative/path", err: true},
		{in: "everywhere", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if tt.err {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseScopesDefaultsToHome(t *testing.T) {
	scopes, err := ParseScopes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scopes) != 1 || scopes[0] != mdq.ScopeHome {
		t.Errorf("got %v", scopes)
	}
}
