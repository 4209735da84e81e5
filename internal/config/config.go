// Package config handles global mdq configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aviref/mdq"
)

// Config represents the global mdq configuration, loaded from
// ~/.config/mdq/config.toml (or the platform equivalent).
type Config struct {
	// Scopes are the default search scopes used when no --scope flag is
	// given. Values: "home", "computer", "network", "all", or an absolute
	// directory path.
	Scopes []string `toml:"scopes"`

	// Limit is the default result cap. 0 means unlimited.
	Limit int `toml:"limit"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255") or
	// hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Chroma theme used for rendered markdown code
	// blocks. Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "mdq", "config.toml"), nil
}

// SavedSearchesPath returns the path of the saved-searches file, next to the
// config file.
func SavedSearchesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "mdq", "searches.yaml"), nil
}

// HistoryPath returns the path of the search-history database.
func HistoryPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	return filepath.Join(dir, "mdq", "history.db"), nil
}

// Load reads the config file at path. A missing file is not an error; it
// yields the zero config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseScope maps a config or flag scope string to a query scope.
func ParseScope(s string) (mdq.Scope, error) {
	switch s {
	case "home":
		return mdq.ScopeHome, nil
	case "computer":
		return mdq.ScopeComputer, nil
	case "network":
		return mdq.ScopeNetwork, nil
	case "all":
		return mdq.ScopeAllIndexed, nil
	case "computer-indexed":
		return mdq.ScopeComputerIndexed, nil
	case "network-indexed":
		return mdq.ScopeNetworkIndexed, nil
	}
	if filepath.IsAbs(s) {
		return mdq.CustomScope(s), nil
	}
	return mdq.Scope{}, fmt.Errorf("unknown scope %q (use home, computer, network, all, or an absolute path)", s)
}

// ParseScopes maps a list of scope strings, falling back to "home" when the
// list is empty.
func ParseScopes(names []string) ([]mdq.Scope, error) {
	if len(names) == 0 {
		return []mdq.Scope{mdq.ScopeHome}, nil
	}
	scopes := make([]mdq.Scope, 0, len(names))
	for _, name := range names {
		s, err := ParseScope(name)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}
