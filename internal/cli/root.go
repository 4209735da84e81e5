// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aviref/mdq"
	"github.com/aviref/mdq/internal/config"
	"github.com/aviref/mdq/internal/ui"
	"github.com/aviref/mdq/spotlight"
)

var (
	// Global flags
	configPath string
	scopeFlags []string
	limitFlag  int
	noHistory  bool

	// Resolved values
	cfg *config.Config
)

// newBackend is swapped out by tests.
var newBackend = func() mdq.Backend { return spotlight.New() }

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mdq",
	Short: "mdq - typed Spotlight metadata queries",
	Long: `mdq builds typed metadata queries, compiles them to the Spotlight
query grammar, and runs them against the local index.

Filters are composed from flags (no hand-written predicate strings), so
quoting and escaping are always correct.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if isJSONOutput() {
			outputError(errorCode(err), err.Error())
		} else {
			fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		}
		return err
	}
	return nil
}

// effectiveScopes resolves the scope list: --scope flags win, then the
// config file, then home.
func effectiveScopes(override []string) ([]mdq.Scope, error) {
	names := override
	if len(names) == 0 {
		names = scopeFlags
	}
	if len(names) == 0 {
		names = cfg.Scopes
	}
	return config.ParseScopes(names)
}

// effectiveLimit resolves the result cap: --limit wins, then the config.
func effectiveLimit(override int) int {
	if override > 0 {
		return override
	}
	if limitFlag > 0 {
		return limitFlag
	}
	return cfg.Limit
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	rootCmd.PersistentFlags().StringArrayVar(&scopeFlags, "scope", nil, "Search scope: home, computer, network, all, or an absolute path (repeatable)")
	rootCmd.PersistentFlags().IntVarP(&limitFlag, "limit", "n", 0, "Maximum number of results (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not record this run in search history")
}
