package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aviref/mdq/internal/config"
	"github.com/aviref/mdq/internal/saved"
	"github.com/aviref/mdq/internal/ui"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved searches",
	Long: `List, run, and remove saved searches.

Create one with 'mdq find ... --save <name>'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSavedSearches()
	},
}

var savedRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a saved search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadSavedSearches()
		if err != nil {
			return err
		}
		c, ok := f.Get(args[0])
		if !ok {
			return fmt.Errorf("saved search %q not found\n\nRun 'mdq saved' to list saved searches", args[0])
		}
		// Command-line scope/limit flags override the saved snapshot.
		if len(scopeFlags) > 0 {
			c.Scopes = scopeFlags
		}
		if limitFlag > 0 {
			c.Limit = limitFlag
		}
		return runCriteria(c)
	},
}

var savedRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a saved search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.SavedSearchesPath()
		if err != nil {
			return err
		}
		f, err := saved.Load(path)
		if err != nil {
			return err
		}
		if !f.Delete(args[0]) {
			return fmt.Errorf("saved search %q not found", args[0])
		}
		if err := f.Save(path); err != nil {
			return err
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"removed": args[0]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("removed saved search %q", args[0]))
		return nil
	},
}

func loadSavedSearches() (*saved.File, error) {
	path, err := config.SavedSearchesPath()
	if err != nil {
		return nil, err
	}
	return saved.Load(path)
}

func listSavedSearches() error {
	f, err := loadSavedSearches()
	if err != nil {
		return err
	}

	if isJSONOutput() {
		outputSuccess(f.Searches, &Meta{Count: len(f.Searches)})
		return nil
	}

	names := f.Names()
	if len(names) == 0 {
		fmt.Println("No saved searches. Create one with 'mdq find ... --save <name>'.")
		return nil
	}

	tbl := ui.NewTable(2)
	for _, name := range names {
		c := f.Searches[name]
		tbl.AddRow(ui.AttrName(name), describeCriteria(c))
	}
	fmt.Print(tbl.String())
	return nil
}

// describeCriteria renders a one-line summary of a saved search.
func describeCriteria(c saved.Criteria) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+"="+value)
		}
	}
	add("name", c.Name)
	add("exact", c.Exact)
	add("ext", c.Ext)
	add("type", c.Type)
	if c.App {
		parts = append(parts, "app")
	}
	add("dir", c.Dir)
	if c.MinSize > 0 {
		parts = append(parts, fmt.Sprintf("min-size=%d", c.MinSize))
	}
	if c.MaxSize > 0 {
		parts = append(parts, fmt.Sprintf("max-size=%d", c.MaxSize))
	}
	add("after", c.After)
	add("before", c.Before)
	for _, w := range c.Where {
		parts = append(parts, "where="+w)
	}
	if len(parts) == 0 {
		return ui.Muted.Render("(match everything)")
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

func init() {
	savedCmd.AddCommand(savedRunCmd)
	savedCmd.AddCommand(savedRmCmd)
	rootCmd.AddCommand(savedCmd)
}
