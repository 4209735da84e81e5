package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aviref/mdq"
	"github.com/aviref/mdq/internal/ui"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs <path>",
	Short: "Show indexed metadata attributes for a file",
	Long: `Look a file up in the metadata index and print its attributes.

The file is located by an exact path match scoped to its parent
directory, so only indexed files produce output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot access %s: %w", path, err)
		}
		return showAttrs(path)
	},
}

func showAttrs(path string) error {
	q, err := mdq.NewBuilder().
		Where(mdq.KeyPath, mdq.OpEq, mdq.StringValue(path)).
		Build([]mdq.Scope{mdq.CustomScope(filepath.Dir(path))}, 1)
	if err != nil {
		return err
	}

	results, err := mdq.NewExecutor(newBackend()).Execute(q)
	if err != nil {
		return err
	}
	defer results.Close()

	if results.Len() == 0 {
		return fmt.Errorf("%s is not in the metadata index", path)
	}

	item := results.Items()[0]
	names, err := item.AttributeNames()
	if err != nil {
		return err
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	if isJSONOutput() {
		attrs := make(map[string]string, len(names))
		for _, name := range names {
			v, err := item.Attribute(name)
			if err != nil || v.IsAbsent() {
				continue
			}
			attrs[string(name)] = v.Display()
		}
		outputSuccess(map[string]interface{}{"path": path, "attributes": attrs}, nil)
		return nil
	}

	tbl := ui.NewTable(2)
	for _, name := range names {
		v, err := item.Attribute(name)
		if err != nil || v.IsAbsent() {
			continue
		}
		tbl.AddRow(ui.AttrName(string(name)), v.Display())
	}
	fmt.Print(tbl.String())
	return nil
}

func init() {
	rootCmd.AddCommand(attrsCmd)
}
