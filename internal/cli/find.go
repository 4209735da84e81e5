package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aviref/mdq"
	"github.com/aviref/mdq/internal/config"
	"github.com/aviref/mdq/internal/history"
	"github.com/aviref/mdq/internal/saved"
	"github.com/aviref/mdq/internal/ui"
)

var (
	findCriteria saved.Criteria
	findSaveName string
	findLong     bool
)

var findCmd = &cobra.Command{
	Use:   "find [name]",
	Short: "Search the metadata index",
	Long: `Search the Spotlight index with typed filters.

A bare argument matches against display names (like --name). Filters
combine with AND.

Examples:
  mdq find report --ext pdf
  mdq find --app safari
  mdq find --type public.image --min-size 1048576 --scope /Users/me/Pictures
  mdq find --after 2024-01-01 --ext md -n 20
  mdq find report --ext pdf --save big-reports`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := findCriteria
		if len(args) == 1 {
			if c.Name != "" {
				return fmt.Errorf("positional name and --name are mutually exclusive")
			}
			c.Name = args[0]
		}
		c.Scopes = scopeFlags
		c.Limit = limitFlag

		if findSaveName != "" {
			if err := saveCriteria(findSaveName, c); err != nil {
				return err
			}
		}
		return runCriteria(c)
	},
}

// runCriteria resolves scopes, executes, records history, and prints
// results. Shared by find and saved-search runs.
func runCriteria(c saved.Criteria) error {
	scopes, err := effectiveScopes(c.Scopes)
	if err != nil {
		return err
	}
	limit := effectiveLimit(c.Limit)

	q, err := queryFromCriteria(c, scopes, limit)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := mdq.NewExecutor(newBackend()).Execute(q)
	if err != nil {
		return err
	}
	defer results.Close()
	elapsed := time.Since(start)

	if !noHistory {
		recordRun(q, results.Len())
	}
	return outputResults(q, results, elapsed)
}

// recordRun stores the run in the history database. History is best-effort:
// a failure warns but never fails the search.
func recordRun(q *mdq.Query, count int) {
	predicate, err := q.Predicate()
	if err != nil {
		return
	}
	path, err := config.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: search history unavailable: %v\n", err)
		return
	}
	db, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: search history unavailable: %v\n", err)
		return
	}
	defer db.Close()

	scopes := make([]string, len(q.Scopes()))
	for i, s := range q.Scopes() {
		scopes[i] = s.String()
	}
	run := history.Run{
		Predicate:   predicate,
		Scopes:      strings.Join(scopes, " "),
		ResultCount: count,
		ExecutedAt:  time.Now(),
	}
	if err := db.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
	}
}

type itemView struct {
	Path        string `json:"path"`
	DisplayName string `json:"display_name,omitempty"`
}

func outputResults(q *mdq.Query, results *mdq.Results, elapsed time.Duration) error {
	items := results.Items()

	if isJSONOutput() {
		views := make([]itemView, 0, len(items))
		for _, item := range items {
			var v itemView
			v.Path, _ = item.Path()
			v.DisplayName, _ = item.DisplayName()
			views = append(views, v)
		}
		predicate, _ := q.Predicate()
		outputSuccess(map[string]interface{}{"items": views}, &Meta{
			Count:       len(items),
			QueryTimeMs: elapsed.Milliseconds(),
			Predicate:   predicate,
		})
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No results.")
		return nil
	}

	if findLong {
		tbl := ui.NewTable(2)
		for _, item := range items {
			name, _ := item.DisplayName()
			path, _ := item.Path()
			tbl.AddRow(ui.AttrName(name), path)
		}
		fmt.Print(tbl.String())
	} else {
		for _, item := range items {
			if path, ok := item.Path(); ok {
				fmt.Println(path)
			}
		}
	}
	if ui.IsTTY() {
		fmt.Println(ui.Count(len(items)))
	}
	return nil
}

func saveCriteria(name string, c saved.Criteria) error {
	path, err := config.SavedSearchesPath()
	if err != nil {
		return err
	}
	f, err := saved.Load(path)
	if err != nil {
		return err
	}
	key := f.Put(name, c)
	if err := f.Save(path); err != nil {
		return err
	}
	if !isJSONOutput() {
		fmt.Println(ui.Successf("saved search %q", key))
	}
	return nil
}

func init() {
	findCmd.Flags().StringVar(&findCriteria.Name, "name", "", "Match display names containing this text")
	findCmd.Flags().StringVar(&findCriteria.Exact, "exact", "", "Match this exact display name")
	findCmd.Flags().StringVarP(&findCriteria.Ext, "ext", "e", "", "Match this file extension")
	findCmd.Flags().StringVarP(&findCriteria.Type, "type", "t", "", "Match this content type UTI")
	findCmd.Flags().BoolVar(&findCriteria.App, "app", false, "Match application bundles only")
	findCmd.Flags().StringVar(&findCriteria.Dir, "dir", "", "Filter folders: yes or no")
	findCmd.Flags().Int64Var(&findCriteria.MinSize, "min-size", 0, "Minimum file size in bytes")
	findCmd.Flags().Int64Var(&findCriteria.MaxSize, "max-size", 0, "Maximum file size in bytes")
	findCmd.Flags().StringVar(&findCriteria.After, "after", "", "Modified after this date (2024-06-01, yesterday, 7d)")
	findCmd.Flags().StringVar(&findCriteria.Before, "before", "", "Modified before this date (2024-06-01, yesterday, 7d)")
	findCmd.Flags().StringArrayVar(&findCriteria.Where, "where", nil, "Raw comparison \"key op value\", e.g. \"kMDItemPixelWidth >= 1920\" (repeatable)")
	findCmd.Flags().StringVar(&findSaveName, "save", "", "Save these filters as a named search")
	findCmd.Flags().BoolVarP(&findLong, "long", "l", false, "Show display names alongside paths")
	rootCmd.AddCommand(findCmd)
}
