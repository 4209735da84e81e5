package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aviref/mdq/internal/config"
	"github.com/aviref/mdq/internal/history"
	"github.com/aviref/mdq/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long:  `Show recent searches, newest first. Use --limit to change how many.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory()
		if err != nil {
			return err
		}
		defer db.Close()

		runs, err := db.Recent(limitFlag)
		if err != nil {
			return err
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"runs": runs}, &Meta{Count: len(runs)})
			return nil
		}

		if len(runs) == 0 {
			fmt.Println("No search history.")
			return nil
		}

		tbl := ui.NewTable(3)
		for _, run := range runs {
			when := run.ExecutedAt.Local().Format("2006-01-02 15:04")
			tbl.AddRow(ui.Muted.Render(when), run.Predicate, ui.Count(run.ResultCount))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all search history",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Clear(); err != nil {
			return err
		}
		if isJSONOutput() {
			outputSuccess(map[string]bool{"cleared": true}, nil)
			return nil
		}
		fmt.Println(ui.Successf("search history cleared"))
		return nil
	},
}

func openHistory() (*history.DB, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
