package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/arrpath/internal/history"
)

var (
	historyLimit int
	historyTitle string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show blocklist actions recorded locally",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show (0 = all)")
	historyCmd.Flags().StringVarP(&historyTitle, "title", "t", "", "Only entries for this exact queue title")
}

var errHistoryDisabled = errors.New("history disabled: set [history] path in the config")

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	store := a.historyStore()
	if store == nil {
		return errHistoryDisabled
	}

	entries, err := store.List(cmd.Context(), history.Filter{Title: historyTitle, Limit: historyLimit})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if entries == nil {
			entries = []*history.Entry{}
		}
		return printJSON(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No blocklist history")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format(time.DateTime),
			strconv.FormatInt(e.QueueID, 10),
			e.Title,
			e.DownloadClient,
			truncatePath(e.Path, 50),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"When", "Queue ID", "Title", "Client", "Path"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft}))
	return nil
}
