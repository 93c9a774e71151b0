package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmunix/arrpath/internal/queue"
	"github.com/vmunix/arrpath/pkg/arr"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the backend download queue",
	Args:  cobra.NoArgs,
	RunE:  runQueueCmd,
}

func init() {
	rootCmd.AddCommand(queueCmd)
}

func runQueueCmd(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctrl, err := queue.NewController(a.cfg.Backend.URL, a.cfg.Backend.APIKey,
		queue.WithBackend(a.client), queue.WithLogger(a.log))
	if err != nil {
		return err
	}

	entries, ok := ctrl.Entries(cmd.Context())
	if !ok {
		return fmt.Errorf("queue fetch failed")
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if entries == nil {
			entries = []arr.QueueEntry{}
		}
		return printJSON(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "Queue is empty")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Title,
			e.DownloadClient,
			e.Status,
			e.TrackedDownloadState,
			formatProgress(e.Size, e.SizeLeft),
		})
	}
	fmt.Fprintf(out, "Queue (%d):\n", len(entries))
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Title", "Client", "Status", "State", "Progress"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}))
	return nil
}

func formatProgress(size, left int64) string {
	if size <= 0 {
		return "-"
	}
	done := size - left
	if done < 0 {
		done = 0
	}
	return fmt.Sprintf("%.0f%%", float64(done)*100/float64(size))
}
