package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/arrpath/internal/queue"
)

var blocklistExitCode bool

var blocklistCmd = &cobra.Command{
	Use:   "blocklist <path>",
	Short: "Remove and blocklist queue entries matching a path",
	Long: `Remove and blocklist every queue entry whose title occurs in path, so the
backend searches for another release.

Prints 1 when something was blocklisted and 2 when nothing matched. Titles are
compared case-sensitively. With --exit-code the result is also the exit status.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlocklist,
}

func init() {
	rootCmd.AddCommand(blocklistCmd)
	blocklistCmd.Flags().BoolVar(&blocklistExitCode, "exit-code", false, "Exit with the result (1 blocklisted, 2 not found)")
}

type blocklistResult struct {
	Path   string `json:"path"`
	Status int    `json:"status"`
	Result string `json:"result"`
}

func runBlocklist(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := []queue.Option{queue.WithBackend(a.client), queue.WithLogger(a.log)}
	if store := a.historyStore(); store != nil {
		opts = append(opts, queue.WithRecorder(store))
	}

	status := queue.StatusInvalid
	ctrl, ctrlErr := queue.NewController(a.cfg.Backend.URL, a.cfg.Backend.APIKey, opts...)
	if ctrlErr == nil {
		status = ctrl.Check(cmd.Context(), args[0])
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := printJSON(out, blocklistResult{Path: args[0], Status: int(status), Result: status.String()}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, int(status))
	}

	switch {
	case ctrlErr != nil:
		return ctrlErr
	case blocklistExitCode:
		return &exitCodeError{code: int(status)}
	default:
		return nil
	}
}
