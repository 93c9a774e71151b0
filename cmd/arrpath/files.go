package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List every library file record",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

type fileRow struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Path     string `json:"path"`
	ParentID int64  `json:"parent_id"`
	Parent   string `json:"parent"`
}

func runFiles(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireBackend(); err != nil {
		return err
	}

	files := a.indexer().AllFiles(cmd.Context())

	rows := make([]fileRow, 0, len(files))
	for _, f := range files {
		r := fileRow{ID: f.ID, Title: f.Title, Path: f.Path}
		if f.Parent != nil {
			r.ParentID = f.Parent.ID
			r.Parent = f.Parent.Title
		}
		rows = append(rows, r)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, rows)
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "No files")
		return nil
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.FormatInt(r.ID, 10),
			r.Title,
			r.Parent,
			truncatePath(r.Path, 60),
		})
	}
	fmt.Fprintf(out, "Files (%d):\n", len(rows))
	fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Item", "Path"}, table,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
	return nil
}
