package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	logLevel   string
	backendURL string
	apiKey     string
)

var rootCmd = &cobra.Command{
	Use:   "arrpath",
	Short: "Resolve media paths against Sonarr/Radarr",
	Long: `arrpath - resolve media file paths against a Sonarr or Radarr library

Looks up the library record, external ids and original language of a file
from its path, and blocklists queue entries that match a download path.

Lookups that find nothing exit with status 2.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "arrpath %s\n", version)
	},
}

// exitCodeError ends the process with code without printing anything.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// errNotFound is returned by lookups that resolved nothing.
var errNotFound = &exitCodeError{code: 2}

func Execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "url", "", "Backend URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Backend API key (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrpath {{.Version}}\n")
}
