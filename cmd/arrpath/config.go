package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/arrpath/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values and environment variable substitution without contacting the backend.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configInitCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		path = p
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	backend := cfg.Backend.URL
	if backend == "" {
		backend = "(not set)"
	}
	key := "set"
	if cfg.Backend.APIKey == "" {
		key = "not set"
	}
	fmt.Fprintf(w, "  Backend:    %s %s (api key %s, timeout %s)\n", cfg.Backend.Kind, backend, key, cfg.Backend.Timeout)
	if cfg.Backend.RateLimit > 0 {
		fmt.Fprintf(w, "  Rate limit: %g req/s\n", cfg.Backend.RateLimit)
	}
	fmt.Fprintf(w, "  Matching:   %s\n", cfg.Match.Policy)
	fmt.Fprintf(w, "  Scrape:     %s (cache %s)\n", cfg.Scrape.BaseURL, cfg.Scrape.CacheTTL)
	if cfg.History.Path != "" {
		fmt.Fprintf(w, "  History:    %s\n", cfg.History.Path)
	} else {
		fmt.Fprintln(w, "  History:    disabled")
	}
	fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
