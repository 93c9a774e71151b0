package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/arrpath/internal/metadata"
	"github.com/vmunix/arrpath/pkg/arr"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Show the library file record matching a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var imdbCmd = &cobra.Command{
	Use:   "imdb <path>",
	Short: "Print the IMDb id of the item owning a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runIMDb,
}

var tvdbCmd = &cobra.Command{
	Use:   "tvdb <path>",
	Short: "Print the TVDb id of the series owning a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runTVDb,
}

var tmdbCmd = &cobra.Command{
	Use:   "tmdb <path>",
	Short: "Print the TMDb id of the movie owning a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runTMDb,
}

var languageCmd = &cobra.Command{
	Use:   "language <path>",
	Short: "Print the original language of the item owning a path",
	Long: `Print the original language of the item owning a path.

The language is read from the item's IMDb title page. Results are cached in
the local database when [history] path is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runLanguage,
}

func init() {
	rootCmd.AddCommand(resolveCmd, imdbCmd, tvdbCmd, tmdbCmd, languageCmd)
}

type resolveResult struct {
	File   arr.FileRecord   `json:"file"`
	Parent *arr.LibraryItem `json:"parent,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireBackend(); err != nil {
		return err
	}

	f := a.pathMatcher().FindByPath(cmd.Context(), args[0], nil)
	if f == nil {
		return errNotFound
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resolveResult{File: *f, Parent: f.Parent})
	}

	fmt.Fprintf(out, "File:    %d  %s\n", f.ID, f.Title)
	fmt.Fprintf(out, "Path:    %s\n", f.Path)
	if p := f.Parent; p != nil {
		fmt.Fprintf(out, "Item:    %d  %s\n", p.ID, p.Title)
		if p.IMDbID != "" {
			fmt.Fprintf(out, "IMDb:    %s\n", p.IMDbID)
		}
		if p.TVDbID != 0 {
			fmt.Fprintf(out, "TVDb:    %d\n", p.TVDbID)
		}
		if p.TMDbID != 0 {
			fmt.Fprintf(out, "TMDb:    %d\n", p.TMDbID)
		}
	}
	return nil
}

type idResult struct {
	Path string `json:"path"`
	ID   any    `json:"id"`
}

// printID writes a resolved id, or reports errNotFound.
func printID(cmd *cobra.Command, path string, id any, ok bool) error {
	if !ok {
		return errNotFound
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), idResult{Path: path, ID: id})
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

// withResolver runs fn against a resolver for a configured backend.
func withResolver(cmd *cobra.Command, fn func(*metadata.Resolver) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireBackend(); err != nil {
		return err
	}
	return fn(a.resolver(cmd.Context()))
}

func runIMDb(cmd *cobra.Command, args []string) error {
	return withResolver(cmd, func(r *metadata.Resolver) error {
		id, ok := r.IMDbID(cmd.Context(), args[0])
		return printID(cmd, args[0], id, ok)
	})
}

func runTVDb(cmd *cobra.Command, args []string) error {
	return withResolver(cmd, func(r *metadata.Resolver) error {
		id, ok := r.TVDbID(cmd.Context(), args[0])
		return printID(cmd, args[0], id, ok)
	})
}

func runTMDb(cmd *cobra.Command, args []string) error {
	return withResolver(cmd, func(r *metadata.Resolver) error {
		id, ok := r.TMDbID(cmd.Context(), args[0])
		return printID(cmd, args[0], id, ok)
	})
}

type languageResult struct {
	Path string `json:"path"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func runLanguage(cmd *cobra.Command, args []string) error {
	return withResolver(cmd, func(r *metadata.Resolver) error {
		code, ok := r.OriginalLanguage(cmd.Context(), args[0])
		if !ok {
			return errNotFound
		}
		res := languageResult{Path: args[0], Code: code, Name: metadata.LanguageName(code)}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Code, res.Name)
		return nil
	})
}
