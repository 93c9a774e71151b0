// Package metadata resolves identifiers and the original language of a media
// file from its path.
package metadata

import (
	"context"
	"log/slog"

	"github.com/vmunix/arrpath/pkg/arr"
)

// PathMatcher resolves a path to a file record. *library.Matcher satisfies it.
type PathMatcher interface {
	FindByPath(ctx context.Context, path string, files []arr.FileRecord) *arr.FileRecord
}

// Resolver answers metadata questions about a path. Every lookup degrades to
// ok=false with a warning; none of them return errors.
type Resolver struct {
	matcher PathMatcher
	scraper *Scraper
	log     *slog.Logger
}

// NewResolver creates a resolver. scraper may be nil, which disables
// OriginalLanguage.
func NewResolver(matcher PathMatcher, scraper *Scraper, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		matcher: matcher,
		scraper: scraper,
		log:     log.With("component", "resolver"),
	}
}

// parent resolves path to its owning library item.
func (r *Resolver) parent(ctx context.Context, path string) *arr.LibraryItem {
	f := r.matcher.FindByPath(ctx, path, nil)
	if f == nil || f.Parent == nil {
		return nil
	}
	return f.Parent
}

// IMDbID returns the IMDb id of the item owning the file at path.
func (r *Resolver) IMDbID(ctx context.Context, path string) (string, bool) {
	item := r.parent(ctx, path)
	if item == nil || item.IMDbID == "" {
		r.log.Warn("unable to get IMDb ID for path", "path", path)
		return "", false
	}
	return item.IMDbID, true
}

// TVDbID returns the TVDb id of the item owning the file at path.
func (r *Resolver) TVDbID(ctx context.Context, path string) (int64, bool) {
	item := r.parent(ctx, path)
	if item == nil || item.TVDbID == 0 {
		r.log.Warn("unable to get TVDb ID for path", "path", path)
		return 0, false
	}
	return item.TVDbID, true
}

// TMDbID returns the TMDb id of the movie owning the file at path.
func (r *Resolver) TMDbID(ctx context.Context, path string) (int64, bool) {
	item := r.parent(ctx, path)
	if item == nil || item.TMDbID == 0 {
		r.log.Warn("unable to get TMDb ID for path", "path", path)
		return 0, false
	}
	return item.TMDbID, true
}

// OriginalLanguage returns the primary language code listed on the IMDb page
// of the item owning the file at path.
func (r *Resolver) OriginalLanguage(ctx context.Context, path string) (string, bool) {
	if r.scraper == nil {
		r.log.Warn("language lookup disabled")
		return "", false
	}

	item := r.parent(ctx, path)
	if item == nil {
		r.log.Warn("unable to get language for path", "path", path)
		return "", false
	}
	if item.IMDbID == "" {
		r.log.Warn("no IMDb ID to look up language", "path", path, "title", item.Title)
		return "", false
	}

	return r.scraper.PrimaryLanguage(ctx, item.IMDbID)
}
