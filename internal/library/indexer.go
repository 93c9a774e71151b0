// Package library flattens a backend catalog into file records and resolves
// filesystem paths to those records.
package library

import (
	"context"
	"log/slog"

	"github.com/vmunix/arrpath/pkg/arr"
)

//go:generate mockgen -source=indexer.go -destination=mocks/mock_catalog.go -package=mocks

// Catalog fetches decoded JSON from the backend. *arr.Client satisfies it.
type Catalog interface {
	FetchJSON(ctx context.Context, endpoint, query string, out any) bool
}

// Indexer enumerates library items and their file records.
type Indexer struct {
	catalog Catalog
	kind    arr.Kind
	log     *slog.Logger
}

// NewIndexer creates an indexer for a backend of the given kind.
func NewIndexer(catalog Catalog, kind arr.Kind, log *slog.Logger) *Indexer {
	if log == nil {
		log = slog.Default()
	}
	if kind == "" {
		kind = arr.KindSonarr
	}
	return &Indexer{
		catalog: catalog,
		kind:    kind,
		log:     log.With("component", "indexer"),
	}
}

// Items returns every library item. An empty or failed fetch yields an empty list.
func (x *Indexer) Items(ctx context.Context) []arr.LibraryItem {
	var items []arr.LibraryItem
	if !x.catalog.FetchJSON(ctx, x.kind.ItemsEndpoint(), "", &items) || len(items) == 0 {
		x.log.Warn("no items found", "kind", x.kind)
		return []arr.LibraryItem{}
	}
	return items
}

// FilesForItem returns the file records scoped to one item.
// An empty or failed fetch yields an empty list.
func (x *Indexer) FilesForItem(ctx context.Context, item arr.LibraryItem) []arr.FileRecord {
	var files []arr.FileRecord
	query := x.kind.ItemParam() + "=" + formatID(item.ID)
	if !x.catalog.FetchJSON(ctx, x.kind.FilesEndpoint(), query, &files) || len(files) == 0 {
		x.log.Warn("no files in item", "item_id", item.ID, "title", item.Title)
		return []arr.FileRecord{}
	}
	return files
}

// AllFiles fetches the files of every item, one item at a time, and returns
// them in item order with Parent pointing at the owning item.
// Files without a title take the parent's title as their matching key.
func (x *Indexer) AllFiles(ctx context.Context) []arr.FileRecord {
	items := x.Items(ctx)

	files := make([]arr.FileRecord, 0, len(items))
	for i := range items {
		parent := &items[i]
		for _, f := range x.FilesForItem(ctx, *parent) {
			f.Parent = parent
			if f.Title == "" {
				f.Title = parent.Title
			}
			files = append(files, f)
		}
	}

	x.log.Info("indexed library files", "kind", x.kind, "items", len(items), "files", len(files))
	return files
}
