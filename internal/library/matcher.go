package library

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vmunix/arrpath/pkg/arr"
	"golang.org/x/sync/singleflight"
)

// suggestions is the number of closest titles attached to a miss.
const suggestions = 3

// Matcher resolves paths to file records for one session. The catalog is
// fetched and indexed on first use and reused until Reset.
type Matcher struct {
	indexer *Indexer
	policy  Policy
	log     *slog.Logger

	group singleflight.Group
	mu    sync.Mutex
	index *Index
}

// NewMatcher creates a matcher backed by indexer.
func NewMatcher(indexer *Indexer, policy Policy, log *slog.Logger) *Matcher {
	if log == nil {
		log = slog.Default()
	}
	if policy == "" {
		policy = PolicyLongest
	}
	return &Matcher{
		indexer: indexer,
		policy:  policy,
		log:     log.With("component", "matcher"),
	}
}

// Policy returns the tie-break policy in use.
func (m *Matcher) Policy() Policy {
	return m.policy
}

// Index returns the session index, building it on first call.
// Concurrent first calls share a single catalog fetch.
func (m *Matcher) Index(ctx context.Context) *Index {
	m.mu.Lock()
	ix := m.index
	m.mu.Unlock()
	if ix != nil {
		return ix
	}

	v, _, _ := m.group.Do("index", func() (any, error) {
		m.mu.Lock()
		if m.index != nil {
			ix := m.index
			m.mu.Unlock()
			return ix, nil
		}
		m.mu.Unlock()

		ix := NewIndex(m.indexer.AllFiles(ctx), m.policy)

		m.mu.Lock()
		m.index = ix
		m.mu.Unlock()
		return ix, nil
	})
	return v.(*Index)
}

// Reset drops the session index so the next lookup refetches the catalog.
func (m *Matcher) Reset() {
	m.mu.Lock()
	m.index = nil
	m.mu.Unlock()
}

// FindByPath returns the record whose title occurs in path, chosen by the
// matcher's policy. When files is nil the session index is used.
// An empty path or a miss logs one warning and returns nil.
func (m *Matcher) FindByPath(ctx context.Context, path string, files []arr.FileRecord) *arr.FileRecord {
	if path == "" {
		m.log.Warn("no path passed in to find file record")
		return nil
	}

	var ix *Index
	if files != nil {
		ix = NewIndex(files, m.policy)
	} else {
		ix = m.Index(ctx)
	}

	if f := ix.Lookup(path); f != nil {
		m.log.Info("found file record", "id", f.ID, "title", f.Title)
		return f
	}

	m.log.Warn("unable to find file record for path", "path", path, "closest", Suggest(path, ix.Files(), suggestions))
	return nil
}
