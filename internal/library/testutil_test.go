package library

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrpath/pkg/arr"
)

// logStore collects records from every logger derived from newTestLogger.
type logStore struct {
	mu      sync.Mutex
	records []slog.Record
}

type recordHandler struct {
	store *logStore
}

func (h recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.records = append(h.store.records, r.Clone())
	return nil
}

func (h recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordHandler) WithGroup(string) slog.Handler      { return h }

func newTestLogger() (*slog.Logger, *logStore) {
	store := &logStore{}
	return slog.New(recordHandler{store: store}), store
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// count returns the number of records at level.
func (s *logStore) count(level slog.Level) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

// attr returns the value of key on the first record with message msg.
func (s *logStore) attr(msg, key string) (slog.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Message != msg {
			continue
		}
		var found slog.Value
		ok := false
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				found, ok = a.Value, true
				return false
			}
			return true
		})
		return found, ok
	}
	return slog.Value{}, false
}

// fixture serves a Sonarr catalog from memory, round-tripping through JSON
// the way the real client does.
type fixture struct {
	t     *testing.T
	items []arr.LibraryItem
	files map[int64][]arr.FileRecord

	mu    sync.Mutex
	calls []string
}

func newFixture(t *testing.T, items []arr.LibraryItem, files map[int64][]arr.FileRecord) *fixture {
	t.Helper()
	return &fixture{t: t, items: items, files: files}
}

func (f *fixture) FetchJSON(_ context.Context, endpoint, query string, out any) bool {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint+"?"+query)
	f.mu.Unlock()

	var v any
	switch endpoint {
	case "series":
		v = f.items
	case "episodefile":
		id, err := strconv.ParseInt(strings.TrimPrefix(query, "seriesId="), 10, 64)
		require.NoError(f.t, err)
		files, ok := f.files[id]
		if !ok {
			return false
		}
		v = files
	default:
		return false
	}

	data, err := json.Marshal(v)
	require.NoError(f.t, err)
	require.NoError(f.t, json.Unmarshal(data, out))
	return true
}

func (f *fixture) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func rec(id int64, title, path string) arr.FileRecord {
	return arr.FileRecord{ID: id, Title: title, Path: path}
}

func ids(files ...*arr.FileRecord) []int64 {
	out := make([]int64, len(files))
	for i, f := range files {
		if f != nil {
			out[i] = f.ID
		}
	}
	return out
}
