package metadata

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/vmunix/arrpath/internal/library"
	"github.com/vmunix/arrpath/pkg/arr"
)

type logStore struct {
	mu       sync.Mutex
	messages []string
	levels   []slog.Level
}

type recordHandler struct {
	store *logStore
}

func (h recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.messages = append(h.store.messages, r.Message)
	h.store.levels = append(h.store.levels, r.Level)
	return nil
}

func (h recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordHandler) WithGroup(string) slog.Handler      { return h }

func newTestLogger() (*slog.Logger, *logStore) {
	store := &logStore{}
	return slog.New(recordHandler{store: store}), store
}

// warnings returns the messages logged at warn level, in order.
func (s *logStore) warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for i, m := range s.messages {
		if s.levels[i] == slog.LevelWarn {
			out = append(out, m)
		}
	}
	return out
}

// stubMatcher returns a fixed record for known paths.
type stubMatcher map[string]*arr.FileRecord

func (m stubMatcher) FindByPath(_ context.Context, path string, _ []arr.FileRecord) *arr.FileRecord {
	return m[path]
}

// stubFetcher serves canned pages and records requested URLs.
type stubFetcher struct {
	pages map[string]string
	urls  []string
}

func (f *stubFetcher) FetchString(_ context.Context, rawURL string) (string, bool) {
	f.urls = append(f.urls, rawURL)
	page, ok := f.pages[rawURL]
	return page, ok
}

// newSonarrServer serves /api/v3/series and /api/v3/episodefile from memory.
func newSonarrServer(t *testing.T, items []arr.LibraryItem, files map[string][]arr.FileRecord) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/series", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(items)
	})
	mux.HandleFunc("/api/v3/episodefile", func(w http.ResponseWriter, r *http.Request) {
		f, ok := files[r.URL.Query().Get("seriesId")]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(f)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newLibraryMatcher wires a real matcher against srv.
func newLibraryMatcher(srv *httptest.Server, log *slog.Logger) *library.Matcher {
	client := arr.New(srv.URL, "k", arr.WithLogger(log))
	return library.NewMatcher(library.NewIndexer(client, arr.KindSonarr, log), library.PolicyLongest, log)
}

// The languages row must sit on one line; the row pattern does not span newlines.
const languagePage = `<html><ul>
<li role="presentation" data-testid="title-details-languages"><span>Languages</span>` +
	`<a href="/search/title/?title_type=feature&primary_language=ja&ref_=tt_dt_ln">Japanese</a>` +
	`<a href="/search/title/?title_type=feature&primary_language=en&ref_=tt_dt_ln">English</a></li>
<li data-testid="title-details-filming">Tokyo</li>
</ul></html>`
