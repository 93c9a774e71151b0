package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmunix/arrpath/pkg/arr"
)

// mockServer is a fake Sonarr with a fluent setup API. Every request must
// carry the expected API key.
type mockServer struct {
	t      *testing.T
	apiKey string
	items  []arr.LibraryItem
	files  map[int64][]arr.FileRecord
	queue  []arr.QueueEntry
	pages  map[string]string

	mu       sync.Mutex
	requests []string
	deleted  []string
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{
		t:      t,
		apiKey: "test-key",
		files:  make(map[int64][]arr.FileRecord),
		pages:  make(map[string]string),
	}
}

// Item adds a series and its episode files.
func (m *mockServer) Item(item arr.LibraryItem, files ...arr.FileRecord) *mockServer {
	m.items = append(m.items, item)
	m.files[item.ID] = files
	return m
}

// Queue sets the queue records.
func (m *mockServer) Queue(entries ...arr.QueueEntry) *mockServer {
	m.queue = entries
	return m
}

// Page serves html at path, outside the API.
func (m *mockServer) Page(path, html string) *mockServer {
	m.pages[path] = html
	return m
}

// Build creates the httptest.Server and closes it when the test ends.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests = append(m.requests, r.Method+" "+r.URL.Path)
		m.mu.Unlock()

		if page, ok := m.pages[r.URL.Path]; ok {
			_, _ = w.Write([]byte(page))
			return
		}

		assert.Equal(m.t, m.apiKey, r.URL.Query().Get("apikey"), "unexpected api key")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/series":
			respondJSON(m.t, w, m.items)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/episodefile":
			id, _ := strconv.ParseInt(r.URL.Query().Get("seriesId"), 10, 64)
			respondJSON(m.t, w, m.files[id])
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/queue":
			respondJSON(m.t, w, arr.QueuePage{Page: 1, PageSize: 9999, TotalRecords: len(m.queue), Records: m.queue})
		case r.Method == http.MethodDelete:
			assert.Equal(m.t, "true", r.URL.Query().Get("blocklist"))
			m.mu.Lock()
			m.deleted = append(m.deleted, r.URL.Path)
			m.mu.Unlock()
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

func (m *mockServer) deletedPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

func (m *mockServer) count(request string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.requests {
		if r == request {
			n++
		}
	}
	return n
}

// respondJSON writes a JSON response with proper content-type header.
func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

// fooShow is the single-series library used across command tests.
func fooShow() *arr.LibraryItem {
	return &arr.LibraryItem{ID: 1, Title: "Foo Show", IMDbID: "tt1", TVDbID: 100}
}

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs arrpath in an isolated environment with no config file.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ARRPATH_CONFIG", "")
	t.Setenv("ARRPATH_URL", "")
	t.Setenv("ARRPATH_API_KEY", "")

	configPath, jsonOutput, logLevel, backendURL, apiKey = "", false, "", "", ""
	blocklistExitCode, historyLimit, historyTitle = false, 20, ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code := run(args)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// backendArgs points a command at srv.
func backendArgs(srv *httptest.Server, args ...string) []string {
	return append(args, "--url", srv.URL, "--api-key", "test-key")
}
