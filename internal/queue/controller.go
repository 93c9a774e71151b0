// Package queue blocklists backend queue entries that match a path.
package queue

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/arrpath/pkg/arr"
)

//go:generate mockgen -source=controller.go -destination=mocks/mock_backend.go -package=mocks

// queueEndpoint asks for every entry in a single page.
const queueEndpoint = "queue?pageSize=9999"

// Backend is the subset of the API client the controller needs.
type Backend interface {
	FetchJSON(ctx context.Context, endpoint, query string, out any) bool
	DeleteJSON(ctx context.Context, endpoint string) (int, error)
}

// Recorder receives each queue entry the controller removed.
type Recorder interface {
	RecordBlocklist(ctx context.Context, entry arr.QueueEntry, path string) error
}

// Controller removes and blocklists queue entries whose title appears in a path.
type Controller struct {
	backend  Backend
	recorder Recorder
	log      *slog.Logger
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	backend    Backend
	recorder   Recorder
	log        *slog.Logger
	clientOpts []arr.Option
}

// WithBackend replaces the API client built from the URL and key.
func WithBackend(b Backend) Option {
	return func(o *controllerOptions) {
		o.backend = b
	}
}

// WithRecorder records every removed entry.
func WithRecorder(r Recorder) Option {
	return func(o *controllerOptions) {
		o.recorder = r
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *controllerOptions) {
		o.log = log
	}
}

// WithClientOptions passes options to the API client the controller builds.
func WithClientOptions(opts ...arr.Option) Option {
	return func(o *controllerOptions) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// NewController creates a controller for the backend at baseURL.
// A missing URL or key is logged and returned as ErrMissingCredentials;
// callers that need an integer status report StatusInvalid.
func NewController(baseURL, apiKey string, opts ...Option) (*Controller, error) {
	o := controllerOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With("component", "queue")

	if baseURL == "" || apiKey == "" {
		log.Error("backend url or api key not set")
		return nil, ErrMissingCredentials
	}

	backend := o.backend
	if backend == nil {
		clientOpts := append([]arr.Option{arr.WithLogger(o.log)}, o.clientOpts...)
		backend = arr.New(baseURL, apiKey, clientOpts...)
	}

	return &Controller{
		backend:  backend,
		recorder: o.recorder,
		log:      log,
	}, nil
}

// Entries returns the current queue.
func (c *Controller) Entries(ctx context.Context) ([]arr.QueueEntry, bool) {
	var page arr.QueuePage
	if !c.backend.FetchJSON(ctx, queueEndpoint, "", &page) {
		return nil, false
	}
	return page.Records, true
}

// Check deletes and blocklists every queue entry whose title is contained in
// path. The comparison is case-sensitive. Delete failures are logged and
// left out of the history but do not change the result.
func (c *Controller) Check(ctx context.Context, path string) Status {
	entries, ok := c.Entries(ctx)
	if !ok {
		return StatusNotFound
	}

	found := false
	for _, e := range entries {
		if e.Title == "" || !strings.Contains(path, e.Title) {
			continue
		}
		found = true
		c.remove(ctx, e, path)
	}

	if found {
		return StatusBlocklisted
	}
	c.log.Info("no queue entry matches path", "path", path, "entries", len(entries))
	return StatusNotFound
}

func (c *Controller) remove(ctx context.Context, e arr.QueueEntry, path string) {
	c.log.Info("Removing item", "title", e.Title, "download_client", e.DownloadClient)

	status, err := c.backend.DeleteJSON(ctx, "queue/"+strconv.FormatInt(e.ID, 10)+"?blocklist=true")
	switch {
	case err != nil:
		c.log.Warn("failed to remove queue item", "id", e.ID, "title", e.Title, "error", err)
		return
	case status >= http.StatusMultipleChoices:
		c.log.Warn("failed to remove queue item", "id", e.ID, "title", e.Title, "status", status)
		return
	}

	if c.recorder != nil {
		if err := c.recorder.RecordBlocklist(ctx, e, path); err != nil {
			c.log.Warn("failed to record blocklist", "id", e.ID, "error", err)
		}
	}
}
