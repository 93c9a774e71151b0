package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vmunix/arrpath/internal/config"
	"github.com/vmunix/arrpath/internal/history"
	"github.com/vmunix/arrpath/internal/library"
	"github.com/vmunix/arrpath/internal/metadata"
	"github.com/vmunix/arrpath/pkg/arr"
)

// app holds what one invocation needs. Everything derived from the backend
// is built on demand.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	kind   arr.Kind
	policy library.Policy
	client *arr.Client
	db     *sql.DB

	matcher *library.Matcher
}

// newApp loads configuration, applies flag overrides and sets up logging.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	kind, err := arr.ParseKind(cfg.Backend.Kind)
	if err != nil {
		return nil, err
	}
	policy, err := library.ParsePolicy(cfg.Match.Policy)
	if err != nil {
		return nil, err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	slog.SetDefault(log)

	a := &app{
		cfg:    cfg,
		log:    log,
		kind:   kind,
		policy: policy,
		client: arr.New(cfg.Backend.URL, cfg.Backend.APIKey,
			arr.WithTimeout(cfg.Backend.Timeout),
			arr.WithRateLimit(cfg.Backend.RateLimit),
			arr.WithLogger(log),
		),
	}

	if cfg.History.Path != "" {
		db, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		a.db = db
	}
	return a, nil
}

// loadConfig finds and loads the config file. With no file anywhere the
// defaults and environment are used.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.Discover()
		switch {
		case err == nil:
			path = p
		case !errors.Is(err, config.ErrNotFound):
			return nil, err
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if apiKey != "" {
		cfg.Backend.APIKey = apiKey
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// requireBackend fails fast when the backend is not configured.
func (a *app) requireBackend() error {
	if err := a.cfg.RequireBackend(); err != nil {
		return fmt.Errorf("%s: %w", a.kind, err)
	}
	return nil
}

func (a *app) indexer() *library.Indexer {
	return library.NewIndexer(a.client, a.kind, a.log)
}

// pathMatcher returns the session matcher; the catalog is fetched at most once.
func (a *app) pathMatcher() *library.Matcher {
	if a.matcher == nil {
		a.matcher = library.NewMatcher(a.indexer(), a.policy, a.log)
	}
	return a.matcher
}

func (a *app) resolver(ctx context.Context) *metadata.Resolver {
	var cache *metadata.LanguageCache
	if a.db != nil {
		cache = metadata.NewLanguageCache(a.db, a.cfg.Scrape.CacheTTL)
		if n, err := cache.Prune(ctx); err != nil {
			a.log.Warn("failed to prune language cache", "error", err)
		} else if n > 0 {
			a.log.Debug("pruned language cache", "removed", n)
		}
	}
	return metadata.NewResolver(a.pathMatcher(), metadata.NewScraper(a.client, a.cfg.Scrape.BaseURL, cache, a.log), a.log)
}

// historyStore returns nil when no database is configured.
func (a *app) historyStore() *history.Store {
	if a.db == nil {
		return nil
	}
	return history.NewStore(a.db)
}
