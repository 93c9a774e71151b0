package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DefaultLanguageTTL is how long a scraped language stays fresh.
const DefaultLanguageTTL = 30 * 24 * time.Hour

// LanguageCache keeps scraped primary languages keyed by IMDb id in the
// language_cache table of the local database.
type LanguageCache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewLanguageCache creates a cache. A non-positive ttl selects DefaultLanguageTTL.
func NewLanguageCache(db *sql.DB, ttl time.Duration) *LanguageCache {
	if ttl <= 0 {
		ttl = DefaultLanguageTTL
	}
	return &LanguageCache{db: db, ttl: ttl}
}

// Get returns the cached language for imdbID.
// Missing and expired entries both report ok=false.
func (c *LanguageCache) Get(ctx context.Context, imdbID string) (string, bool) {
	var lang string
	var expiresAt time.Time

	err := c.db.QueryRowContext(ctx,
		"SELECT language, expires_at FROM language_cache WHERE imdb_id = ?", imdbID,
	).Scan(&lang, &expiresAt)
	if err != nil || time.Now().After(expiresAt) {
		return "", false
	}
	return lang, true
}

// Set stores the language for imdbID, replacing any previous entry.
func (c *LanguageCache) Set(ctx context.Context, imdbID, lang string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO language_cache (imdb_id, language, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(imdb_id) DO UPDATE SET language = excluded.language, expires_at = excluded.expires_at`,
		imdbID, lang, time.Now().Add(c.ttl),
	)
	if err != nil {
		return fmt.Errorf("cache language: %w", err)
	}
	return nil
}

// Prune removes expired entries and returns how many were removed.
func (c *LanguageCache) Prune(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM language_cache WHERE expires_at < ?", time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("prune language cache: %w", err)
	}
	return result.RowsAffected()
}
