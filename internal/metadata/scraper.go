package metadata

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
)

// DefaultScrapeURL is the site whose title pages list languages.
const DefaultScrapeURL = "https://www.imdb.com"

// The page contract is fragile: the languages row is an <li> tagged
// title-details-languages, and each language links with primary_language=<code>&.
var (
	languagesRow    = regexp.MustCompile(`title-details-languages(.*?)</li>`)
	primaryLanguage = regexp.MustCompile(`primary_language=(\w+)&`)
)

// PageFetcher fetches a page as text. *arr.Client satisfies it.
type PageFetcher interface {
	FetchString(ctx context.Context, rawURL string) (string, bool)
}

// Scraper extracts the primary language from a title page.
type Scraper struct {
	fetcher PageFetcher
	baseURL string
	cache   *LanguageCache
	log     *slog.Logger
}

// NewScraper creates a scraper. An empty baseURL selects DefaultScrapeURL.
// cache may be nil, in which case every lookup fetches the page.
func NewScraper(fetcher PageFetcher, baseURL string, cache *LanguageCache, log *slog.Logger) *Scraper {
	if log == nil {
		log = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultScrapeURL
	}
	return &Scraper{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cache:   cache,
		log:     log.With("component", "scraper"),
	}
}

// TitleURL returns the page URL for an IMDb id.
func (s *Scraper) TitleURL(imdbID string) string {
	return s.baseURL + "/title/" + url.PathEscape(imdbID) + "/"
}

// PrimaryLanguage fetches the title page and returns its primary language
// code. Any fetch or parse failure logs a warning and returns ok=false.
func (s *Scraper) PrimaryLanguage(ctx context.Context, imdbID string) (string, bool) {
	if s.cache != nil {
		if lang, ok := s.cache.Get(ctx, imdbID); ok {
			s.log.Debug("language cache hit", "imdb_id", imdbID, "language", lang)
			return lang, true
		}
	}

	html, ok := s.fetcher.FetchString(ctx, s.TitleURL(imdbID))
	if !ok {
		s.log.Warn("failed to fetch title page", "imdb_id", imdbID)
		return "", false
	}

	lang, ok := s.parse(imdbID, html)
	if ok && s.cache != nil {
		if err := s.cache.Set(ctx, imdbID, lang); err != nil {
			s.log.Warn("failed to cache language", "imdb_id", imdbID, "error", err)
		}
	}
	return lang, ok
}

func (s *Scraper) parse(imdbID, html string) (string, bool) {
	row := languagesRow.FindStringSubmatch(html)
	if row == nil {
		s.log.Warn("failed to lookup IMDb language", "imdb_id", imdbID)
		return "", false
	}

	lang := primaryLanguage.FindStringSubmatch(row[1])
	if lang == nil {
		s.log.Warn("failed to lookup IMDb primary language", "imdb_id", imdbID)
		return "", false
	}
	return lang[1], true
}
