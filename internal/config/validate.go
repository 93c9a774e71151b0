package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validKinds = map[string]bool{
	"sonarr": true, "radarr": true,
}

var validPolicies = map[string]bool{
	"longest": true, "first": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
// Backend credentials are not required here; commands that talk to the
// backend call RequireBackend.
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if !validKinds[c.Backend.Kind] {
		errs = append(errs, fmt.Sprintf("backend.kind: must be one of sonarr, radarr; got %q", c.Backend.Kind))
	}
	if c.Backend.URL != "" {
		if u, err := url.Parse(c.Backend.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("backend.url: must be an absolute URL, got %q", c.Backend.URL))
		}
	}
	if c.Backend.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("backend.timeout: must not be negative, got %s", c.Backend.Timeout))
	}
	if c.Backend.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("backend.rate_limit: must not be negative, got %g", c.Backend.RateLimit))
	}

	if !validPolicies[c.Match.Policy] {
		errs = append(errs, fmt.Sprintf("match.policy: must be one of longest, first; got %q", c.Match.Policy))
	}

	if u, err := url.Parse(c.Scrape.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("scrape.base_url: must be an absolute URL, got %q", c.Scrape.BaseURL))
	}
	if c.Scrape.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("scrape.cache_ttl: must not be negative, got %s", c.Scrape.CacheTTL))
	}

	return errs
}
