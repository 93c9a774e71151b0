// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables that fill backend settings the file leaves blank.
const (
	EnvURL    = "ARRPATH_URL"
	EnvAPIKey = "ARRPATH_API_KEY"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Backend BackendConfig `toml:"backend"`
	Match   MatchConfig   `toml:"match"`
	Scrape  ScrapeConfig  `toml:"scrape"`
	History HistoryConfig `toml:"history"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// BackendConfig describes the Sonarr or Radarr instance.
type BackendConfig struct {
	Kind      string        `toml:"kind"`
	URL       string        `toml:"url"`
	APIKey    string        `toml:"api_key"`
	Timeout   time.Duration `toml:"timeout"`
	RateLimit float64       `toml:"rate_limit"` // requests per second, 0 = unlimited
}

type MatchConfig struct {
	Policy string `toml:"policy"`
}

type ScrapeConfig struct {
	BaseURL  string        `toml:"base_url"`
	CacheTTL time.Duration `toml:"cache_ttl"`
}

// HistoryConfig locates the local database. An empty path disables it.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// Load reads, parses and validates the configuration file.
// Problems are reported together as an *Error.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Backend.Kind == "" {
		c.Backend.Kind = "sonarr"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 30 * time.Second
	}
	if c.Match.Policy == "" {
		c.Match.Policy = "longest"
	}
	if c.Scrape.BaseURL == "" {
		c.Scrape.BaseURL = "https://www.imdb.com"
	}
	if c.Scrape.CacheTTL == 0 {
		c.Scrape.CacheTTL = 30 * 24 * time.Hour
	}
}

func (c *Config) applyEnv() {
	if c.Backend.URL == "" {
		c.Backend.URL = os.Getenv(EnvURL)
	}
	if c.Backend.APIKey == "" {
		c.Backend.APIKey = os.Getenv(EnvAPIKey)
	}
}

// RequireBackend reports ErrMissingBackend when the URL or API key is unset.
func (c *Config) RequireBackend() error {
	if c.Backend.URL == "" || c.Backend.APIKey == "" {
		return ErrMissingBackend
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unset variables are left in place and returned in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		if !seen[varName] {
			seen[varName] = true
			missing = append(missing, varName)
		}
		return match
	})
	return result, missing
}
