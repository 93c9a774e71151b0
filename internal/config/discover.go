package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "ARRPATH_CONFIG"

const systemPath = "/etc/arrpath/config.toml"

// DefaultPath is $XDG_CONFIG_HOME/arrpath/config.toml, falling back to
// ~/.config and finally the working directory.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "arrpath", "config.toml")
}

// SearchPaths lists the locations Discover tries when EnvConfig is unset,
// in priority order.
func SearchPaths() []string {
	return []string{"./config.toml", DefaultPath(), systemPath}
}

// Discover returns the config file to load. An explicit EnvConfig must
// exist; otherwise the first existing entry of SearchPaths wins. When none
// exists the error wraps ErrNotFound.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, p, err)
		}
		return p, nil
	}

	candidates := SearchPaths()
	for _, p := range candidates {
		info, err := os.Stat(p)
		switch {
		case err == nil && !info.IsDir():
			return p, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(candidates, ", "))
}
