package config

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed default_config.toml
var defaultConfig []byte

// WriteDefault writes the commented example config to path, creating parent
// directories, with mode 0600. It fails if path already exists.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(defaultConfig); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
