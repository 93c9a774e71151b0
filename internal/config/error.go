package config

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates no config file exists in the search path.
	ErrNotFound = errors.New("config not found")

	// ErrMissingBackend indicates the backend URL or API key is unset.
	ErrMissingBackend = errors.New("backend url and api_key are required (set [backend] or " + EnvURL + "/" + EnvAPIKey + ")")
)

// Error collects everything wrong with one config file so it can be
// reported in a single pass.
type Error struct {
	Path    string
	Missing []string // ${VAR} references with no value in the environment
	Errors  []string // validation messages
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	line := func(s string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s)
	}

	if e.Path != "" {
		line("config " + e.Path + ":")
	}
	if len(e.Missing) > 0 {
		line("missing environment variables: " + strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		line("validation failed:")
		for _, msg := range e.Errors {
			line("  - " + msg)
		}
	}
	return b.String()
}

// HasErrors reports whether anything was collected.
func (e *Error) HasErrors() bool {
	return len(e.Missing)+len(e.Errors) > 0
}
