// Package migrations provides the embedded schema of the local database.
package migrations

import (
	_ "embed"
)

// InitialSQL creates the blocklist history and language cache tables.
// Every statement is idempotent.
//
//go:embed sql/001_initial.sql
var InitialSQL string
