// Package migrations carries the goose SQL schema, embedded so the binary
// migrates on startup without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
