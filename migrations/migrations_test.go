package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 5)

	for _, name := range files {
		raw, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "-- +goose Up", name)
		assert.Contains(t, string(raw), "-- +goose Down", name)
	}
}
