package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/files-manager/migrations"
)

func TestEmbeddedMigrations_WellFormed(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for i, name := range names {
		require.Truef(t, strings.HasPrefix(name, "0000"), "unexpected name %s", name)
		require.Equal(t, byte('1'+i), name[4], "migrations must be numbered without gaps")

		b, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		body := string(b)
		require.Contains(t, body, "-- +goose Up", name)
		require.Contains(t, body, "-- +goose Down", name)
	}
}
