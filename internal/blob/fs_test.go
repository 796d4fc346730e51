package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/files-manager/internal/errs"
)

var _ Store = (*FS)(nil)

func TestFS_PutGet(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "files")
	s := NewFS(dir)
	ctx := context.Background()

	key := s.NewKey()
	require.NoError(t, s.Put(ctx, key, []byte("hello")))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	_, err = os.Stat(filepath.Join(dir, key))
	require.NoError(t, err, "file must live under the root directory")
}

func TestFS_DerivedKeyOverwrite(t *testing.T) {
	t.Parallel()

	s := NewFS(t.TempDir())
	ctx := context.Background()
	key := DerivedKey(s.NewKey(), 250)

	require.NoError(t, s.Put(ctx, key, []byte("v1")))
	require.NoError(t, s.Put(ctx, key, []byte("v2")))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	require.Len(t, entries, 1, "overwrite must not leave temp files behind")
}

func TestFS_Missing(t *testing.T) {
	t.Parallel()

	s := NewFS(t.TempDir())
	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFS_RejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	s := NewFS(t.TempDir())
	ctx := context.Background()
	for _, k := range []string{"", "../x", "a/b", `a\b`, ".."} {
		require.Error(t, s.Put(ctx, k, []byte("x")), "key %q", k)
		_, err := s.Get(ctx, k)
		require.ErrorIs(t, err, errs.ErrNotFound, "key %q", k)
	}
}

func TestDerivedKey(t *testing.T) {
	t.Parallel()
	require.Equal(t, "abc_100", DerivedKey("abc", 100))
}

func TestNewFS_DefaultDir(t *testing.T) {
	t.Parallel()
	require.Equal(t, DefaultDir, NewFS("").Root())
}
