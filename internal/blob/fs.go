package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/and161185/files-manager/internal/errs"
)

// DefaultDir is where bytes live when nothing else is configured.
const DefaultDir = "/tmp/files_manager"

// FS keeps blobs as flat files under a root directory.
type FS struct {
	root string
}

// NewFS returns a filesystem store rooted at dir. The directory is created lazily.
func NewFS(dir string) *FS {
	if dir == "" {
		dir = DefaultDir
	}
	return &FS{root: dir}
}

// Root returns the storage directory.
func (s *FS) Root() string { return s.root }

// NewKey returns a random file name.
func (s *FS) NewKey() string { return newKey() }

// Put writes via a temp file and rename so readers never see partial content.
func (s *FS) Put(_ context.Context, key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o750); err != nil {
		return fmt.Errorf("blob: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("blob: temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("blob: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("blob: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.root, key)); err != nil {
		return fmt.Errorf("blob: rename: %w", err)
	}
	return nil
}

// Get reads the file for key.
func (s *FS) Get(_ context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, errs.ErrNotFound
	}
	b, err := os.ReadFile(filepath.Join(s.root, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob: read: %w", err)
	}
	return b, nil
}
