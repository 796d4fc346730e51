// Package blob stores raw file bytes and their derivatives under opaque keys.
package blob

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// Store is durable byte storage. Keys are opaque to the rest of the system.
type Store interface {
	// NewKey returns a fresh, unused key.
	NewKey() string
	// Put writes data under key, replacing any previous content.
	Put(ctx context.Context, key string, data []byte) error
	// Get reads key; errs.ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
}

// DerivedKey is the location of the size variant of key.
func DerivedKey(key string, size int) string { return fmt.Sprintf("%s_%d", key, size) }

func newKey() string { return uuid.Must(uuid.NewV4()).String() }

func validKey(key string) error {
	if key == "" || key == "." || strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("blob: invalid key %q", key)
	}
	return nil
}
