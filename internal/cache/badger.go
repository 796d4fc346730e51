package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/errs"
)

// Badger implements Cache on top of an embedded badger database.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens a badger cache in dir. An empty dir keeps everything in memory.
// A nil log discards badger's own output.
func OpenBadger(dir string, log *zap.Logger) (*Badger, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := badger.DefaultOptions(dir).WithLogger(zapBadgerLogger{log.Sugar()})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

// NewBadger wraps an already opened database.
func NewBadger(db *badger.DB) *Badger { return &Badger{db: db} }

// Set writes key with the given ttl.
func (b *Badger) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	return b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), value)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
}

// Get reads key.
func (b *Badger) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.ErrNotFound
	}
	return out, err
}

// Delete removes key, reporting whether it existed.
func (b *Badger) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err != nil {
			return err
		}
		return txn.Delete([]byte(key))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errs.ErrNotFound
	}
	return err
}

// Alive reports whether the database is open.
func (b *Badger) Alive(context.Context) bool { return !b.db.IsClosed() }

// Close closes the underlying database.
func (b *Badger) Close() error { return b.db.Close() }

// zapBadgerLogger routes badger's internal logging into zap.
type zapBadgerLogger struct{ s *zap.SugaredLogger }

func (l zapBadgerLogger) Errorf(f string, v ...any)   { l.s.Errorf(f, v...) }
func (l zapBadgerLogger) Warningf(f string, v ...any) { l.s.Warnf(f, v...) }
func (l zapBadgerLogger) Infof(f string, v ...any)    { l.s.Debugf(f, v...) }
func (l zapBadgerLogger) Debugf(f string, v ...any)   { l.s.Debugf(f, v...) }
