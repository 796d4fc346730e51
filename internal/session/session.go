// Package session issues and resolves opaque session tokens backed by a TTL cache.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/files-manager/internal/cache"
	"github.com/and161185/files-manager/internal/crypto"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
)

// DefaultTTL is the lifetime of a session.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "auth_"

// Store is the single authority mapping tokens to identities.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for expiry tests.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// NewStore builds a Store. ttl <= 0 falls back to DefaultTTL.
func NewStore(c cache.Cache, ttl time.Duration, opts ...Option) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{cache: c, ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

type record struct {
	UserID    string `json:"uid"`
	ExpiresAt int64  `json:"exp"` // unix nanoseconds
}

// Issue creates a fresh session for identity.
func (s *Store) Issue(ctx context.Context, identity model.Identity) (model.Session, error) {
	if identity == uuid.Nil {
		return model.Session{}, errors.New("session: empty identity")
	}
	tok, err := crypto.NewToken()
	if err != nil {
		return model.Session{}, fmt.Errorf("session: token: %w", err)
	}
	exp := s.now().Add(s.ttl)
	b, err := json.Marshal(record{UserID: identity.String(), ExpiresAt: exp.UnixNano()})
	if err != nil {
		return model.Session{}, err
	}
	if err := s.cache.Set(ctx, keyPrefix+tok, b, s.ttl); err != nil {
		return model.Session{}, fmt.Errorf("session: store: %w", err)
	}
	return model.Session{Token: tok, Identity: identity, ExpiresAt: exp}, nil
}

// Resolve returns the identity behind token, or errs.ErrNotFound.
// Reads never extend the session.
func (s *Store) Resolve(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return uuid.Nil, errs.ErrNotFound
	}
	b, err := s.cache.Get(ctx, keyPrefix+token)
	if err != nil {
		return uuid.Nil, err
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return uuid.Nil, errs.ErrNotFound
	}
	if !s.now().Before(time.Unix(0, rec.ExpiresAt)) {
		return uuid.Nil, errs.ErrNotFound
	}
	id, err := uuid.FromString(rec.UserID)
	if err != nil {
		return uuid.Nil, errs.ErrNotFound
	}
	return id, nil
}

// Revoke deletes the session. Unknown and expired tokens yield errs.ErrNotFound.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if _, err := s.Resolve(ctx, token); err != nil {
		return err
	}
	return s.cache.Delete(ctx, keyPrefix+token)
}

// Alive reports cache liveness.
func (s *Store) Alive(ctx context.Context) bool { return s.cache.Alive(ctx) }
