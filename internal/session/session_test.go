package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/cache"
	"github.com/and161185/files-manager/internal/errs"
)

type mapCache struct {
	mu     sync.Mutex
	m      map[string][]byte
	ttls   map[string]time.Duration
	setErr error
}

var _ cache.Cache = (*mapCache)(nil)

func newMapCache() *mapCache {
	return &mapCache{m: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Set(_ context.Context, k string, v []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[k] = v
	c.ttls[k] = ttl
	return nil
}
func (c *mapCache) Get(_ context.Context, k string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[k]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return v, nil
}
func (c *mapCache) Delete(_ context.Context, k string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[k]; !ok {
		return errs.ErrNotFound
	}
	delete(c.m, k)
	return nil
}
func (c *mapCache) Alive(context.Context) bool { return true }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestIssueResolve_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newMapCache()
	s := NewStore(c, 0)
	id := uuid.Must(uuid.NewV4())

	sess, err := s.Issue(context.Background(), id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if sess.Token == "" || sess.Identity != id {
		t.Fatalf("bad session: %+v", sess)
	}
	if ttl := c.ttls["auth_"+sess.Token]; ttl != DefaultTTL {
		t.Fatalf("ttl=%v, want %v", ttl, DefaultTTL)
	}

	got, err := s.Resolve(context.Background(), sess.Token)
	if err != nil || got != id {
		t.Fatalf("Resolve: got=%s err=%v", got, err)
	}
}

func TestResolve_AfterTTL_NotFound(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(newMapCache(), DefaultTTL, WithClock(clk.Now))
	id := uuid.Must(uuid.NewV4())

	sess, err := s.Issue(context.Background(), id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	clk.Advance(DefaultTTL - time.Second)
	if _, err := s.Resolve(context.Background(), sess.Token); err != nil {
		t.Fatalf("still valid before expiry: %v", err)
	}

	clk.Advance(time.Second)
	if _, err := s.Resolve(context.Background(), sess.Token); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound after ttl, got %v", err)
	}
}

func TestResolve_UnknownAndEmpty(t *testing.T) {
	t.Parallel()

	s := NewStore(newMapCache(), time.Minute)
	for _, tok := range []string{"", "nope"} {
		if _, err := s.Resolve(context.Background(), tok); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("token %q: want ErrNotFound, got %v", tok, err)
		}
	}
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	s := NewStore(newMapCache(), time.Minute)
	id := uuid.Must(uuid.NewV4())
	sess, _ := s.Issue(context.Background(), id)

	if err := s.Revoke(context.Background(), sess.Token); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := s.Resolve(context.Background(), sess.Token); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("resolve after revoke: %v", err)
	}
	if err := s.Revoke(context.Background(), sess.Token); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second revoke: want ErrNotFound, got %v", err)
	}
}

func TestIssue_MultipleSessionsPerIdentity(t *testing.T) {
	t.Parallel()

	s := NewStore(newMapCache(), time.Minute)
	id := uuid.Must(uuid.NewV4())
	a, _ := s.Issue(context.Background(), id)
	b, _ := s.Issue(context.Background(), id)
	if a.Token == b.Token {
		t.Fatalf("tokens must differ")
	}
	_ = s.Revoke(context.Background(), a.Token)
	if got, err := s.Resolve(context.Background(), b.Token); err != nil || got != id {
		t.Fatalf("other session must survive: %v", err)
	}
}

func TestIssue_Errors(t *testing.T) {
	t.Parallel()

	c := newMapCache()
	s := NewStore(c, time.Minute)
	if _, err := s.Issue(context.Background(), uuid.Nil); err == nil {
		t.Fatalf("want error for nil identity")
	}
	c.setErr = errors.New("cache down")
	if _, err := s.Issue(context.Background(), uuid.Must(uuid.NewV4())); err == nil {
		t.Fatalf("want propagated cache error")
	}
}

func TestStore_WithBadger(t *testing.T) {
	t.Parallel()

	b, err := cache.OpenBadger("", zap.NewNop())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	defer b.Close()

	s := NewStore(b, time.Hour)
	id := uuid.Must(uuid.NewV4())
	sess, err := s.Issue(context.Background(), id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got, err := s.Resolve(context.Background(), sess.Token); err != nil || got != id {
		t.Fatalf("Resolve: %v", err)
	}
	if !s.Alive(context.Background()) {
		t.Fatalf("badger store must be alive")
	}
}
