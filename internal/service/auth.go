// Package service contains application services for accounts, the namespace and status.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/files-manager/internal/crypto"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/limiter"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/repository"
)

// SessionStore issues and resolves session tokens. Implemented by *session.Store.
type SessionStore interface {
	Issue(ctx context.Context, identity model.Identity) (model.Session, error)
	Resolve(ctx context.Context, token string) (model.Identity, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService defines account and session operations.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, email, password string) (*model.User, error)
	// SignIn applies rate-limiting, verifies credentials and issues a session.
	SignIn(ctx context.Context, email, password, peer string) (model.Session, error)
	// SignOut revokes a session token.
	SignOut(ctx context.Context, token string) error
	// Authenticate resolves a token to an identity.
	Authenticate(ctx context.Context, token string) (model.Identity, error)
	// Me returns the account behind identity.
	Me(ctx context.Context, identity model.Identity) (*model.User, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions SessionStore
	lim      limiter.Limiter
	log      *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, sessions SessionStore, lim limiter.Limiter, log *zap.Logger) *AuthServiceImpl {
	if lim == nil {
		lim = limiter.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{users: users, sessions: sessions, lim: lim, log: log}
}

// Register creates a new user record with a per-user salt.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.Validation("missing email")
	}
	if password == "" {
		return nil, errs.Validation("missing password")
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:      uid,
		Email:   email,
		PwdHash: pkgcrypto.HashPassword([]byte(password), salt),
		Salt:    salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn authenticates with rate limiting by (email, peer).
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password, peer string) (model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.Session{}, errs.ErrUnauthorized
	}
	ipHash := limiter.HashIP(peer)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.Session{}, err
	}
	if !allowed {
		return model.Session{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Session{}, err
	}
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.Salt, u.PwdHash) {
		blocked, _, ferr := s.lim.Failure(ctx, email, ipHash)
		if ferr != nil {
			s.log.Warn("record sign-in failure", zap.Error(ferr))
		}
		if blocked {
			s.log.Info("sign-in blocked", zap.String("email", email))
			return model.Session{}, errs.ErrRateLimited
		}
		// unknown email and wrong password look the same
		return model.Session{}, errs.ErrUnauthorized
	}

	if err := s.lim.Success(ctx, email, ipHash); err != nil {
		s.log.Warn("reset sign-in limiter", zap.Error(err))
	}
	return s.sessions.Issue(ctx, u.ID)
}

// SignOut revokes token. Unknown tokens are reported as Unauthorized.
func (s *AuthServiceImpl) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrUnauthorized
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}
	return nil
}

// Authenticate resolves token to an identity; missing, unknown and expired tokens are Unauthorized.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return uuid.Nil, errs.ErrUnauthorized
	}
	id, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return uuid.Nil, errs.ErrUnauthorized
		}
		return uuid.Nil, err
	}
	return id, nil
}

// Me returns the account for identity.
func (s *AuthServiceImpl) Me(ctx context.Context, identity model.Identity) (*model.User, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, identity)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrUnauthorized
	}
	return u, err
}
