package grpcserver

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/files-manager/internal/model"
)

type ctxKey string

const (
	identityKey ctxKey = "fm.identity"
	tokenKey    ctxKey = "fm.token"
)

// WithIdentity stores the authenticated identity and its session token in context.
func WithIdentity(ctx context.Context, id model.Identity, token string) context.Context {
	ctx = context.WithValue(ctx, identityKey, id)
	return context.WithValue(ctx, tokenKey, token)
}

// IdentityFromCtx fetches the identity from context. Anonymous callers get uuid.Nil, false.
func IdentityFromCtx(ctx context.Context) (model.Identity, bool) {
	v := ctx.Value(identityKey)
	if v == nil {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// TokenFromCtx returns the session token the identity was resolved from.
func TokenFromCtx(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}
