package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
)

func TestWithIdentity_And_IdentityFromCtx(t *testing.T) {
	t.Parallel()

	if id, ok := IdentityFromCtx(context.Background()); ok || id != uuid.Nil {
		t.Fatalf("expected no identity in empty ctx")
	}
	if tok := TokenFromCtx(context.Background()); tok != "" {
		t.Fatalf("expected no token in empty ctx, got %q", tok)
	}

	want := uuid.Must(uuid.NewV4())
	ctx := WithIdentity(context.Background(), want, "tok")

	got, ok := IdentityFromCtx(ctx)
	if !ok {
		t.Fatalf("expected identity in ctx")
	}
	if got != want {
		t.Fatalf("mismatch: got %s, want %s", got, want)
	}
	if tok := TokenFromCtx(ctx); tok != "tok" {
		t.Fatalf("token mismatch: %q", tok)
	}

	bad := context.WithValue(context.Background(), identityKey, "not-uuid")
	if id, ok := IdentityFromCtx(bad); ok || id != uuid.Nil {
		t.Fatalf("expected miss on wrong typed value")
	}
	if _, ok := IdentityFromCtx(WithIdentity(context.Background(), uuid.Nil, "")); ok {
		t.Fatalf("nil identity is anonymous")
	}
}
