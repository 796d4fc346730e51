package api

import (
	"context"
	"encoding/base64"
	"testing"

	"google.golang.org/grpc/metadata"
)

func TestWithToken(t *testing.T) {
	t.Parallel()

	md, _ := metadata.FromOutgoingContext(WithToken(context.Background(), "tok"))
	if got := md.Get(TokenHeader); len(got) != 1 || got[0] != "tok" {
		t.Fatalf("x-token: %v", got)
	}
}

func TestWithBasicAuth(t *testing.T) {
	t.Parallel()

	md, _ := metadata.FromOutgoingContext(WithBasicAuth(context.Background(), "a@b.c", "p:w"))
	got := md.Get(AuthHeader)
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("a@b.c:p:w"))
	if len(got) != 1 || got[0] != want {
		t.Fatalf("authorization: %v", got)
	}
}
