// Package api holds the metadata conventions shared by the FilesManager
// server and its clients. Messages and stubs live in gen/go/filesmanager/v1.
package api

import (
	"context"
	"encoding/base64"

	"google.golang.org/grpc/metadata"
)

// Metadata keys.
const (
	TokenHeader = "x-token"
	AuthHeader  = "authorization"
)

// WithToken attaches a session token to outgoing calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, TokenHeader, token)
}

// WithBasicAuth attaches HTTP-style basic credentials, accepted by SignIn.
func WithBasicAuth(ctx context.Context, email, password string) context.Context {
	cred := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	return metadata.AppendToOutgoingContext(ctx, AuthHeader, "Basic "+cred)
}
