package grpcserver

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/files-manager/gen/go/filesmanager/v1"
	"github.com/and161185/files-manager/internal/api"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
)

// Authenticator resolves session tokens. Implemented by service.AuthService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Identity, error)
}

type authPolicy int

const (
	authRequired authPolicy = iota
	authOptional            // anonymous allowed, a presented token must be valid
	authNone
)

var methodPolicy = map[string]authPolicy{
	pb.FilesManager_Register_FullMethodName:   authNone,
	pb.FilesManager_SignIn_FullMethodName:     authNone,
	pb.FilesManager_Status_FullMethodName:     authNone,
	pb.FilesManager_Stats_FullMethodName:      authNone,
	pb.FilesManager_GetNode_FullMethodName:    authOptional,
	pb.FilesManager_GetContent_FullMethodName: authOptional,
}

// policyFor defaults to authRequired for FilesManager methods and authNone
// for everything else registered on the server (health, reflection).
func policyFor(fullMethod string) authPolicy {
	if p, ok := methodPolicy[fullMethod]; ok {
		return p
	}
	if strings.HasPrefix(fullMethod, "/"+pb.FilesManager_ServiceDesc.ServiceName+"/") {
		return authRequired
	}
	return authNone
}

func tokenFromMD(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(api.TokenHeader) {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// AuthUnary resolves the x-token metadata into an identity stored in context.
func AuthUnary(auth Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		policy := policyFor(info.FullMethod)
		if policy == authNone {
			return next(ctx, req)
		}

		tok := tokenFromMD(ctx)
		if tok == "" {
			if policy == authOptional {
				return next(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		id, err := auth.Authenticate(ctx, tok)
		if err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				return nil, status.Error(codes.Unauthenticated, "invalid token")
			}
			return nil, toStatus(err)
		}
		return next(WithIdentity(ctx, id, tok), req)
	}
}
