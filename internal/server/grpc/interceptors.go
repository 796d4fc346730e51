package grpcserver

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// asStatus returns err unchanged when it already carries a gRPC status and
// maps it through toStatus otherwise.
func asStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return toStatus(err)
}

// LoggingUnary logs one line per call. It runs after AuthUnary so the
// resolved identity is part of the entry. Server-side failures log at error level.
func LoggingUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(asStatus(err))

		user := zap.Skip()
		if id, ok := IdentityFromCtx(ctx); ok {
			user = zap.Stringer("user", id)
		}

		// metadata only, never payloads
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("dur", time.Since(start)),
			zap.String("peer", remoteHost(ctx)),
			user,
		}
		switch code {
		case codes.Internal, codes.Unknown, codes.DataLoss:
			log.Error("grpc", fields...)
		default:
			log.Info("grpc", fields...)
		}
		return resp, err
	}
}

// RecoverUnary turns panics into codes.Internal and makes sure no bare
// error reaches the client: anything without a status goes through toStatus.
func RecoverUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("method", info.FullMethod),
				)
				resp, err = nil, toStatus(fmt.Errorf("panic in %s: %v", info.FullMethod, r))
			}
		}()
		resp, err = next(ctx, req)
		return resp, asStatus(err)
	}
}
