package main

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/files-manager/gen/go/filesmanager/v1"
	grpcserver "github.com/and161185/files-manager/internal/server/grpc"
	"github.com/and161185/files-manager/internal/service"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		dev     bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC API (and embedded workers when worker.count > 0)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("dev") {
				a.cfg.Server.Dev = dev
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Worker.Count = workers
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().BoolVar(&dev, "dev", false, "enable server reflection (dev only)")
	cmd.Flags().IntVar(&workers, "workers", 0, "embedded derivative workers (0 disables)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg, log := a.cfg, a.log
	log.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Server.Addr),
	)

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	sessions, closeSessions, err := openSessions(cfg, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	authSvc := service.NewAuthService(st.users, sessions, st.limiter, log)
	nsSvc := service.NewNamespaceService(st.nodes, st.blobs, st.jobs, log)
	statusSvc := service.NewStatusService(st.db, sessions, st.users, st.nodes)

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(log),
			grpcserver.AuthUnary(authSvc),
			grpcserver.LoggingUnary(log),
		),
	}
	if cfg.Server.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLSCert, cfg.Server.TLSKey)
		if err != nil {
			return err
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)
	pb.RegisterFilesManagerServer(s, grpcserver.New(authSvc, nsSvc, statusSvc, log))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Server.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", cfg.Server.TLSCert != ""))
		return s.Serve(lis)
	})
	if cfg.Worker.Count > 0 {
		w := newWorker(cfg, st, log)
		g.Go(func() error { return w.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			s.Stop()
		}
		return nil
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
