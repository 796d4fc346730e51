package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/blob"
	"github.com/and161185/files-manager/internal/cache"
	"github.com/and161185/files-manager/internal/config"
	"github.com/and161185/files-manager/internal/limiter"
	"github.com/and161185/files-manager/internal/migrate"
	"github.com/and161185/files-manager/internal/repository"
	"github.com/and161185/files-manager/internal/repository/memory"
	"github.com/and161185/files-manager/internal/repository/postgres"
	"github.com/and161185/files-manager/internal/service"
	"github.com/and161185/files-manager/internal/session"
	"github.com/and161185/files-manager/internal/thumbnail"
)

// stores are the backing stores shared by serve and worker.
type stores struct {
	users   repository.UserRepository
	nodes   repository.NodeRepository
	jobs    repository.JobQueue
	db      service.Pinger
	limiter limiter.Limiter
	blobs   blob.Store

	closers []func()
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (_ *stores, err error) {
	s := &stores{}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if err := migrate.Up(ctx, cfg.Database.DSN, log); err != nil {
			return nil, err
		}
		db, err := postgres.New(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		s.closers = append(s.closers, db.Close)
		s.users = postgres.NewUserRepo(db)
		s.nodes = postgres.NewNodeRepo(db)
		s.jobs = postgres.NewJobQueue(db, cfg.Worker.MaxAttempts, cfg.Worker.Backoff)
		s.db = db
		s.limiter = limiter.Noop{}
		if cfg.Limiter.Enabled {
			s.limiter = limiter.NewPG(db.Pool, cfg.Limiter.Window, cfg.Limiter.MaxFails, cfg.Limiter.BlockFor)
		}
	case config.DriverMemory:
		log.Warn("memory store: data is lost on exit and sign-in is not rate limited")
		m := memory.New(memory.WithRetry(cfg.Worker.MaxAttempts, cfg.Worker.Backoff))
		s.users, s.nodes, s.jobs, s.db = m.Users(), m.Nodes(), m.Jobs(), m
		s.limiter = limiter.Noop{}
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	switch cfg.Storage.Backend {
	case config.BackendFS:
		s.blobs = blob.NewFS(cfg.Storage.Path)
	case config.BackendS3:
		b, err := blob.NewS3(ctx, cfg.Storage.S3.Blob())
		if err != nil {
			return nil, err
		}
		s.blobs = b
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return s, nil
}

// newWorker builds the derivative worker pool over st.
func newWorker(cfg *config.Config, st *stores, log *zap.Logger) *thumbnail.Worker {
	proc := thumbnail.NewProcessor(st.nodes, st.blobs, log, thumbnail.WithMaxPixels(cfg.Worker.MaxPixels))
	return thumbnail.NewWorker(st.jobs, proc, thumbnail.WorkerConfig{
		Workers:      cfg.Worker.Count,
		PollInterval: cfg.Worker.PollInterval,
		StaleAfter:   cfg.Worker.StaleAfter,
	}, log)
}

// openSessions opens the badger cache and the session store on top of it.
func openSessions(cfg *config.Config, log *zap.Logger) (*session.Store, func(), error) {
	c, err := cache.OpenBadger(cfg.Session.CacheDir, log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := c.Close(); err != nil {
			log.Warn("close cache", zap.Error(err))
		}
	}
	return session.NewStore(c, cfg.Session.TTL), closeFn, nil
}
