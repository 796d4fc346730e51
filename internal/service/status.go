package service

import (
	"context"
	"fmt"

	"github.com/and161185/files-manager/internal/repository"
)

// Pinger reports reachability of the persistent store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AliveChecker reports cache liveness.
type AliveChecker interface {
	Alive(ctx context.Context) bool
}

// StatusReport is the liveness of backing stores.
type StatusReport struct {
	DB    bool
	Cache bool
}

// StatsReport holds document counts.
type StatsReport struct {
	Users int64
	Files int64
}

// StatusService reports health and counts.
type StatusService interface {
	Status(ctx context.Context) StatusReport
	Stats(ctx context.Context) (StatsReport, error)
}

type StatusServiceImpl struct {
	db    Pinger
	cache AliveChecker
	users repository.UserRepository
	nodes repository.NodeRepository
}

// NewStatusService constructs StatusService.
func NewStatusService(db Pinger, cache AliveChecker, users repository.UserRepository, nodes repository.NodeRepository) *StatusServiceImpl {
	return &StatusServiceImpl{db: db, cache: cache, users: users, nodes: nodes}
}

// Status pings the database and the cache.
func (s *StatusServiceImpl) Status(ctx context.Context) StatusReport {
	return StatusReport{
		DB:    s.db.Ping(ctx) == nil,
		Cache: s.cache.Alive(ctx),
	}
}

// Stats counts users and stored files.
func (s *StatusServiceImpl) Stats(ctx context.Context) (StatsReport, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return StatsReport{}, fmt.Errorf("count users: %w", err)
	}
	files, err := s.nodes.Count(ctx)
	if err != nil {
		return StatsReport{}, fmt.Errorf("count files: %w", err)
	}
	return StatsReport{Users: users, Files: files}, nil
}
