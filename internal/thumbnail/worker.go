package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/repository"
)

// JobProcessor handles a single claimed job.
type JobProcessor interface {
	Process(ctx context.Context, job model.DerivativeJob) error
}

// WorkerConfig tunes the consumer pool.
type WorkerConfig struct {
	Workers      int           // concurrent consumers, at least 1
	PollInterval time.Duration // wait when the queue is empty
	StaleAfter   time.Duration // processing jobs older than this are re-queued
}

// Worker drains the job queue with a fixed pool of consumers.
type Worker struct {
	queue repository.JobQueue
	proc  JobProcessor
	cfg   WorkerConfig
	log   *zap.Logger
}

// NewWorker creates a worker pool without starting it.
func NewWorker(queue repository.JobQueue, proc JobProcessor, cfg WorkerConfig, log *zap.Logger) *Worker {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{queue: queue, proc: proc, cfg: cfg, log: log}
}

// Run consumes jobs until ctx is canceled. Stale jobs are reclaimed
// periodically when StaleAfter is set.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := range w.cfg.Workers {
		g.Go(func() error {
			w.consume(ctx, i)
			return nil
		})
	}
	if w.cfg.StaleAfter > 0 {
		g.Go(func() error {
			w.reclaimLoop(ctx)
			return nil
		})
	}
	w.log.Info("derivative workers started", zap.Int("workers", w.cfg.Workers))
	err := g.Wait()
	w.log.Info("derivative workers stopped")
	return err
}

func (w *Worker) consume(ctx context.Context, n int) {
	log := w.log.With(zap.Int("worker", n))
	for ctx.Err() == nil {
		ok, err := w.RunOnce(ctx)
		if err != nil && ctx.Err() == nil {
			log.Error("claim job", zap.Error(err))
		}
		if ok {
			continue
		}
		if !sleep(ctx, w.cfg.PollInterval) {
			return
		}
	}
}

func (w *Worker) reclaimLoop(ctx context.Context) {
	t := time.NewTicker(w.cfg.StaleAfter / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := w.queue.ReclaimStale(ctx, w.cfg.StaleAfter)
			switch {
			case err != nil && ctx.Err() == nil:
				w.log.Error("reclaim stale jobs", zap.Error(err))
			case n > 0:
				w.log.Warn("reclaimed stale jobs", zap.Int64("count", n))
			}
		}
	}
}

// RunOnce claims and handles one job. It reports false when the queue had nothing ready.
func (w *Worker) RunOnce(ctx context.Context) (bool, error) {
	job, err := w.queue.Claim(ctx)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	w.handle(ctx, job)
	return true, nil
}

func (w *Worker) handle(ctx context.Context, job *model.DerivativeJob) {
	log := w.log.With(
		zap.Int64("job_id", job.ID),
		zap.String("node_id", job.NodeID.String()),
		zap.Int("attempt", job.Attempts),
	)
	start := time.Now()
	err := w.safeProcess(ctx, *job)

	// The outcome is recorded even if ctx was canceled while processing.
	bg := context.WithoutCancel(ctx)
	if err == nil {
		if cerr := w.queue.Complete(bg, job.ID); cerr != nil {
			log.Error("complete job", zap.Error(cerr))
			return
		}
		log.Info("job completed", zap.Duration("took", time.Since(start)))
		return
	}

	retry := !errors.Is(err, errs.ErrInvalidJob)
	status, ferr := w.queue.Fail(bg, job.ID, err.Error(), retry)
	if ferr != nil {
		log.Error("fail job", zap.Error(ferr), zap.NamedError("cause", err))
		return
	}
	log.Warn("job failed", zap.Error(err), zap.Bool("retry", retry), zap.String("status", string(status)))
}

// safeProcess runs the processor, turning a panic into an error.
func (w *Worker) safeProcess(ctx context.Context, job model.DerivativeJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.proc.Process(ctx, job)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
