package repository

import (
	"context"
	"time"

	"github.com/and161185/files-manager/internal/model"
)

// JobQueue is the durable derivative job queue.
//
// Lifecycle: Enqueue → Claim → Complete | Fail. Claim hands a job to exactly one
// consumer; ReclaimStale returns jobs of dead consumers to the queue, so delivery
// is at-least-once.
type JobQueue interface {
	// Enqueue stores a queued job and returns its id.
	Enqueue(ctx context.Context, job model.DerivativeJob) (int64, error)

	// Claim moves the oldest ready job to processing; errs.ErrNotFound when none is ready.
	Claim(ctx context.Context) (*model.DerivativeJob, error)

	// Complete marks a processing job completed.
	Complete(ctx context.Context, id int64) error

	// Fail records reason. With retry the job is re-queued until attempts are exhausted.
	Fail(ctx context.Context, id int64, reason string, retry bool) (model.JobStatus, error)

	// ReclaimStale re-queues jobs claimed longer than olderThan ago.
	ReclaimStale(ctx context.Context, olderThan time.Duration) (int64, error)
}
