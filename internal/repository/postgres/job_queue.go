package postgres

import (
	"context"
	"time"

	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
)

// JobQueue implements repository.JobQueue on the derivative_jobs table.
// Every transition is guarded by the expected current status.
type JobQueue struct {
	db          *DB
	maxAttempts int
	backoff     time.Duration
}

// NewJobQueue constructs a job queue. A failed job is retried until it has been
// claimed maxAttempts times; the n-th retry becomes ready after n*backoff.
func NewJobQueue(db *DB, maxAttempts int, backoff time.Duration) *JobQueue {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &JobQueue{db: db, maxAttempts: maxAttempts, backoff: backoff}
}

// Enqueue stores a queued job.
func (q *JobQueue) Enqueue(ctx context.Context, job model.DerivativeJob) (int64, error) {
	const ins = `
INSERT INTO derivative_jobs (node_id, owner_id, sizes)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	if err := q.db.Pool.QueryRow(ctx, ins, job.NodeID, job.OwnerID, job.Sizes).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Claim takes the oldest ready job. Concurrent claimers skip rows locked by each other.
func (q *JobQueue) Claim(ctx context.Context) (*model.DerivativeJob, error) {
	const upd = `
UPDATE derivative_jobs
SET status='processing', claimed_at=now(), attempts=attempts+1, updated_at=now()
WHERE id = (
  SELECT id FROM derivative_jobs
  WHERE status='queued' AND available_at <= now()
  ORDER BY id
  LIMIT 1
  FOR UPDATE SKIP LOCKED
)
RETURNING id, node_id, owner_id, sizes, status, attempts, last_error`
	var (
		j      model.DerivativeJob
		status string
	)
	err := q.db.Pool.QueryRow(ctx, upd).Scan(&j.ID, &j.NodeID, &j.OwnerID, &j.Sizes, &status, &j.Attempts, &j.LastError)
	if err != nil {
		return nil, notFound(err)
	}
	j.Status = model.JobStatus(status)
	return &j, nil
}

// Complete marks a processing job completed.
func (q *JobQueue) Complete(ctx context.Context, id int64) error {
	const upd = `
UPDATE derivative_jobs
SET status='completed', claimed_at=NULL, last_error='', updated_at=now()
WHERE id=$1 AND status='processing'`
	tag, err := q.db.Pool.Exec(ctx, upd, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Fail records reason on a processing job and either re-queues it or marks it failed.
func (q *JobQueue) Fail(ctx context.Context, id int64, reason string, retry bool) (model.JobStatus, error) {
	const upd = `
UPDATE derivative_jobs
SET status = CASE WHEN $3 AND attempts < $4 THEN 'queued' ELSE 'failed' END,
    available_at = CASE WHEN $3 AND attempts < $4 THEN now() + $5::interval * attempts ELSE available_at END,
    last_error=$2, claimed_at=NULL, updated_at=now()
WHERE id=$1 AND status='processing'
RETURNING status`
	var status string
	if err := q.db.Pool.QueryRow(ctx, upd, id, reason, retry, q.maxAttempts, q.backoff).Scan(&status); err != nil {
		return "", notFound(err)
	}
	return model.JobStatus(status), nil
}

// ReclaimStale re-queues jobs whose consumer has held them longer than olderThan.
func (q *JobQueue) ReclaimStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	const upd = `
UPDATE derivative_jobs
SET status='queued', claimed_at=NULL, updated_at=now()
WHERE status='processing' AND claimed_at < now() - $1::interval`
	tag, err := q.db.Pool.Exec(ctx, upd, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
