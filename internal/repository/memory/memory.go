// Package memory provides in-process repository implementations for the
// "memory" store driver and for tests. State is lost on restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// Store holds all in-memory tables behind one lock.
type Store struct {
	mu sync.Mutex

	users   map[uuid.UUID]model.User
	byEmail map[string]uuid.UUID

	nodes   map[uuid.UUID]*storedNode
	nodeSeq int64

	jobs        []*storedJob
	jobSeq      int64
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
}

type storedNode struct {
	seq  int64
	node *model.Node
}

type storedJob struct {
	job         model.DerivativeJob
	availableAt time.Time
	claimedAt   time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used by the job queue.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithRetry sets job retry limits; see postgres.NewJobQueue.
func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(s *Store) {
		if maxAttempts < 1 {
			maxAttempts = 1
		}
		s.maxAttempts, s.backoff = maxAttempts, backoff
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		users:       map[uuid.UUID]model.User{},
		byEmail:     map[string]uuid.UUID{},
		nodes:       map[uuid.UUID]*storedNode{},
		maxAttempts: 5,
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Users returns the user repository view.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Nodes returns the node repository view.
func (s *Store) Nodes() *NodeRepo { return &NodeRepo{s: s} }

// Jobs returns the job queue view.
func (s *Store) Jobs() *JobQueue { return &JobQueue{s: s} }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.NodeRepository = (*NodeRepo)(nil)
	_ repository.JobQueue       = (*JobQueue)(nil)
)

// UserRepo implements repository.UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *model.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[u.Email]; ok {
		return errs.ErrAlreadyExists
	}
	if _, ok := s.users[u.ID]; ok {
		return errs.ErrAlreadyExists
	}
	u.CreatedAt = s.now()
	s.users[u.ID] = *u
	s.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	u := r.s.users[id]
	return &u, nil
}

func (r *UserRepo) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

// NodeRepo implements repository.NodeRepository.
type NodeRepo struct{ s *Store }

func (r *NodeRepo) Create(_ context.Context, n *model.Node) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ParentID != model.RootID {
		pid, err := uuid.FromString(n.ParentID)
		if err != nil {
			return errs.ErrNotFound
		}
		p, ok := s.nodes[pid]
		if !ok || p.node.Owner != n.Owner {
			return errs.ErrNotFound
		}
		if p.node.Kind != model.KindFolder {
			return errs.Validation("parent is not a folder")
		}
	}
	if _, ok := s.nodes[n.ID]; ok {
		return errs.ErrAlreadyExists
	}
	n.CreatedAt = s.now()
	s.nodeSeq++
	s.nodes[n.ID] = &storedNode{seq: s.nodeSeq, node: n.Clone()}
	return nil
}

func (r *NodeRepo) Get(_ context.Context, id uuid.UUID) (*model.Node, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sn, ok := r.s.nodes[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return sn.node.Clone(), nil
}

func (r *NodeRepo) GetOwned(_ context.Context, ownerID, id uuid.UUID) (*model.Node, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sn, ok := r.s.nodes[id]
	if !ok || sn.node.Owner != ownerID {
		return nil, errs.ErrNotFound
	}
	return sn.node.Clone(), nil
}

func (r *NodeRepo) ListByParent(_ context.Context, ownerID uuid.UUID, parentID string, limit, offset int) ([]model.Node, error) {
	if limit <= 0 || offset < 0 {
		return []model.Node{}, nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []*storedNode
	for _, sn := range r.s.nodes {
		if sn.node.Owner == ownerID && sn.node.ParentID == parentID {
			matched = append(matched, sn)
		}
	}
	slices.SortFunc(matched, func(a, b *storedNode) int { return cmp.Compare(a.seq, b.seq) })

	out := make([]model.Node, 0, limit)
	for i := offset; i < len(matched) && len(out) < limit; i++ {
		out = append(out, *matched[i].node.Clone())
	}
	return out, nil
}

func (r *NodeRepo) SetPublic(_ context.Context, ownerID, id uuid.UUID, public bool) (*model.Node, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sn, ok := r.s.nodes[id]
	if !ok || sn.node.Owner != ownerID {
		return nil, errs.ErrNotFound
	}
	sn.node.IsPublic = public
	return sn.node.Clone(), nil
}

func (r *NodeRepo) MergeDerivatives(_ context.Context, ownerID, id uuid.UUID, derivatives map[int]string) error {
	if len(derivatives) == 0 {
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sn, ok := r.s.nodes[id]
	if !ok || sn.node.Owner != ownerID || sn.node.Kind != model.KindImage {
		return errs.ErrNotFound
	}
	c := sn.node.Content
	if c.Derivatives == nil {
		c.Derivatives = make(map[int]string, len(derivatives))
	}
	for size, loc := range derivatives {
		c.Derivatives[size] = loc
	}
	return nil
}

func (r *NodeRepo) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, sn := range r.s.nodes {
		if sn.node.Kind.HasContent() {
			n++
		}
	}
	return n, nil
}

// JobQueue implements repository.JobQueue.
type JobQueue struct{ s *Store }

func (q *JobQueue) Enqueue(_ context.Context, job model.DerivativeJob) (int64, error) {
	s := q.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobSeq++
	job.ID = s.jobSeq
	job.Status = model.JobQueued
	job.Attempts = 0
	job.LastError = ""
	job.Sizes = slices.Clone(job.Sizes)
	s.jobs = append(s.jobs, &storedJob{job: job, availableAt: s.now()})
	return job.ID, nil
}

func (q *JobQueue) Claim(context.Context) (*model.DerivativeJob, error) {
	s := q.s
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for _, sj := range s.jobs {
		if sj.job.Status != model.JobQueued || sj.availableAt.After(now) {
			continue
		}
		sj.job.Status = model.JobProcessing
		sj.job.Attempts++
		sj.claimedAt = now
		j := sj.job
		j.Sizes = slices.Clone(j.Sizes)
		return &j, nil
	}
	return nil, errs.ErrNotFound
}

func (q *JobQueue) Complete(_ context.Context, id int64) error {
	s := q.s
	s.mu.Lock()
	defer s.mu.Unlock()
	sj := s.find(id)
	if sj == nil || sj.job.Status != model.JobProcessing {
		return errs.ErrNotFound
	}
	sj.job.Status = model.JobCompleted
	sj.job.LastError = ""
	return nil
}

func (q *JobQueue) Fail(_ context.Context, id int64, reason string, retry bool) (model.JobStatus, error) {
	s := q.s
	s.mu.Lock()
	defer s.mu.Unlock()
	sj := s.find(id)
	if sj == nil || sj.job.Status != model.JobProcessing {
		return "", errs.ErrNotFound
	}
	sj.job.LastError = reason
	if retry && sj.job.Attempts < s.maxAttempts {
		sj.job.Status = model.JobQueued
		sj.availableAt = s.now().Add(s.backoff * time.Duration(sj.job.Attempts))
	} else {
		sj.job.Status = model.JobFailed
	}
	return sj.job.Status, nil
}

func (q *JobQueue) ReclaimStale(_ context.Context, olderThan time.Duration) (int64, error) {
	s := q.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-olderThan)
	var n int64
	for _, sj := range s.jobs {
		if sj.job.Status == model.JobProcessing && sj.claimedAt.Before(cutoff) {
			sj.job.Status = model.JobQueued
			n++
		}
	}
	return n, nil
}

// Job returns a snapshot of a job by id, for inspection.
func (q *JobQueue) Job(id int64) (model.DerivativeJob, bool) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	sj := q.s.find(id)
	if sj == nil {
		return model.DerivativeJob{}, false
	}
	return sj.job, true
}

// Len returns the total number of jobs ever enqueued.
func (q *JobQueue) Len() int {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	return len(q.s.jobs)
}

func (s *Store) find(id int64) *storedJob {
	for _, sj := range s.jobs {
		if sj.job.ID == id {
			return sj
		}
	}
	return nil
}
