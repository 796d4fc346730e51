package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/blob"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
)

// NodeStore is the part of the node repository the pipeline needs.
type NodeStore interface {
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*model.Node, error)
	MergeDerivatives(ctx context.Context, ownerID, id uuid.UUID, derivatives map[int]string) error
}

// Processor turns one derivative job into stored derivatives recorded on the node.
type Processor struct {
	nodes     NodeStore
	blobs     blob.Store
	log       *zap.Logger
	maxPixels int64
}

// ProcessorOption customizes a Processor.
type ProcessorOption func(*Processor)

// WithMaxPixels rejects source images declaring more than n pixels as
// invalid jobs. Non-positive n keeps DefaultMaxPixels.
func WithMaxPixels(n int64) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.maxPixels = n
		}
	}
}

// NewProcessor constructs a Processor.
func NewProcessor(nodes NodeStore, blobs blob.Store, log *zap.Logger, opts ...ProcessorOption) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Processor{nodes: nodes, blobs: blobs, log: log, maxPixels: DefaultMaxPixels}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Process renders every requested size independently. Errors wrapping
// errs.ErrInvalidJob are permanent. The job fails only when no size succeeded.
// Re-running a job overwrites the same derived keys.
func (p *Processor) Process(ctx context.Context, job model.DerivativeJob) error {
	if job.NodeID == uuid.Nil || job.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: missing node or owner id", errs.ErrInvalidJob)
	}
	node, err := p.nodes.GetOwned(ctx, job.OwnerID, job.NodeID)
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("%w: node %s: %w", errs.ErrInvalidJob, job.NodeID, err)
	}
	if err != nil {
		return fmt.Errorf("load node %s: %w", job.NodeID, err)
	}
	if node.Kind != model.KindImage || node.Content == nil {
		return fmt.Errorf("%w: node %s is not an image", errs.ErrInvalidJob, job.NodeID)
	}

	src, err := p.blobs.Get(ctx, node.Content.Location)
	if errors.Is(err, errs.ErrNotFound) {
		return &errs.PipelineError{NodeID: node.ID, Err: fmt.Errorf("%w: source bytes missing", errs.ErrInvalidJob)}
	}
	if err != nil {
		return &errs.PipelineError{NodeID: node.ID, Err: err}
	}
	img, format, err := Decode(src, p.maxPixels)
	if err != nil {
		return &errs.PipelineError{NodeID: node.ID, Err: fmt.Errorf("%w: %w", errs.ErrInvalidJob, err)}
	}

	sizes := job.Sizes
	if len(sizes) == 0 {
		sizes = model.ThumbnailSizes
	}
	done := make(map[int]string, len(sizes))
	var failures []error
	for _, size := range sizes {
		key, err := p.renderOne(ctx, node, img, format, size)
		if err != nil {
			perr := &errs.PipelineError{NodeID: node.ID, Size: size, Err: err}
			p.log.Warn("derivative failed", zap.String("node_id", node.ID.String()), zap.Int("size", size), zap.Error(err))
			failures = append(failures, perr)
			continue
		}
		done[size] = key
	}
	if len(done) == 0 {
		return errors.Join(failures...)
	}

	if err := p.nodes.MergeDerivatives(ctx, node.Owner, node.ID, done); err != nil {
		return fmt.Errorf("record derivatives for %s: %w", node.ID, err)
	}
	p.log.Info("derivatives recorded",
		zap.String("node_id", node.ID.String()),
		zap.Int("ok", len(done)), zap.Int("failed", len(failures)))
	return nil
}

func (p *Processor) renderOne(ctx context.Context, node *model.Node, img image.Image, format string, size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("invalid size %d", size)
	}
	out, err := Encode(Resize(img, size), format)
	if err != nil {
		return "", err
	}
	key := blob.DerivedKey(node.Content.Location, size)
	if err := p.blobs.Put(ctx, key, out); err != nil {
		return "", fmt.Errorf("store: %w", err)
	}
	return key, nil
}
