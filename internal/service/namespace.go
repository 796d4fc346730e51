package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime"
	"path/filepath"
	"slices"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/access"
	"github.com/and161185/files-manager/internal/blob"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/repository"
)

// JobEnqueuer is the producer side of the derivative job queue.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, job model.DerivativeJob) (int64, error)
}

// CreateRequest is the single create entry point; Type selects the node kind.
type CreateRequest struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     []byte
}

// NamespaceService owns creation, lookup and visibility of nodes.
type NamespaceService interface {
	// CreateFolder creates a folder under parentID.
	CreateFolder(ctx context.Context, identity model.Identity, name, parentID string, isPublic bool) (*model.Node, error)
	// CreateContentNode stores data and creates a file or image node referencing it.
	CreateContentNode(ctx context.Context, identity model.Identity, name string, kind model.Kind,
		parentID string, data []byte, isPublic bool) (*model.Node, error)
	// Create dispatches on req.Type.
	Create(ctx context.Context, identity model.Identity, req CreateRequest) (*model.Node, error)
	// Get returns a node the caller may read. identity may be uuid.Nil.
	Get(ctx context.Context, identity model.Identity, id uuid.UUID) (*model.Node, error)
	// List returns a page of the caller's nodes under parentID.
	List(ctx context.Context, identity model.Identity, parentID string, page int) ([]model.Node, error)
	// SetVisibility publishes or unpublishes an owned node.
	SetVisibility(ctx context.Context, identity model.Identity, id uuid.UUID, isPublic bool) (*model.Node, error)
	// Content returns raw bytes (size 0) or a recorded derivative, plus a mime type.
	Content(ctx context.Context, identity model.Identity, id uuid.UUID, size int) ([]byte, string, error)
}

type NamespaceServiceImpl struct {
	nodes repository.NodeRepository
	blobs blob.Store
	jobs  JobEnqueuer
	log   *zap.Logger
}

// NewNamespaceService constructs NamespaceService.
func NewNamespaceService(nodes repository.NodeRepository, blobs blob.Store, jobs JobEnqueuer, log *zap.Logger) *NamespaceServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &NamespaceServiceImpl{nodes: nodes, blobs: blobs, jobs: jobs, log: log}
}

// Create validates name and type, then delegates to the kind specific constructor.
func (s *NamespaceServiceImpl) Create(ctx context.Context, identity model.Identity, req CreateRequest) (*model.Node, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if req.Name == "" {
		return nil, errs.Validation("missing name")
	}
	kind := model.Kind(req.Type)
	if !kind.Valid() {
		return nil, errs.Validation("missing type")
	}
	if kind == model.KindFolder {
		return s.CreateFolder(ctx, identity, req.Name, req.ParentID, req.IsPublic)
	}
	return s.CreateContentNode(ctx, identity, req.Name, kind, req.ParentID, req.Data, req.IsPublic)
}

// CreateFolder persists a metadata-only node.
func (s *NamespaceServiceImpl) CreateFolder(
	ctx context.Context, identity model.Identity, name, parentID string, isPublic bool,
) (*model.Node, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if name == "" {
		return nil, errs.Validation("missing name")
	}
	parentID, err := s.checkParent(ctx, identity, parentID)
	if err != nil {
		return nil, err
	}
	n := &model.Node{
		ID:       uuid.Must(uuid.NewV4()),
		Owner:    identity,
		Name:     name,
		Kind:     model.KindFolder,
		ParentID: parentID,
		IsPublic: isPublic,
	}
	if err := s.nodes.Create(ctx, n); err != nil {
		return nil, createErr(err)
	}
	return n, nil
}

// CreateContentNode writes bytes first and metadata second. If the metadata
// write fails the bytes are left behind unreferenced.
func (s *NamespaceServiceImpl) CreateContentNode(
	ctx context.Context, identity model.Identity, name string, kind model.Kind,
	parentID string, data []byte, isPublic bool,
) (*model.Node, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if name == "" {
		return nil, errs.Validation("missing name")
	}
	if !kind.HasContent() {
		return nil, errs.Validation("missing type")
	}
	if len(data) == 0 {
		return nil, errs.Validation("missing data")
	}
	parentID, err := s.checkParent(ctx, identity, parentID)
	if err != nil {
		return nil, err
	}

	key := s.blobs.NewKey()
	if err := s.blobs.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}

	n := &model.Node{
		ID:       uuid.Must(uuid.NewV4()),
		Owner:    identity,
		Name:     name,
		Kind:     kind,
		ParentID: parentID,
		IsPublic: isPublic,
		Content:  &model.Content{Location: key},
	}
	if err := s.nodes.Create(ctx, n); err != nil {
		s.log.Warn("orphaned content after metadata failure",
			zap.String("location", key), zap.Error(err))
		return nil, createErr(err)
	}

	if kind == model.KindImage {
		s.enqueueDerivatives(ctx, n)
	}
	return n, nil
}

func (s *NamespaceServiceImpl) enqueueDerivatives(ctx context.Context, n *model.Node) {
	job := model.DerivativeJob{NodeID: n.ID, OwnerID: n.Owner, Sizes: slices.Clone(model.ThumbnailSizes)}
	id, err := s.jobs.Enqueue(ctx, job)
	if err != nil {
		s.log.Error("enqueue derivative job", zap.String("node_id", n.ID.String()), zap.Error(err))
		return
	}
	s.log.Debug("derivative job enqueued", zap.Int64("job_id", id), zap.String("node_id", n.ID.String()))
}

// checkParent normalizes parentID and verifies it names a folder the caller may mutate.
func (s *NamespaceServiceImpl) checkParent(ctx context.Context, identity model.Identity, parentID string) (string, error) {
	if parentID == "" || parentID == model.RootID {
		return model.RootID, nil
	}
	pid, err := uuid.FromString(parentID)
	if err != nil {
		return "", errs.Validation("parent not found")
	}
	parent, err := s.nodes.Get(ctx, pid)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return "", errs.Validation("parent not found")
	case err != nil:
		return "", fmt.Errorf("load parent: %w", err)
	}
	if !access.CanMutate(identity, parent) {
		return "", errs.Validation("parent not found")
	}
	if parent.Kind != model.KindFolder {
		return "", errs.Validation("parent is not a folder")
	}
	return pid.String(), nil
}

// createErr maps repository errors of a create. The repository re-checks the
// parent, so a parent removed since checkParent surfaces as NotFound here.
func createErr(err error) error {
	switch {
	case errs.IsValidation(err):
		return err
	case errors.Is(err, errs.ErrNotFound):
		return errs.Validation("parent not found")
	default:
		return fmt.Errorf("create node: %w", err)
	}
}

// Get returns the node if the caller may read it; otherwise NotFound.
func (s *NamespaceServiceImpl) Get(ctx context.Context, identity model.Identity, id uuid.UUID) (*model.Node, error) {
	n, err := s.nodes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(identity, n) {
		return nil, errs.ErrNotFound
	}
	return n, nil
}

// List returns page (0-based) of the caller's nodes under parentID.
// Pages past the end, negative pages and pages whose offset overflows int are empty.
func (s *NamespaceServiceImpl) List(ctx context.Context, identity model.Identity, parentID string, page int) ([]model.Node, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if parentID == "" {
		parentID = model.RootID
	}
	if page < 0 || page > math.MaxInt/model.PageSize {
		return []model.Node{}, nil
	}
	return s.nodes.ListByParent(ctx, identity, parentID, model.PageSize, page*model.PageSize)
}

// SetVisibility changes IsPublic on a node owned by identity.
func (s *NamespaceServiceImpl) SetVisibility(ctx context.Context, identity model.Identity, id uuid.UUID, isPublic bool) (*model.Node, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	n, err := s.nodes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanMutate(identity, n) {
		return nil, errs.ErrNotFound
	}
	if n.IsPublic == isPublic {
		return n, nil
	}
	return s.nodes.SetPublic(ctx, identity, id, isPublic)
}

// Content reads the node's bytes, or the derivative of the given size.
func (s *NamespaceServiceImpl) Content(ctx context.Context, identity model.Identity, id uuid.UUID, size int) ([]byte, string, error) {
	n, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, "", err
	}
	if n.Content == nil {
		return nil, "", errs.Validation("a folder doesn't have content")
	}
	loc := n.Content.Location
	if size != 0 {
		if !model.IsThumbnailSize(size) {
			return nil, "", errs.ErrNotFound
		}
		var ok bool
		if loc, ok = n.Content.Derivatives[size]; !ok {
			return nil, "", errs.ErrNotFound
		}
	}
	data, err := s.blobs.Get(ctx, loc)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("read content: %w", err)
	}
	return data, mimeType(n.Name), nil
}

func mimeType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
