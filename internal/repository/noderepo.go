package repository

import (
	"context"

	"github.com/and161185/files-manager/internal/model"
	"github.com/gofrs/uuid/v5"
)

// NodeRepository persists namespace nodes.
type NodeRepository interface {
	// Create inserts n and fills CreatedAt.
	Create(ctx context.Context, n *model.Node) error

	// Get loads a node regardless of owner. Callers apply access rules.
	Get(ctx context.Context, id uuid.UUID) (*model.Node, error)

	// GetOwned loads a node only if it belongs to ownerID.
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*model.Node, error)

	// ListByParent returns ownerID's nodes under parentID in creation order.
	// A non-positive limit or a negative offset yields an empty page.
	ListByParent(ctx context.Context, ownerID uuid.UUID, parentID string, limit, offset int) ([]model.Node, error)

	// SetPublic updates visibility of an owned node and returns the result.
	SetPublic(ctx context.Context, ownerID, id uuid.UUID, public bool) (*model.Node, error)

	// MergeDerivatives records size→location entries on an owned image,
	// replacing existing entries for the same sizes.
	MergeDerivatives(ctx context.Context, ownerID, id uuid.UUID, derivatives map[int]string) error

	// Count returns the number of nodes.
	Count(ctx context.Context) (int64, error)
}
