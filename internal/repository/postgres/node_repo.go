package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// NodeRepo implements NodeRepository using PostgreSQL.
type NodeRepo struct{ db *DB }

// NewNodeRepo constructs a node repository.
func NewNodeRepo(db *DB) *NodeRepo { return &NodeRepo{db: db} }

const nodeColumns = `id, owner_id, name, kind, parent_id, is_public,
COALESCE(location, ''), COALESCE(derivatives, '{}'::jsonb), created_at`

// Create inserts n. A non-root parent is locked for the duration of the insert
// so that it cannot disappear or change owner between the check and the write.
func (r *NodeRepo) Create(ctx context.Context, n *model.Node) error {
	var location any
	if n.Content != nil {
		location = n.Content.Location
	}
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if n.ParentID != model.RootID {
			pid, err := uuid.FromString(n.ParentID)
			if err != nil {
				return errs.ErrNotFound
			}
			const lock = `SELECT kind FROM nodes WHERE id=$1 AND owner_id=$2 FOR SHARE`
			var kind string
			if err := tx.QueryRow(ctx, lock, pid, n.Owner).Scan(&kind); err != nil {
				return notFound(err)
			}
			if model.Kind(kind) != model.KindFolder {
				return errs.Validation("parent is not a folder")
			}
		}
		const ins = `
INSERT INTO nodes (id, owner_id, name, kind, parent_id, is_public, location)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`
		return tx.QueryRow(ctx, ins, n.ID, n.Owner, n.Name, string(n.Kind), n.ParentID, n.IsPublic, location).
			Scan(&n.CreatedAt)
	})
}

// Get loads a node by id without an owner filter.
func (r *NodeRepo) Get(ctx context.Context, id uuid.UUID) (*model.Node, error) {
	q := `SELECT ` + nodeColumns + ` FROM nodes WHERE id=$1`
	return scanNode(r.db.Pool.QueryRow(ctx, q, id))
}

// GetOwned loads a node by id scoped to its owner.
func (r *NodeRepo) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*model.Node, error) {
	q := `SELECT ` + nodeColumns + ` FROM nodes WHERE id=$1 AND owner_id=$2`
	return scanNode(r.db.Pool.QueryRow(ctx, q, id, ownerID))
}

// ListByParent returns a page of the owner's nodes under parentID ordered by creation sequence.
func (r *NodeRepo) ListByParent(
	ctx context.Context, ownerID uuid.UUID, parentID string, limit, offset int,
) ([]model.Node, error) {
	if limit <= 0 || offset < 0 {
		return []model.Node{}, nil
	}
	q := `SELECT ` + nodeColumns + `
FROM nodes
WHERE owner_id=$1 AND parent_id=$2
ORDER BY seq ASC
LIMIT $3 OFFSET $4`
	rows, err := r.db.Pool.Query(ctx, q, ownerID, parentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Node, 0, limit)
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// SetPublic updates is_public on an owned node and returns the updated row.
func (r *NodeRepo) SetPublic(ctx context.Context, ownerID, id uuid.UUID, public bool) (*model.Node, error) {
	q := `UPDATE nodes SET is_public=$3 WHERE id=$1 AND owner_id=$2 RETURNING ` + nodeColumns
	return scanNode(r.db.Pool.QueryRow(ctx, q, id, ownerID, public))
}

// MergeDerivatives merges size→location entries into an owned image's derivatives.
func (r *NodeRepo) MergeDerivatives(ctx context.Context, ownerID, id uuid.UUID, derivatives map[int]string) error {
	if len(derivatives) == 0 {
		return nil
	}
	doc, err := json.Marshal(derivatives)
	if err != nil {
		return fmt.Errorf("encode derivatives: %w", err)
	}
	const q = `
UPDATE nodes
SET derivatives = COALESCE(derivatives, '{}'::jsonb) || $3::jsonb
WHERE id=$1 AND owner_id=$2 AND kind='image'`
	tag, err := r.db.Pool.Exec(ctx, q, id, ownerID, string(doc))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Count returns the number of file and image nodes.
func (r *NodeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM nodes WHERE kind <> 'folder'`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanNode(row interface{ Scan(...any) error }) (*model.Node, error) {
	var (
		n        model.Node
		kind     string
		location string
		derivs   []byte
	)
	if err := row.Scan(&n.ID, &n.Owner, &n.Name, &kind, &n.ParentID, &n.IsPublic, &location, &derivs, &n.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	n.Kind = model.Kind(kind)
	if !n.Kind.HasContent() {
		return &n, nil
	}
	n.Content = &model.Content{Location: location}
	if n.Kind != model.KindImage {
		return &n, nil
	}
	var m map[int]string
	if err := json.Unmarshal(derivs, &m); err != nil {
		return nil, fmt.Errorf("decode derivatives: %w", err)
	}
	if len(m) > 0 {
		n.Content.Derivatives = m
	}
	return &n, nil
}
