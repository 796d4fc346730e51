// Package convert maps between domain models and protobuf messages.
package convert

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/files-manager/gen/go/filesmanager/v1"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/service"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// --- Users / sessions ---

// ToProtoUser exposes id and email only.
func ToProtoUser(u *model.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{Id: u.ID.String(), Email: u.Email}
}

// ToProtoSession converts an issued session. The identity stays server-side.
func ToProtoSession(s model.Session) *pb.SignInResponse {
	return &pb.SignInResponse{Token: s.Token, ExpiresAt: ts(s.ExpiresAt)}
}

// --- Nodes ---

// ToProtoNode converts node metadata. Storage locations never leave the server;
// Derivatives lists recorded thumbnail widths, largest first.
func ToProtoNode(n *model.Node) *pb.Node {
	if n == nil {
		return nil
	}
	out := &pb.Node{
		Id:        n.ID.String(),
		UserId:    n.Owner.String(),
		Name:      n.Name,
		Type:      string(n.Kind),
		IsPublic:  n.IsPublic,
		ParentId:  n.ParentID,
		CreatedAt: ts(n.CreatedAt),
	}
	if n.Content != nil {
		for _, size := range model.ThumbnailSizes {
			if _, ok := n.Content.Derivatives[size]; ok {
				out.Derivatives = append(out.Derivatives, int32(size))
			}
		}
	}
	return out
}

// ToProtoNodes converts a listing page. The result is never nil.
func ToProtoNodes(ns []model.Node) []*pb.Node {
	out := make([]*pb.Node, 0, len(ns))
	for i := range ns {
		out = append(out, ToProtoNode(&ns[i]))
	}
	return out
}

// FromProtoCreate converts a create request.
func FromProtoCreate(in *pb.CreateNodeRequest) service.CreateRequest {
	return service.CreateRequest{
		Name:     in.GetName(),
		Type:     in.GetType(),
		ParentID: in.GetParentId(),
		IsPublic: in.GetIsPublic(),
		Data:     in.GetData(),
	}
}

// ParseNodeID parses a node id. Malformed ids cannot name any node,
// so they yield errs.ErrNotFound.
func ParseNodeID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, errs.ErrNotFound
	}
	return id, nil
}

// --- Status ---

// ToProtoStatus converts a liveness report.
func ToProtoStatus(r service.StatusReport) *pb.StatusResponse {
	return &pb.StatusResponse{Db: r.DB, Cache: r.Cache}
}

// ToProtoStats converts document counts.
func ToProtoStats(r service.StatsReport) *pb.StatsResponse {
	return &pb.StatsResponse{Users: r.Users, Files: r.Files}
}
