// Package grpcserver exposes the FilesManager gRPC API handlers.
package grpcserver

import (
	"context"
	"encoding/base64"
	"net"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/files-manager/gen/go/filesmanager/v1"
	"github.com/and161185/files-manager/internal/api"
	"github.com/and161185/files-manager/internal/convert"
	"github.com/and161185/files-manager/internal/service"
)

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedFilesManagerServer

	auth   service.AuthService
	nodes  service.NamespaceService
	status service.StatusService
	log    *zap.Logger
}

var _ pb.FilesManagerServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, nodes service.NamespaceService, st service.StatusService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{auth: auth, nodes: nodes, status: st, log: log}
}

// fail maps err to a status and logs what is hidden behind codes.Internal.
func (s *Server) fail(op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.log.Error(op, zap.Error(err))
	}
	return st
}

// --- Auth ---

// Register creates a new account.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.User, error) {
	u, err := s.auth.Register(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail("register", err)
	}
	return convert.ToProtoUser(u), nil
}

// SignIn issues a session token. Credentials come from the request body or,
// when it is empty, from an "authorization: Basic" header.
func (s *Server) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	email, password := req.GetEmail(), req.GetPassword()
	if email == "" && password == "" {
		email, password, _ = basicFromMD(ctx)
	}
	sess, err := s.auth.SignIn(ctx, email, password, remoteHost(ctx))
	if err != nil {
		return nil, s.fail("sign in", err)
	}
	return convert.ToProtoSession(sess), nil
}

// SignOut revokes the caller's session.
func (s *Server) SignOut(ctx context.Context, _ *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	if err := s.auth.SignOut(ctx, TokenFromCtx(ctx)); err != nil {
		return nil, s.fail("sign out", err)
	}
	return &pb.SignOutResponse{}, nil
}

// Me returns the caller's account.
func (s *Server) Me(ctx context.Context, _ *pb.MeRequest) (*pb.User, error) {
	id, _ := IdentityFromCtx(ctx)
	u, err := s.auth.Me(ctx, id)
	if err != nil {
		return nil, s.fail("me", err)
	}
	return convert.ToProtoUser(u), nil
}

// --- Nodes ---

// CreateNode creates a folder, file or image.
func (s *Server) CreateNode(ctx context.Context, req *pb.CreateNodeRequest) (*pb.Node, error) {
	id, _ := IdentityFromCtx(ctx)
	n, err := s.nodes.Create(ctx, id, convert.FromProtoCreate(req))
	if err != nil {
		return nil, s.fail("create node", err)
	}
	return convert.ToProtoNode(n), nil
}

// GetNode returns node metadata. Anonymous callers see public nodes only.
func (s *Server) GetNode(ctx context.Context, req *pb.GetNodeRequest) (*pb.Node, error) {
	nodeID, err := convert.ParseNodeID(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	id, _ := IdentityFromCtx(ctx)
	n, err := s.nodes.Get(ctx, id, nodeID)
	if err != nil {
		return nil, s.fail("get node", err)
	}
	return convert.ToProtoNode(n), nil
}

// ListNodes returns one page of the caller's nodes under a parent.
func (s *Server) ListNodes(ctx context.Context, req *pb.ListNodesRequest) (*pb.ListNodesResponse, error) {
	id, _ := IdentityFromCtx(ctx)
	ns, err := s.nodes.List(ctx, id, req.GetParentId(), int(req.GetPage()))
	if err != nil {
		return nil, s.fail("list nodes", err)
	}
	return &pb.ListNodesResponse{Nodes: convert.ToProtoNodes(ns)}, nil
}

// SetVisibility publishes or unpublishes a node.
func (s *Server) SetVisibility(ctx context.Context, req *pb.SetVisibilityRequest) (*pb.Node, error) {
	nodeID, err := convert.ParseNodeID(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	id, _ := IdentityFromCtx(ctx)
	n, err := s.nodes.SetVisibility(ctx, id, nodeID, req.GetIsPublic())
	if err != nil {
		return nil, s.fail("set visibility", err)
	}
	return convert.ToProtoNode(n), nil
}

// GetContent returns stored bytes or a thumbnail.
func (s *Server) GetContent(ctx context.Context, req *pb.GetContentRequest) (*pb.GetContentResponse, error) {
	nodeID, err := convert.ParseNodeID(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	id, _ := IdentityFromCtx(ctx)
	data, mime, err := s.nodes.Content(ctx, id, nodeID, int(req.GetSize()))
	if err != nil {
		return nil, s.fail("get content", err)
	}
	return &pb.GetContentResponse{MimeType: mime, Data: data}, nil
}

// --- Status ---

// Status reports whether the database and session cache respond.
func (s *Server) Status(ctx context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	return convert.ToProtoStatus(s.status.Status(ctx)), nil
}

func (s *Server) Stats(ctx context.Context, _ *pb.StatsRequest) (*pb.StatsResponse, error) {
	r, err := s.status.Stats(ctx)
	if err != nil {
		return nil, s.fail("stats", err)
	}
	return convert.ToProtoStats(r), nil
}

// remoteHost is the peer address without port, used as the rate-limit key.
func remoteHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func basicFromMD(ctx context.Context) (email, password string, ok bool) {
	md, found := metadata.FromIncomingContext(ctx)
	if !found {
		return "", "", false
	}
	for _, v := range md.Get(api.AuthHeader) {
		v = strings.TrimSpace(v)
		if len(v) < 6 || !strings.EqualFold(v[:6], "basic ") {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(v[6:]))
		if err != nil {
			continue
		}
		email, password, ok = strings.Cut(string(raw), ":")
		if ok {
			return email, password, true
		}
	}
	return "", "", false
}
