package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	pb "github.com/and161185/files-manager/gen/go/filesmanager/v1"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/service"
)

func TestToProtoNode_Folder(t *testing.T) {
	t.Parallel()

	n := &model.Node{
		ID:        uuid.Must(uuid.NewV4()),
		Owner:     uuid.Must(uuid.NewV4()),
		Name:      "docs",
		Kind:      model.KindFolder,
		ParentID:  model.RootID,
		IsPublic:  true,
		CreatedAt: time.Unix(100, 0),
	}
	got := ToProtoNode(n)
	if got.GetId() != n.ID.String() || got.GetUserId() != n.Owner.String() || got.GetType() != "folder" ||
		got.GetParentId() != "0" || !got.GetIsPublic() || !got.GetCreatedAt().AsTime().Equal(n.CreatedAt) {
		t.Fatalf("unexpected node: %v", got)
	}
	if got.GetDerivatives() != nil {
		t.Fatalf("folder has no derivatives: %v", got.GetDerivatives())
	}
}

func TestToProtoNode_ZeroTimeAndNil(t *testing.T) {
	t.Parallel()

	if ToProtoNode(nil) != nil {
		t.Fatalf("nil node must give nil pb")
	}
	got := ToProtoNode(&model.Node{Kind: model.KindFile})
	if got.GetCreatedAt() != nil {
		t.Fatalf("zero time must not be sent, got %v", got.GetCreatedAt())
	}
}

func TestToProtoNode_DerivativesOrdered(t *testing.T) {
	t.Parallel()

	n := &model.Node{
		ID:   uuid.Must(uuid.NewV4()),
		Kind: model.KindImage,
		Content: &model.Content{
			Location:    "loc",
			Derivatives: map[int]string{100: "loc_100", 500: "loc_500"},
		},
	}
	got := ToProtoNode(n)
	if len(got.Derivatives) != 2 || got.Derivatives[0] != 500 || got.Derivatives[1] != 100 {
		t.Fatalf("derivatives: %v", got.Derivatives)
	}
}

func TestToProtoNodes_NeverNil(t *testing.T) {
	t.Parallel()

	if out := ToProtoNodes(nil); out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", out)
	}
	ns := []model.Node{{Name: "a"}, {Name: "b"}}
	out := ToProtoNodes(ns)
	if len(out) != 2 || out[1].GetName() != "b" {
		t.Fatalf("unexpected: %v", out)
	}
}

func TestFromProtoCreate(t *testing.T) {
	t.Parallel()

	in := &pb.CreateNodeRequest{Name: "a.png", Type: "image", ParentId: "p", IsPublic: true, Data: []byte{1}}
	got := FromProtoCreate(in)
	if got.Name != in.Name || got.Type != in.Type || got.ParentID != in.ParentId || !got.IsPublic || len(got.Data) != 1 {
		t.Fatalf("unexpected: %+v", got)
	}
	if empty := FromProtoCreate(nil); empty.Name != "" || empty.Data != nil {
		t.Fatalf("nil request must convert to zero value: %+v", empty)
	}
}

func TestToProtoSession(t *testing.T) {
	t.Parallel()

	exp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := ToProtoSession(model.Session{Token: "tok", Identity: uuid.Must(uuid.NewV4()), ExpiresAt: exp})
	if got.GetToken() != "tok" || !got.GetExpiresAt().AsTime().Equal(exp) {
		t.Fatalf("unexpected: %v", got)
	}
}

func TestToProtoUserAndReports(t *testing.T) {
	t.Parallel()

	u := &model.User{ID: uuid.Must(uuid.NewV4()), Email: "a@b.io"}
	if got := ToProtoUser(u); got.GetId() != u.ID.String() || got.GetEmail() != u.Email {
		t.Fatalf("user: %v", got)
	}
	if ToProtoUser(nil) != nil {
		t.Fatalf("nil user must give nil pb")
	}
	if st := ToProtoStatus(service.StatusReport{DB: true}); !st.GetDb() || st.GetCache() {
		t.Fatalf("status: %v", st)
	}
	if s := ToProtoStats(service.StatsReport{Users: 2, Files: 7}); s.GetUsers() != 2 || s.GetFiles() != 7 {
		t.Fatalf("stats: %v", s)
	}
}

func TestParseNodeID(t *testing.T) {
	t.Parallel()

	want := uuid.Must(uuid.NewV4())
	got, err := ParseNodeID(want.String())
	if err != nil || got != want {
		t.Fatalf("parse: %v %v", got, err)
	}
	if _, err := ParseNodeID("nope"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
