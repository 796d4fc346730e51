package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/files-manager/internal/blob"
	"github.com/and161185/files-manager/internal/errs"
	"github.com/and161185/files-manager/internal/model"
	"github.com/and161185/files-manager/internal/repository"
	"github.com/and161185/files-manager/internal/repository/memory"
)

type fakeBlobs struct {
	mu     sync.Mutex
	data   map[string][]byte
	putErr error
	n      int
}

var _ blob.Store = (*fakeBlobs)(nil)

func (f *fakeBlobs) NewKey() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return fmt.Sprintf("key%d", f.n)
}
func (f *fakeBlobs) Put(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = append([]byte(nil), data...)
	return nil
}
func (f *fakeBlobs) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return b, nil
}

type fakeJobs struct {
	jobs []model.DerivativeJob
	err  error
}

func (f *fakeJobs) Enqueue(_ context.Context, j model.DerivativeJob) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.jobs = append(f.jobs, j)
	return int64(len(f.jobs)), nil
}

// failingCreate wraps a node repository and fails every Create.
type failingCreate struct {
	repository.NodeRepository
	err error
}

func (f failingCreate) Create(context.Context, *model.Node) error { return f.err }

type nsFixture struct {
	svc   *NamespaceServiceImpl
	store *memory.Store
	blobs *fakeBlobs
	jobs  *fakeJobs
}

func newNS(t *testing.T) nsFixture {
	t.Helper()
	st := memory.New()
	b := &fakeBlobs{}
	j := &fakeJobs{}
	return nsFixture{
		svc:   NewNamespaceService(st.Nodes(), b, j, zaptest.NewLogger(t)),
		store: st,
		blobs: b,
		jobs:  j,
	}
}

func wantValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var ve *errs.ValidationError
	if !errors.As(err, &ve) || ve.Msg != msg {
		t.Fatalf("want validation %q, got %v", msg, err)
	}
}

func TestNamespace_CreateFolder(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	n, err := f.svc.CreateFolder(ctx, u, "docs", "", false)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if n.Kind != model.KindFolder || n.Content != nil || n.ParentID != model.RootID || n.Owner != u {
		t.Fatalf("bad folder: %+v", n)
	}

	wantValidation(t, mustErr(f.svc.CreateFolder(ctx, u, "", model.RootID, false)), "missing name")
	if _, err := f.svc.CreateFolder(ctx, uuid.Nil, "x", model.RootID, false); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("anonymous create: %v", err)
	}
}

func mustErr(_ *model.Node, err error) error { return err }

func TestNamespace_ParentValidation(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u1 := uuid.Must(uuid.NewV4())
	u2 := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	folder, _ := f.svc.CreateFolder(ctx, u1, "docs", model.RootID, false)
	file, err := f.svc.CreateContentNode(ctx, u1, "a.txt", model.KindFile, model.RootID, []byte("hi"), false)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}

	wantValidation(t, mustErr(f.svc.CreateFolder(ctx, u1, "x", file.ID.String(), false)), "parent is not a folder")
	wantValidation(t, mustErr(f.svc.CreateFolder(ctx, u1, "x", uuid.Must(uuid.NewV4()).String(), false)), "parent not found")
	wantValidation(t, mustErr(f.svc.CreateFolder(ctx, u1, "x", "not-a-uuid", false)), "parent not found")
	// another user's folder, even a public one, is not a valid parent
	if _, err := f.svc.SetVisibility(ctx, u1, folder.ID, true); err != nil {
		t.Fatalf("publish: %v", err)
	}
	wantValidation(t, mustErr(f.svc.CreateFolder(ctx, u2, "x", folder.ID.String(), false)), "parent not found")

	child, err := f.svc.CreateContentNode(ctx, u1, "b.txt", model.KindFile, folder.ID.String(), []byte("b"), false)
	if err != nil || child.ParentID != folder.ID.String() {
		t.Fatalf("create under folder: %+v %v", child, err)
	}
}

func TestNamespace_CreateContent_ValidationOrder(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u := uuid.Must(uuid.NewV4())
	ctx := context.Background()
	bogus := uuid.Must(uuid.NewV4()).String()

	// required fields are checked before the parent
	wantValidation(t, mustErr(f.svc.Create(ctx, u, CreateRequest{Type: "file", ParentID: bogus})), "missing name")
	wantValidation(t, mustErr(f.svc.Create(ctx, u, CreateRequest{Name: "a", Type: "video", ParentID: bogus})), "missing type")
	wantValidation(t, mustErr(f.svc.Create(ctx, u, CreateRequest{Name: "a", Type: "file", ParentID: bogus})), "missing data")
	wantValidation(t, mustErr(f.svc.Create(ctx, u, CreateRequest{Name: "a", Type: "file", ParentID: bogus, Data: []byte("x")})), "parent not found")
	wantValidation(t, mustErr(f.svc.CreateContentNode(ctx, u, "a", model.KindFolder, model.RootID, []byte("x"), false)), "missing type")

	if len(f.blobs.data) != 0 {
		t.Fatalf("no bytes may be written on validation failure")
	}
}

func TestNamespace_CreateContent_BytesBeforeMetadata(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	f.blobs.putErr = errors.New("disk full")
	_, err := f.svc.CreateContentNode(ctx, u, "a.txt", model.KindFile, model.RootID, []byte("x"), false)
	if err == nil || errs.IsValidation(err) {
		t.Fatalf("want storage error, got %v", err)
	}
	list, _ := f.svc.List(ctx, u, model.RootID, 0)
	if len(list) != 0 {
		t.Fatalf("metadata written despite byte storage failure: %+v", list)
	}

	// metadata failure leaves the bytes as unreferenced garbage
	f.blobs.putErr = nil
	svc := NewNamespaceService(failingCreate{f.store.Nodes(), errors.New("db down")}, f.blobs, f.jobs, zaptest.NewLogger(t))
	if _, err := svc.CreateContentNode(ctx, u, "a.png", model.KindImage, model.RootID, []byte("x"), false); err == nil {
		t.Fatalf("want metadata error")
	}
	if len(f.blobs.data) != 1 {
		t.Fatalf("bytes must be written before metadata")
	}
	if len(f.jobs.jobs) != 0 {
		t.Fatalf("no job for an uncommitted image")
	}
}

func TestNamespace_ImageEnqueuesJob(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	n, err := f.svc.Create(ctx, u, CreateRequest{Name: "a.png", Type: "image", Data: []byte("png")})
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	if n.Content == nil || n.Content.Derivatives != nil {
		t.Fatalf("fresh image must have content and no derivatives: %+v", n.Content)
	}
	if len(f.jobs.jobs) != 1 {
		t.Fatalf("want 1 job, got %d", len(f.jobs.jobs))
	}
	j := f.jobs.jobs[0]
	if j.NodeID != n.ID || j.OwnerID != u || fmt.Sprint(j.Sizes) != "[500 250 100]" {
		t.Fatalf("bad job: %+v", j)
	}

	if _, err := f.svc.Create(ctx, u, CreateRequest{Name: "b.txt", Type: "file", Data: []byte("t")}); err != nil {
		t.Fatalf("create file: %v", err)
	}
	if len(f.jobs.jobs) != 1 {
		t.Fatalf("files must not enqueue jobs")
	}

	// enqueue failure does not fail the upload
	f.jobs.err = errors.New("queue down")
	if _, err := f.svc.Create(ctx, u, CreateRequest{Name: "c.png", Type: "image", Data: []byte("png")}); err != nil {
		t.Fatalf("enqueue failure must not fail upload: %v", err)
	}
}

func TestNamespace_GetAccess(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u1 := uuid.Must(uuid.NewV4())
	u2 := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	n, _ := f.svc.CreateContentNode(ctx, u1, "a.txt", model.KindFile, model.RootID, []byte("x"), false)

	if _, err := f.svc.Get(ctx, u1, n.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	for _, who := range []model.Identity{uuid.Nil, u2} {
		if _, err := f.svc.Get(ctx, who, n.ID); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("private node visible to %v: %v", who, err)
		}
	}
	if _, err := f.svc.Get(ctx, u1, uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing node: %v", err)
	}

	if _, err := f.svc.SetVisibility(ctx, u2, n.ID, true); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("non-owner SetVisibility: %v", err)
	}
	pub, err := f.svc.SetVisibility(ctx, u1, n.ID, true)
	if err != nil || !pub.IsPublic {
		t.Fatalf("publish: %+v %v", pub, err)
	}
	got, err := f.svc.Get(ctx, uuid.Nil, n.ID)
	if err != nil || got.ID != n.ID {
		t.Fatalf("anonymous get public: %v", err)
	}
	// idempotent
	if again, err := f.svc.SetVisibility(ctx, u1, n.ID, true); err != nil || !again.IsPublic {
		t.Fatalf("re-publish: %v", err)
	}
	if _, err := f.svc.SetVisibility(ctx, uuid.Nil, n.ID, false); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("anonymous SetVisibility: %v", err)
	}
}

func TestNamespace_ListPagination(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	parent, _ := f.svc.CreateFolder(ctx, u, "p", model.RootID, false)
	for i := range 25 {
		if _, err := f.svc.CreateFolder(ctx, u, fmt.Sprintf("f%02d", i), parent.ID.String(), false); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	_, _ = f.svc.CreateFolder(ctx, other, "foreign", model.RootID, false)

	for page, want := range []int{20, 5, 0} {
		got, err := f.svc.List(ctx, u, parent.ID.String(), page)
		if err != nil {
			t.Fatalf("List page %d: %v", page, err)
		}
		if len(got) != want {
			t.Fatalf("page %d: want %d got %d", page, want, len(got))
		}
	}
	first, _ := f.svc.List(ctx, u, parent.ID.String(), 0)
	again, _ := f.svc.List(ctx, u, parent.ID.String(), 0)
	for i := range first {
		if first[i].ID != again[i].ID {
			t.Fatalf("unstable order at %d", i)
		}
	}
	if first[0].Name != "f00" || first[19].Name != "f19" {
		t.Fatalf("not in creation order: %s..%s", first[0].Name, first[19].Name)
	}

	root, _ := f.svc.List(ctx, u, "", 0)
	if len(root) != 1 || root[0].ID != parent.ID {
		t.Fatalf("root listing must be owner-scoped: %+v", root)
	}
	if neg, err := f.svc.List(ctx, u, model.RootID, -1); err != nil || len(neg) != 0 {
		t.Fatalf("negative page: %v %v", neg, err)
	}
	for _, page := range []int{math.MaxInt/model.PageSize + 1, math.MaxInt} {
		huge, err := f.svc.List(ctx, u, model.RootID, page)
		if err != nil || huge == nil || len(huge) != 0 {
			t.Fatalf("page %d must be empty: %v %v", page, huge, err)
		}
	}
	if last, err := f.svc.List(ctx, u, model.RootID, math.MaxInt/model.PageSize); err != nil || len(last) != 0 {
		t.Fatalf("largest representable page: %v %v", last, err)
	}
	if _, err := f.svc.List(ctx, uuid.Nil, model.RootID, 0); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("anonymous list: %v", err)
	}
}

func TestNamespace_Content(t *testing.T) {
	t.Parallel()
	f := newNS(t)
	u := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	img, _ := f.svc.CreateContentNode(ctx, u, "a.png", model.KindImage, model.RootID, []byte("raw"), false)
	folder, _ := f.svc.CreateFolder(ctx, u, "d", model.RootID, false)

	data, mt, err := f.svc.Content(ctx, u, img.ID, 0)
	if err != nil || string(data) != "raw" || mt != "image/png" {
		t.Fatalf("raw content: %q %q %v", data, mt, err)
	}
	if _, _, err := f.svc.Content(ctx, u, img.ID, 300); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unsupported size: %v", err)
	}
	if _, _, err := f.svc.Content(ctx, u, img.ID, 250); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("derivative not yet generated: %v", err)
	}
	_, _, err = f.svc.Content(ctx, u, folder.ID, 0)
	wantValidation(t, err, "a folder doesn't have content")
	if _, _, err := f.svc.Content(ctx, uuid.Nil, img.ID, 0); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("anonymous read of private content: %v", err)
	}

	loc := blob.DerivedKey(img.Content.Location, 250)
	_ = f.blobs.Put(ctx, loc, []byte("small"))
	if err := f.store.Nodes().MergeDerivatives(ctx, u, img.ID, map[int]string{250: loc}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	data, _, err = f.svc.Content(ctx, u, img.ID, 250)
	if err != nil || string(data) != "small" {
		t.Fatalf("derivative content: %q %v", data, err)
	}
}

func TestMimeType(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"a.png":   "image/png",
		"b.jpg":   "image/jpeg",
		"noext":   "application/octet-stream",
		"x.weird": "application/octet-stream",
	}
	for name, want := range cases {
		if got := mimeType(name); got != want {
			t.Fatalf("%s: want %s got %s", name, want, got)
		}
	}
}
