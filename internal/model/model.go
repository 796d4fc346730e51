// Package model defines domain entities used by services and repositories.
package model

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Identity is the stable principal a session resolves to. uuid.Nil means anonymous.
type Identity = uuid.UUID

// RootID is the parent sentinel for top-level nodes.
const RootID = "0"

// PageSize is the fixed listing page size.
const PageSize = 20

// ThumbnailSizes are the derivative widths produced for every image, largest first.
var ThumbnailSizes = []int{500, 250, 100}

// IsThumbnailSize reports whether size is one of ThumbnailSizes.
func IsThumbnailSize(size int) bool { return slices.Contains(ThumbnailSizes, size) }

// User represents an account. Passwords are never stored in plaintext.
type User struct {
	ID        uuid.UUID
	Email     string // unique
	PwdHash   []byte // Argon2id(password, Salt)
	Salt      []byte // per-user salt
	CreatedAt time.Time
}

// Session binds an opaque token to an identity until ExpiresAt.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

// Kind discriminates the node variants.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}

// HasContent reports whether nodes of this kind carry stored bytes.
func (k Kind) HasContent() bool { return k == KindFile || k == KindImage }

// Content is the byte-storage part of file and image nodes.
type Content struct {
	Location    string         // opaque blob key
	Derivatives map[int]string // size -> blob key; images only, nil until generated
}

// Node is a folder, file or image in a user's namespace.
// Content is nil for folders.
type Node struct {
	ID        uuid.UUID
	Owner     Identity
	Name      string
	Kind      Kind
	ParentID  string // RootID or a folder id
	IsPublic  bool
	Content   *Content
	CreatedAt time.Time
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	c := *n
	if n.Content != nil {
		ct := *n.Content
		if n.Content.Derivatives != nil {
			ct.Derivatives = make(map[int]string, len(n.Content.Derivatives))
			for k, v := range n.Content.Derivatives {
				ct.Derivatives[k] = v
			}
		}
		c.Content = &ct
	}
	return &c
}

// JobStatus is the derivative job state.
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// DerivativeJob asks the pipeline to render Sizes for an image node.
type DerivativeJob struct {
	ID        int64
	NodeID    uuid.UUID
	OwnerID   uuid.UUID
	Sizes     []int
	Status    JobStatus
	Attempts  int
	LastError string
}
