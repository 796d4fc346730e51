// Package access decides who may read or mutate a namespace node.
package access

import (
	"github.com/gofrs/uuid/v5"

	"github.com/and161185/files-manager/internal/model"
)

// CanRead reports whether identity may see node. uuid.Nil is an anonymous caller.
func CanRead(identity model.Identity, node *model.Node) bool {
	if node == nil {
		return false
	}
	if node.IsPublic {
		return true
	}
	return identity != uuid.Nil && identity == node.Owner
}

// CanMutate reports whether identity may change node. Visibility never grants it.
func CanMutate(identity model.Identity, node *model.Node) bool {
	if node == nil || identity == uuid.Nil {
		return false
	}
	return identity == node.Owner
}
