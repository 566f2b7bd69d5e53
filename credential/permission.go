package credential

import (
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Operation is a single right an actor may hold on a credential.
type Operation string

const (
	// OperationRead allows reading the credential value.
	OperationRead Operation = "read"
	// OperationWrite allows writing the credential value.
	OperationWrite Operation = "write"
	// OperationDelete allows deleting the credential.
	OperationDelete Operation = "delete"
	// OperationReadACL allows reading the credential's access-control list.
	OperationReadACL Operation = "read_acl"
	// OperationWriteACL allows modifying the credential's access-control list.
	OperationWriteACL Operation = "write_acl"
)

// ParseOperation converts a string into a known Operation.
// It returns ErrUnknownOperation for anything outside the supported set.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OperationRead, OperationWrite, OperationDelete, OperationReadACL, OperationWriteACL:
		return op, nil
	}
	return "", zerr.With(ErrUnknownOperation, "operation", s)
}

// Permission grants an actor a set of operations on a credential.
// Operations keep their insertion order and are never de-duplicated.
type Permission struct {
	Actor      string      `json:"actor"`
	Operations []Operation `json:"operations"`
}

// NewPermission creates a Permission for the given actor and operations.
func NewPermission(actor string, operations ...Operation) Permission {
	ops := make([]Operation, len(operations))
	copy(ops, operations)
	return Permission{Actor: actor, Operations: ops}
}

// AppActor returns the actor identity of an application authenticated via
// mutual TLS.
func AppActor(appID string) string {
	return "mtls-app:" + appID
}

// ClientActor returns the actor identity of an OAuth2 client.
func ClientActor(clientID string) string {
	return "uaa-client:" + clientID
}

// UserActor returns the actor identity of an OAuth2 user.
func UserActor(userID string) string {
	return "uaa-user:" + userID
}

// Equal reports whether two permissions carry the same actor and the same
// operations in the same order.
func (p Permission) Equal(other Permission) bool {
	return p.Actor == other.Actor && slices.Equal(p.Operations, other.Operations)
}

// hash returns a deterministic digest of the permission.
func (p Permission) hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(p.Actor)
	for _, op := range p.Operations {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(string(op))
	}
	return d.Sum64()
}
