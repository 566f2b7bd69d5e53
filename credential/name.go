// Package credential models write requests for a CredHub-style secrets
// service: credential names, typed values, access-control permissions, and
// the fluent builders that assemble immutable requests. The package is
// purely in-memory; transport and wire handling belong to the caller.
package credential

import "strings"

// Name locates a credential within the secrets service. Implementations
// are opaque to this package; only the string form is ever consulted.
type Name interface {
	// Name returns the full string form of the credential name.
	Name() string
}

// RawName is a Name used verbatim, with no path structure imposed.
type RawName string

// Name returns the name unchanged.
func (n RawName) Name() string {
	return string(n)
}

// SimpleName is a Name assembled from path segments. The segments are
// joined with "/" and prefixed with a leading "/".
type SimpleName struct {
	segments []string
}

// NewSimpleName creates a SimpleName from the given path segments.
func NewSimpleName(segments ...string) SimpleName {
	s := make([]string, len(segments))
	copy(s, segments)
	return SimpleName{segments: s}
}

// Name returns the segments joined with "/" and a leading "/".
func (n SimpleName) Name() string {
	return "/" + strings.Join(n.segments, "/")
}

// String returns the same form as Name.
func (n SimpleName) String() string {
	return n.Name()
}
