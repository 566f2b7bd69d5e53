package credential

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// WriteRequest is an immutable snapshot of one credential write intent:
// create a new credential or overwrite an existing one. Instances are
// produced exclusively by WriteRequestBuilder.Build and expose no setters.
//
// The request shares the Name and value graphs handed to the builder; it
// does not copy them. A caller that mutates a value object after building
// will observe that mutation through the request.
type WriteRequest[T any] struct {
	name                  Name
	overwrite             bool
	valueType             Type
	value                 T
	additionalPermissions []Permission
}

// Overwrite reports whether the service should overwrite an existing
// credential instead of creating a new one.
func (r *WriteRequest[T]) Overwrite() bool {
	return r.overwrite
}

// Name returns the string form of the credential name.
func (r *WriteRequest[T]) Name() string {
	return r.name.Name()
}

// Value returns the credential value.
func (r *WriteRequest[T]) Value() T {
	return r.value
}

// Type returns the string discriminator of the credential value shape.
func (r *WriteRequest[T]) Type() string {
	return r.valueType.String()
}

// AdditionalPermissions returns the permissions to assign alongside the
// write, in insertion order. The returned slice is a read-only view and
// must not be mutated by the caller.
func (r *WriteRequest[T]) AdditionalPermissions() []Permission {
	return r.additionalPermissions
}

// Equal reports whether two requests carry the same name, overwrite flag,
// value type, value and permissions. Names compare by their string form,
// permissions element-wise in order.
func (r *WriteRequest[T]) Equal(other *WriteRequest[T]) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.overwrite != other.overwrite {
		return false
	}
	if r.name.Name() != other.name.Name() {
		return false
	}
	if r.valueType != other.valueType {
		return false
	}
	if !reflect.DeepEqual(r.value, other.value) {
		return false
	}
	return slices.EqualFunc(r.additionalPermissions, other.additionalPermissions, Permission.Equal)
}

// hashMultiplier folds the per-field digests into the request hash.
const hashMultiplier = 31

// Hash returns a deterministic digest of the request. It starts from the
// overwrite flag and successively folds in a digest of each remaining
// field with a fixed multiplier, so requests that compare Equal always
// hash identically.
func (r *WriteRequest[T]) Hash() uint64 {
	var h uint64
	if r.overwrite {
		h = 1
	}
	h = h*hashMultiplier + xxhash.Sum64String(r.name.Name())
	h = h*hashMultiplier + xxhash.Sum64String(string(r.valueType))
	h = h*hashMultiplier + hashValue(r.value)
	for _, p := range r.additionalPermissions {
		h = h*hashMultiplier + p.hash()
	}
	return h
}

// hashValue digests an arbitrary credential value. JSON encoding is used
// as the canonical byte form because it sorts map keys deterministically.
func hashValue(v any) uint64 {
	b, err := json.Marshal(v)
	if err != nil {
		return xxhash.Sum64String(fmt.Sprintf("%v", v))
	}
	return xxhash.Sum64(b)
}

// String returns a human-readable dump of all fields. It is meant for
// diagnostics only and is not a wire format.
func (r *WriteRequest[T]) String() string {
	return fmt.Sprintf(
		"WriteRequest{overwrite=%t, name=%s, valueType=%s, value=%v, additionalPermissions=%v}",
		r.overwrite, r.name.Name(), r.valueType, r.value, r.additionalPermissions,
	)
}

// wireRequest carries the field presentation names the secrets service
// expects. additional_permissions is omitted entirely when empty; name is
// always emitted.
type wireRequest[T any] struct {
	Overwrite             bool         `json:"overwrite"`
	Name                  string       `json:"name"`
	Value                 T            `json:"value"`
	Type                  string       `json:"type"`
	AdditionalPermissions []Permission `json:"additional_permissions,omitempty"`
}

// MarshalJSON renders the request with snake_case wire field names.
func (r *WriteRequest[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRequest[T]{
		Overwrite:             r.overwrite,
		Name:                  r.name.Name(),
		Value:                 r.value,
		Type:                  r.valueType.String(),
		AdditionalPermissions: r.additionalPermissions,
	})
}
