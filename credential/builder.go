package credential

import "slices"

// WriteRequestBuilder accumulates the fields of a WriteRequest across
// fluent calls and produces a consistent request on Build. The zero value
// is not usable; obtain builders from the typed constructors below, which
// bind the value-type tag and the value check for one credential shape, so
// a built request can never pair a value with the wrong tag.
//
// A builder may be reused: mutating it after Build only affects requests
// built afterwards, never ones already returned. Builders are not safe for
// concurrent use from multiple goroutines.
type WriteRequestBuilder[T any] struct {
	name                  Name
	overwrite             bool
	valueType             Type
	value                 T
	valueSet              bool
	valueErr              error
	checkValue            func(T) error
	additionalPermissions []Permission
}

func newBuilder[T any](valueType Type, check func(T) error) *WriteRequestBuilder[T] {
	return &WriteRequestBuilder[T]{
		valueType:  valueType,
		checkValue: check,
	}
}

// NewValueWriteRequest creates a builder for a simple string credential.
func NewValueWriteRequest() *WriteRequestBuilder[Value] {
	return newBuilder(TypeValue, Value.check)
}

// NewJSONWriteRequest creates a builder for a structured credential.
func NewJSONWriteRequest() *WriteRequestBuilder[JSON] {
	return newBuilder(TypeJSON, JSON.check)
}

// NewPasswordWriteRequest creates a builder for a password credential.
func NewPasswordWriteRequest() *WriteRequestBuilder[Password] {
	return newBuilder(TypePassword, Password.check)
}

// NewUserWriteRequest creates a builder for a username/password credential.
func NewUserWriteRequest() *WriteRequestBuilder[User] {
	return newBuilder(TypeUser, User.check)
}

// NewRSAWriteRequest creates a builder for an RSA key-pair credential.
func NewRSAWriteRequest() *WriteRequestBuilder[RSA] {
	return newBuilder(TypeRSA, RSA.check)
}

// NewSSHWriteRequest creates a builder for an SSH key-pair credential.
func NewSSHWriteRequest() *WriteRequestBuilder[SSH] {
	return newBuilder(TypeSSH, SSH.check)
}

// NewCertificateWriteRequest creates a builder for a certificate credential.
func NewCertificateWriteRequest() *WriteRequestBuilder[Certificate] {
	return newBuilder(TypeCertificate, Certificate.check)
}

// Name sets the credential name. A nil name is a programmer error and
// panics immediately, before any builder state changes.
func (b *WriteRequestBuilder[T]) Name(name Name) *WriteRequestBuilder[T] {
	if name == nil {
		panic("credential: name must not be nil")
	}
	b.name = name
	return b
}

// Overwrite sets whether the service should overwrite an existing
// credential instead of creating a new one. The default is false.
func (b *WriteRequestBuilder[T]) Overwrite(overwrite bool) *WriteRequestBuilder[T] {
	b.overwrite = overwrite
	return b
}

// Value sets the credential value. The shape check bound at construction
// runs immediately; a rejected value is reported by Build and never
// reaches a built request.
func (b *WriteRequestBuilder[T]) Value(value T) *WriteRequestBuilder[T] {
	if err := b.checkValue(value); err != nil {
		b.valueErr = err
		return b
	}
	b.value = value
	b.valueSet = true
	b.valueErr = nil
	return b
}

// AdditionalPermission appends one permission to the set assigned
// alongside the write. The accumulator is allocated on first append.
func (b *WriteRequestBuilder[T]) AdditionalPermission(permission Permission) *WriteRequestBuilder[T] {
	b.additionalPermissions = append(b.additionalPermissions, permission)
	return b
}

// AdditionalPermissions appends the given permissions in order.
func (b *WriteRequestBuilder[T]) AdditionalPermissions(permissions ...Permission) *WriteRequestBuilder[T] {
	b.additionalPermissions = append(b.additionalPermissions, permissions...)
	return b
}

// emptyPermissions is shared by every request built without permissions.
var emptyPermissions = make([]Permission, 0)

// Build produces a WriteRequest from the accumulated fields. It returns
// ErrMissingName when no name was set, ErrMissingValue when no value was
// set, or the shape error recorded by a rejected Value call.
//
// The permission list is snapshotted: zero permissions yield a shared
// empty slice, exactly one yields a fresh single-element slice, and two or
// more yield a copy preserving insertion order. The built request never
// aliases the builder's own accumulator.
func (b *WriteRequestBuilder[T]) Build() (*WriteRequest[T], error) {
	if b.name == nil {
		return nil, ErrMissingName
	}
	if b.valueErr != nil {
		return nil, b.valueErr
	}
	if !b.valueSet {
		return nil, ErrMissingValue
	}

	var permissions []Permission
	switch len(b.additionalPermissions) {
	case 0:
		permissions = emptyPermissions
	case 1:
		permissions = []Permission{b.additionalPermissions[0]}
	default:
		permissions = slices.Clone(b.additionalPermissions)
	}

	return &WriteRequest[T]{
		name:                  b.name,
		overwrite:             b.overwrite,
		valueType:             b.valueType,
		value:                 b.value,
		additionalPermissions: permissions,
	}, nil
}
