package credential

import "go.trai.ch/zerr"

var (
	// ErrMissingName is returned by Build when no credential name was set.
	ErrMissingName = zerr.New("credential name not set")

	// ErrMissingValue is returned by Build when no credential value was set.
	ErrMissingValue = zerr.New("credential value not set")

	// ErrUnknownType is returned when a value-type tag is not one of the
	// supported credential types.
	ErrUnknownType = zerr.New("unknown credential type")

	// ErrUnknownOperation is returned when a permission operation is not one
	// of the supported operations.
	ErrUnknownOperation = zerr.New("unknown permission operation")

	// ErrEmptyValue is returned when a value credential is empty.
	ErrEmptyValue = zerr.New("value credential must not be empty")

	// ErrNilJSON is returned when a json credential is nil.
	ErrNilJSON = zerr.New("json credential must not be nil")

	// ErrEmptyPassword is returned when a password credential is empty.
	ErrEmptyPassword = zerr.New("password credential must not be empty")

	// ErrIncompleteUser is returned when a user credential is missing the
	// username or the password.
	ErrIncompleteUser = zerr.New("user credential requires username and password")

	// ErrMissingKeyMaterial is returned when an rsa or ssh credential carries
	// neither a public nor a private key.
	ErrMissingKeyMaterial = zerr.New("key-pair credential requires a public or private key")

	// ErrMissingCertificateMaterial is returned when a certificate credential
	// carries no ca, certificate or private key.
	ErrMissingCertificateMaterial = zerr.New("certificate credential requires ca, certificate or private key")
)
