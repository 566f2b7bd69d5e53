package credential

import "go.trai.ch/zerr"

// Type discriminates the concrete shape of a credential value. Every
// WriteRequest carries exactly one tag, bound at builder construction so
// that the tag and the stored value can never disagree.
type Type string

const (
	// TypeValue tags a simple string credential.
	TypeValue Type = "value"
	// TypeJSON tags an arbitrary structured credential.
	TypeJSON Type = "json"
	// TypePassword tags a password credential.
	TypePassword Type = "password"
	// TypeUser tags a username/password credential.
	TypeUser Type = "user"
	// TypeRSA tags an RSA key-pair credential.
	TypeRSA Type = "rsa"
	// TypeSSH tags an SSH key-pair credential.
	TypeSSH Type = "ssh"
	// TypeCertificate tags a certificate credential.
	TypeCertificate Type = "certificate"
)

// String returns the wire form of the tag.
func (t Type) String() string {
	return string(t)
}

// ParseType converts a string into a known credential Type.
// It returns ErrUnknownType for anything outside the supported set.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeValue, TypeJSON, TypePassword, TypeUser, TypeRSA, TypeSSH, TypeCertificate:
		return t, nil
	}
	return "", zerr.With(ErrUnknownType, "type", s)
}

// Value is a simple string credential.
type Value string

func (v Value) check() error {
	if v == "" {
		return ErrEmptyValue
	}
	return nil
}

// JSON is an arbitrary structured credential.
type JSON map[string]any

func (j JSON) check() error {
	if j == nil {
		return ErrNilJSON
	}
	return nil
}

// Password is a password credential.
type Password string

func (p Password) check() error {
	if p == "" {
		return ErrEmptyPassword
	}
	return nil
}

// User is a username/password credential.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u User) check() error {
	if u.Username == "" || u.Password == "" {
		return ErrIncompleteUser
	}
	return nil
}

// RSA is an RSA key-pair credential. At least one of the keys must be set.
type RSA struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func (r RSA) check() error {
	if r.PublicKey == "" && r.PrivateKey == "" {
		return ErrMissingKeyMaterial
	}
	return nil
}

// SSH is an SSH key-pair credential. At least one of the keys must be set.
type SSH struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func (s SSH) check() error {
	if s.PublicKey == "" && s.PrivateKey == "" {
		return ErrMissingKeyMaterial
	}
	return nil
}

// Certificate is a certificate credential. At least one of the fields must
// be set.
type Certificate struct {
	CA          string `json:"ca"`
	Certificate string `json:"certificate"`
	PrivateKey  string `json:"private_key"`
}

func (c Certificate) check() error {
	if c.CA == "" && c.Certificate == "" && c.PrivateKey == "" {
		return ErrMissingCertificateMaterial
	}
	return nil
}
