package manifest

import "gopkg.in/yaml.v3"

// File represents the structure of a credentials.yaml manifest file.
type File struct {
	Version     string          `yaml:"version"`
	Credentials []CredentialDTO `yaml:"credentials"`
}

// CredentialDTO represents one credential entry in the manifest.
// The value is kept as a raw node because its shape depends on the type tag.
type CredentialDTO struct {
	Name        string          `yaml:"name"`
	Type        string          `yaml:"type"`
	Overwrite   bool            `yaml:"overwrite"`
	Value       yaml.Node       `yaml:"value"`
	Permissions []PermissionDTO `yaml:"permissions"`
}

// PermissionDTO represents an access-control entry in the manifest.
type PermissionDTO struct {
	Actor      string   `yaml:"actor"`
	Operations []string `yaml:"operations"`
}

// userDTO is the manifest shape of a user credential value.
type userDTO struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// keyPairDTO is the manifest shape of an rsa or ssh credential value.
type keyPairDTO struct {
	PublicKey  string `yaml:"public_key"`
	PrivateKey string `yaml:"private_key"`
}

// certificateDTO is the manifest shape of a certificate credential value.
type certificateDTO struct {
	CA          string `yaml:"ca"`
	Certificate string `yaml:"certificate"`
	PrivateKey  string `yaml:"private_key"`
}
