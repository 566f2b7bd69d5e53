package ports

import (
	"encoding/json"

	"go.trai.ch/credkit/credential"
)

// Request is the read surface common to every built write request,
// independent of its concrete value shape.
type Request interface {
	json.Marshaler

	// Name returns the string form of the credential name.
	Name() string

	// Type returns the value-type discriminator.
	Type() string

	// Overwrite reports whether an existing credential should be overwritten.
	Overwrite() bool

	// AdditionalPermissions returns the permissions assigned alongside the write.
	AdditionalPermissions() []credential.Permission
}

// ManifestLoader loads credential write requests from a manifest file.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path and returns the built write requests
	// in manifest order.
	Load(path string) ([]Request, error)
}
