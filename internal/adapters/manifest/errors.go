package manifest

import "go.trai.ch/zerr"

var (
	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrMissingCredentialName is returned when a manifest entry has no name.
	ErrMissingCredentialName = zerr.New("manifest entry is missing a credential name")

	// ErrMissingActor is returned when a permission entry has no actor.
	ErrMissingActor = zerr.New("permission entry is missing an actor")
)
