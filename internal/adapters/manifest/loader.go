// Package manifest provides the YAML credential-manifest loader for credkit.
package manifest

import (
	"fmt"
	"os"

	"go.trai.ch/credkit/credential"
	"go.trai.ch/credkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// manifestVersion is the manifest schema version this loader understands.
const manifestVersion = "1"

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads a manifest file from the given path and returns the built
// write requests in manifest order.
func (l *Loader) Load(path string) ([]ports.Request, error) {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "manifest", path)
	}

	if file.Version != "" && file.Version != manifestVersion {
		l.Logger.Warn(fmt.Sprintf("manifest %s declares version %q, treating as version %s", path, file.Version, manifestVersion))
	}
	if len(file.Credentials) == 0 {
		l.Logger.Warn(fmt.Sprintf("manifest %s contains no credentials", path))
	}

	requests := make([]ports.Request, 0, len(file.Credentials))
	for i := range file.Credentials {
		dto := &file.Credentials[i]
		req, err := l.buildRequest(dto)
		if err != nil {
			err = zerr.With(err, "credential", dto.Name)
			return nil, zerr.With(err, "manifest", path)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// buildRequest dispatches a manifest entry to the builder matching its
// type tag. Builder errors propagate unchanged so callers can test them
// with errors.Is.
func (l *Loader) buildRequest(dto *CredentialDTO) (ports.Request, error) {
	if dto.Name == "" {
		return nil, ErrMissingCredentialName
	}

	credType, err := credential.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	permissions, err := mapPermissions(dto.Permissions)
	if err != nil {
		return nil, err
	}

	hasValue := !dto.Value.IsZero()

	switch credType {
	case credential.TypeValue:
		var s string
		if err := decodeValue(hasValue, &dto.Value, &s); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewValueWriteRequest(), credential.Value(s), hasValue)

	case credential.TypeJSON:
		var m map[string]any
		if err := decodeValue(hasValue, &dto.Value, &m); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewJSONWriteRequest(), credential.JSON(m), hasValue)

	case credential.TypePassword:
		var s string
		if err := decodeValue(hasValue, &dto.Value, &s); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewPasswordWriteRequest(), credential.Password(s), hasValue)

	case credential.TypeUser:
		var u userDTO
		if err := decodeValue(hasValue, &dto.Value, &u); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewUserWriteRequest(),
			credential.User{Username: u.Username, Password: u.Password}, hasValue)

	case credential.TypeRSA:
		var kp keyPairDTO
		if err := decodeValue(hasValue, &dto.Value, &kp); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewRSAWriteRequest(),
			credential.RSA{PublicKey: kp.PublicKey, PrivateKey: kp.PrivateKey}, hasValue)

	case credential.TypeSSH:
		var kp keyPairDTO
		if err := decodeValue(hasValue, &dto.Value, &kp); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewSSHWriteRequest(),
			credential.SSH{PublicKey: kp.PublicKey, PrivateKey: kp.PrivateKey}, hasValue)

	case credential.TypeCertificate:
		var c certificateDTO
		if err := decodeValue(hasValue, &dto.Value, &c); err != nil {
			return nil, err
		}
		return finishBuild(dto, permissions, credential.NewCertificateWriteRequest(),
			credential.Certificate{CA: c.CA, Certificate: c.Certificate, PrivateKey: c.PrivateKey}, hasValue)

	default:
		return nil, zerr.With(credential.ErrUnknownType, "type", dto.Type)
	}
}

// finishBuild applies the shared manifest fields and builds the request.
// The value is only applied when the manifest actually carried one, so a
// missing value surfaces as the builder's own error.
func finishBuild[T any](
	dto *CredentialDTO,
	permissions []credential.Permission,
	b *credential.WriteRequestBuilder[T],
	value T,
	hasValue bool,
) (ports.Request, error) {
	b.Name(credential.RawName(dto.Name)).
		Overwrite(dto.Overwrite).
		AdditionalPermissions(permissions...)
	if hasValue {
		b.Value(value)
	}
	return b.Build()
}

// decodeValue decodes the raw value node into the shape the type tag expects.
func decodeValue[T any](hasValue bool, node *yaml.Node, target *T) error {
	if !hasValue {
		return nil
	}
	if err := node.Decode(target); err != nil {
		return zerr.Wrap(err, ErrManifestParseFailed.Error())
	}
	return nil
}

// mapPermissions converts manifest permission entries into domain permissions.
func mapPermissions(dtos []PermissionDTO) ([]credential.Permission, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	permissions := make([]credential.Permission, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Actor == "" {
			return nil, ErrMissingActor
		}

		operations := make([]credential.Operation, 0, len(dto.Operations))
		for _, raw := range dto.Operations {
			op, err := credential.ParseOperation(raw)
			if err != nil {
				return nil, zerr.With(err, "actor", dto.Actor)
			}
			operations = append(operations, op)
		}

		permissions = append(permissions, credential.NewPermission(dto.Actor, operations...))
	}

	return permissions, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path comes from the command line, reading it is the point
	raw, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, ErrManifestReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(raw, target); parseErr != nil {
		return zerr.Wrap(parseErr, ErrManifestParseFailed.Error())
	}

	return nil
}
