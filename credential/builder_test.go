package credential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/credkit/credential"
)

func TestBuilder_RoundTrip(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		req, err := credential.NewValueWriteRequest().
			Name(credential.RawName("secret1")).
			Overwrite(false).
			Value("hunter2").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "secret1", req.Name())
		assert.False(t, req.Overwrite())
		assert.Equal(t, "value", req.Type())
		assert.Equal(t, credential.Value("hunter2"), req.Value())
		assert.Empty(t, req.AdditionalPermissions())
	})

	t.Run("JSON", func(t *testing.T) {
		value := credential.JSON{"client": "example", "secret": "s3cr3t"}
		req, err := credential.NewJSONWriteRequest().
			Name(credential.NewSimpleName("example", "json")).
			Overwrite(true).
			Value(value).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "/example/json", req.Name())
		assert.True(t, req.Overwrite())
		assert.Equal(t, "json", req.Type())
		assert.Equal(t, value, req.Value())
	})

	t.Run("User", func(t *testing.T) {
		req, err := credential.NewUserWriteRequest().
			Name(credential.NewSimpleName("example", "user")).
			Value(credential.User{Username: "me", Password: "pw"}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "user", req.Type())
		assert.Equal(t, "me", req.Value().Username)
	})

	t.Run("Certificate", func(t *testing.T) {
		req, err := credential.NewCertificateWriteRequest().
			Name(credential.NewSimpleName("example", "cert")).
			Value(credential.Certificate{CA: "ca-pem"}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "certificate", req.Type())
		assert.Equal(t, "ca-pem", req.Value().CA)
	})
}

func TestBuilder_NilNamePanics(t *testing.T) {
	b := credential.NewValueWriteRequest().
		Name(credential.RawName("before")).
		Value("v")

	require.Panics(t, func() {
		b.Name(nil)
	})

	// The failed call must not have disturbed previously accumulated state.
	req, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "before", req.Name())
	assert.Equal(t, credential.Value("v"), req.Value())
}

func TestBuilder_PermissionNormalization(t *testing.T) {
	p1 := credential.NewPermission(credential.AppActor("app1"), credential.OperationRead)
	p2 := credential.NewPermission(credential.ClientActor("client1"), credential.OperationWrite)
	p3 := credential.NewPermission(credential.UserActor("user1"), credential.OperationDelete)

	tests := []struct {
		name  string
		setup func(*credential.WriteRequestBuilder[credential.Value]) *credential.WriteRequestBuilder[credential.Value]
		want  []credential.Permission
	}{
		{
			name:  "Zero",
			setup: func(b *credential.WriteRequestBuilder[credential.Value]) *credential.WriteRequestBuilder[credential.Value] { return b },
			want:  []credential.Permission{},
		},
		{
			name: "One",
			setup: func(b *credential.WriteRequestBuilder[credential.Value]) *credential.WriteRequestBuilder[credential.Value] {
				return b.AdditionalPermission(p1)
			},
			want: []credential.Permission{p1},
		},
		{
			name: "Many preserves insertion order",
			setup: func(b *credential.WriteRequestBuilder[credential.Value]) *credential.WriteRequestBuilder[credential.Value] {
				return b.AdditionalPermission(p1).AdditionalPermission(p2).AdditionalPermissions(p3)
			},
			want: []credential.Permission{p1, p2, p3},
		},
		{
			name: "Duplicates preserved",
			setup: func(b *credential.WriteRequestBuilder[credential.Value]) *credential.WriteRequestBuilder[credential.Value] {
				return b.AdditionalPermissions(p1, p1)
			},
			want: []credential.Permission{p1, p1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := credential.NewValueWriteRequest().
				Name(credential.RawName("secret")).
				Value("v")
			req, err := tt.setup(b).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.AdditionalPermissions())
		})
	}
}

func TestBuilder_BuildIsolation(t *testing.T) {
	p1 := credential.NewPermission(credential.AppActor("app1"), credential.OperationRead)
	p2 := credential.NewPermission(credential.AppActor("app2"), credential.OperationWrite)

	b := credential.NewValueWriteRequest().
		Name(credential.RawName("secret")).
		Value("v").
		AdditionalPermissions(p1, p2)

	first, err := b.Build()
	require.NoError(t, err)

	// Mutating the builder afterwards must not leak into the built request.
	b.AdditionalPermission(credential.NewPermission(credential.AppActor("app3"), credential.OperationDelete))
	second, err := b.Build()
	require.NoError(t, err)

	assert.Len(t, first.AdditionalPermissions(), 2)
	assert.Len(t, second.AdditionalPermissions(), 3)
}

func TestBuilder_Reuse(t *testing.T) {
	b := credential.NewValueWriteRequest().
		Name(credential.RawName("secret")).
		Value("v1")

	first, err := b.Build()
	require.NoError(t, err)

	second, err := b.Value("v2").Overwrite(true).Build()
	require.NoError(t, err)

	assert.Equal(t, credential.Value("v1"), first.Value())
	assert.False(t, first.Overwrite())
	assert.Equal(t, credential.Value("v2"), second.Value())
	assert.True(t, second.Overwrite())
}

func TestBuilder_MissingFields(t *testing.T) {
	t.Run("Missing name", func(t *testing.T) {
		_, err := credential.NewValueWriteRequest().Value("v").Build()
		require.ErrorIs(t, err, credential.ErrMissingName)
	})

	t.Run("Missing value", func(t *testing.T) {
		_, err := credential.NewValueWriteRequest().Name(credential.RawName("secret")).Build()
		require.ErrorIs(t, err, credential.ErrMissingValue)
	})
}

func TestBuilder_RejectedValues(t *testing.T) {
	t.Run("Empty value", func(t *testing.T) {
		_, err := credential.NewValueWriteRequest().
			Name(credential.RawName("secret")).
			Value("").
			Build()
		require.ErrorIs(t, err, credential.ErrEmptyValue)
	})

	t.Run("Nil json", func(t *testing.T) {
		_, err := credential.NewJSONWriteRequest().
			Name(credential.RawName("secret")).
			Value(nil).
			Build()
		require.ErrorIs(t, err, credential.ErrNilJSON)
	})

	t.Run("Empty password", func(t *testing.T) {
		_, err := credential.NewPasswordWriteRequest().
			Name(credential.RawName("secret")).
			Value("").
			Build()
		require.ErrorIs(t, err, credential.ErrEmptyPassword)
	})

	t.Run("Incomplete user", func(t *testing.T) {
		_, err := credential.NewUserWriteRequest().
			Name(credential.RawName("secret")).
			Value(credential.User{Username: "me"}).
			Build()
		require.ErrorIs(t, err, credential.ErrIncompleteUser)
	})

	t.Run("Empty rsa", func(t *testing.T) {
		_, err := credential.NewRSAWriteRequest().
			Name(credential.RawName("secret")).
			Value(credential.RSA{}).
			Build()
		require.ErrorIs(t, err, credential.ErrMissingKeyMaterial)
	})

	t.Run("Empty ssh", func(t *testing.T) {
		_, err := credential.NewSSHWriteRequest().
			Name(credential.RawName("secret")).
			Value(credential.SSH{}).
			Build()
		require.ErrorIs(t, err, credential.ErrMissingKeyMaterial)
	})

	t.Run("Empty certificate", func(t *testing.T) {
		_, err := credential.NewCertificateWriteRequest().
			Name(credential.RawName("secret")).
			Value(credential.Certificate{}).
			Build()
		require.ErrorIs(t, err, credential.ErrMissingCertificateMaterial)
	})

	t.Run("Valid value after rejected value recovers", func(t *testing.T) {
		req, err := credential.NewValueWriteRequest().
			Name(credential.RawName("secret")).
			Value("").
			Value("ok").
			Build()
		require.NoError(t, err)
		assert.Equal(t, credential.Value("ok"), req.Value())
	})
}
