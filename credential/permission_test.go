package credential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/credkit/credential"
)

func TestActorHelpers(t *testing.T) {
	assert.Equal(t, "mtls-app:app1", credential.AppActor("app1"))
	assert.Equal(t, "uaa-client:client1", credential.ClientActor("client1"))
	assert.Equal(t, "uaa-user:user1", credential.UserActor("user1"))
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    credential.Operation
		wantErr bool
	}{
		{name: "Read", input: "read", want: credential.OperationRead},
		{name: "Write", input: "write", want: credential.OperationWrite},
		{name: "Delete", input: "delete", want: credential.OperationDelete},
		{name: "Read ACL", input: "read_acl", want: credential.OperationReadACL},
		{name: "Write ACL", input: "write_acl", want: credential.OperationWriteACL},
		{name: "Unknown", input: "admin", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := credential.ParseOperation(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, credential.ErrUnknownOperation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"value", "json", "password", "user", "rsa", "ssh", "certificate"} {
		parsed, err := credential.ParseType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, parsed.String())
	}

	_, err := credential.ParseType("pkcs12")
	require.ErrorIs(t, err, credential.ErrUnknownType)
}

func TestPermission_Equal(t *testing.T) {
	p := credential.NewPermission("mtls-app:app1", credential.OperationRead, credential.OperationWrite)

	assert.True(t, p.Equal(credential.NewPermission("mtls-app:app1", credential.OperationRead, credential.OperationWrite)))
	assert.False(t, p.Equal(credential.NewPermission("mtls-app:app2", credential.OperationRead, credential.OperationWrite)))
	assert.False(t, p.Equal(credential.NewPermission("mtls-app:app1", credential.OperationWrite, credential.OperationRead)), "operation order is significant")
	assert.False(t, p.Equal(credential.NewPermission("mtls-app:app1", credential.OperationRead)))
}

func TestNewPermission_CopiesOperations(t *testing.T) {
	ops := []credential.Operation{credential.OperationRead}
	p := credential.NewPermission("mtls-app:app1", ops...)

	ops[0] = credential.OperationDelete
	assert.Equal(t, credential.OperationRead, p.Operations[0])
}
