package ssh

import (
	"context"
	"net"
	"testing"
	"time"

	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSshClientDefaults(t *testing.T) {
	client, err := NewSshClient("panel", "", SshAuthorization{User: "admin", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "22", client.Port)
	assert.True(t, client.UseSudo)
	assert.Equal(t, "panel:22", client.BaseAddress())
	assert.Equal(t, "admin", client.Username())
	assert.Equal(t, "secret", client.Password())

	root, err := NewSshClient("panel", "2222", SshAuthorization{User: "root", Password: "secret"})
	require.NoError(t, err)
	assert.False(t, root.UseSudo)
	assert.Equal(t, "panel:2222", root.BaseAddress())
}

func TestNewSshClientValidation(t *testing.T) {
	_, err := NewSshClient("", "22", SshAuthorization{User: "root"})
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))

	_, err = NewSshClient("panel", "22", SshAuthorization{})
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))

	_, err = NewSshClient("panel", "22", SshAuthorization{User: "root", PrivateKey: "not a key"})
	assert.Error(t, err)

	_, err = NewSshClient("panel", "22", SshAuthorization{User: "root", KeyFile: "/does/not/exist"})
	assert.Error(t, err)
}

func TestCommandLine(t *testing.T) {
	client, err := NewSshClient("panel", "22", SshAuthorization{User: "root", Password: "secret"})
	require.NoError(t, err)

	line, err := client.CommandLine(clientmodels.NewCommandRequest("v-list-users", "json"))
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/vesta/bin/v-list-users 'json'", line)

	line, err = client.CommandLine(clientmodels.NewCommandRequest("v-update-sys-queue"))
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/vesta/bin/v-update-sys-queue", line)

	client.UseSudo = true
	line, err = client.CommandLine(clientmodels.NewCommandRequest("v-change-user-password", "alice", "it's; reboot"))
	require.NoError(t, err)
	assert.Equal(t, `sudo -n /usr/local/vesta/bin/v-change-user-password 'alice' 'it'\''s; reboot'`, line)

	_, err = client.CommandLine(clientmodels.NewCommandRequest("v-list-users; reboot"))
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
}

func TestRunCommandConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	client, err := NewSshClient(host, port, SshAuthorization{User: "root", Password: "secret"})
	require.NoError(t, err)
	client.Timeout = time.Second

	_, err = client.RunCommand(context.Background(), clientmodels.NewCommandRequest("v-list-users", "json"))
	require.Error(t, err)
	assert.Equal(t, clientmodels.FailureConnection, clientmodels.KindOf(err))

	var cmdErr *clientmodels.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "v-list-users", cmdErr.Command)
}
