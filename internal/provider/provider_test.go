package provider

import (
	"context"
	"testing"
	"time"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/helpers"
	"terraform-provider-vestacp/internal/models"
	"terraform-provider-vestacp/internal/schemas/sshconnection"

	fwprovider "github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestBuildHostConfigDefaults(t *testing.T) {
	config := models.VestaProviderModel{
		Url:      types.StringValue("panel.example.com"),
		Username: types.StringValue("admin"),
		Password: types.StringValue("secret"),
	}

	hostConfig, diags := BuildHostConfig(config, env(nil))
	require.False(t, diags.HasError(), diags)

	assert.Equal(t, "https://panel.example.com:8083/api/", hostConfig.Url())
	assert.True(t, hostConfig.ReturnCode)
	assert.Equal(t, "json", hostConfig.GetListFormat())
	assert.Equal(t, helpers.HostVerificationStrict, hostConfig.HostVerification)
	assert.Equal(t, 15*time.Second, hostConfig.Timeout)
	assert.Equal(t, apiclient.TransportApi, hostConfig.GetTransport())
	assert.Nil(t, hostConfig.Ssh)
}

func TestBuildHostConfigEnvironmentFallback(t *testing.T) {
	config := models.VestaProviderModel{
		Url:      types.StringNull(),
		Username: types.StringNull(),
		Password: types.StringValue("from-config"),
	}

	hostConfig, diags := BuildHostConfig(config, env(map[string]string{
		"VESTACP_URL":      "http://10.0.0.1:8083/api/",
		"VESTACP_USERNAME": "admin",
		"VESTACP_PASSWORD": "from-env",
	}))
	require.False(t, diags.HasError(), diags)

	assert.Equal(t, "http://10.0.0.1:8083/api/", hostConfig.Url())
	assert.Equal(t, "admin", hostConfig.Username)
	assert.Equal(t, "from-config", hostConfig.Password)
}

func TestBuildHostConfigOverrides(t *testing.T) {
	config := models.VestaProviderModel{
		Url:              types.StringValue("https://panel:9000/api/"),
		Username:         types.StringValue("admin"),
		Password:         types.StringValue("secret"),
		ReturnCode:       types.BoolValue(false),
		ListFormat:       types.StringValue("shell"),
		HostVerification: types.StringValue("none"),
		Timeout:          types.StringValue("1m"),
		ValidateCommands: types.BoolValue(true),
	}

	hostConfig, diags := BuildHostConfig(config, env(nil))
	require.False(t, diags.HasError(), diags)

	assert.False(t, hostConfig.ReturnCode)
	assert.Equal(t, "shell", hostConfig.ListFormat)
	assert.Equal(t, helpers.HostVerificationNone, hostConfig.HostVerification)
	assert.Equal(t, time.Minute, hostConfig.Timeout)
	assert.True(t, hostConfig.ValidateCommands)
}

func TestBuildHostConfigInvalidTimeout(t *testing.T) {
	config := models.VestaProviderModel{
		Url:      types.StringValue("panel"),
		Username: types.StringValue("admin"),
		Password: types.StringValue("secret"),
		Timeout:  types.StringValue("soon"),
	}

	_, diags := BuildHostConfig(config, env(nil))
	assert.True(t, diags.HasError())
}

func TestBuildHostConfigTimeoutInSeconds(t *testing.T) {
	config := models.VestaProviderModel{
		Url:      types.StringValue("panel"),
		Username: types.StringValue("admin"),
		Password: types.StringValue("secret"),
		Timeout:  types.StringValue("90"),
	}

	hostConfig, diags := BuildHostConfig(config, env(nil))
	require.False(t, diags.HasError(), diags)
	assert.Equal(t, 90*time.Second, hostConfig.Timeout)
}

func TestBuildHostConfigMissingCredentials(t *testing.T) {
	config := models.VestaProviderModel{
		Url: types.StringValue("panel"),
	}

	_, diags := BuildHostConfig(config, env(nil))
	require.True(t, diags.HasError())
	assert.Contains(t, diags.Errors()[0].Detail(), "username")
	assert.Contains(t, diags.Errors()[0].Detail(), "password")
}

func TestBuildHostConfigSshTransport(t *testing.T) {
	config := models.VestaProviderModel{
		Transport: types.StringValue("ssh"),
		SshConnection: &sshconnection.SshConnection{
			Host:       types.StringValue("10.0.0.1"),
			HostPort:   types.StringValue("2222"),
			User:       types.StringValue("admin"),
			Password:   types.StringValue("secret"),
			PrivateKey: types.StringNull(),
			KeyFile:    types.StringNull(),
		},
	}

	hostConfig, diags := BuildHostConfig(config, env(nil))
	require.False(t, diags.HasError(), diags)

	require.NotNil(t, hostConfig.Ssh)
	assert.Equal(t, "10.0.0.1", hostConfig.Ssh.Host)
	assert.Equal(t, "2222", hostConfig.Ssh.Port)
	assert.Equal(t, "admin", hostConfig.Ssh.Authorization.User)
	assert.Equal(t, "secret", hostConfig.Ssh.Authorization.Password)
}

func TestProviderMetadataAndSchema(t *testing.T) {
	p := New("test")()

	metadata := &fwprovider.MetadataResponse{}
	p.Metadata(context.Background(), fwprovider.MetadataRequest{}, metadata)
	assert.Equal(t, "vestacp", metadata.TypeName)
	assert.Equal(t, "test", metadata.Version)

	schemaResponse := &fwprovider.SchemaResponse{}
	p.Schema(context.Background(), fwprovider.SchemaRequest{}, schemaResponse)
	assert.False(t, schemaResponse.Diagnostics.HasError())
	for _, name := range []string{"url", "username", "password", "return_code", "list_format", "host_verification", "timeout", "transport", "validate_commands"} {
		assert.Contains(t, schemaResponse.Schema.Attributes, name)
	}
	assert.Contains(t, schemaResponse.Schema.Blocks, "ssh_connection")

	assert.Len(t, p.Resources(context.Background()), 3)
	assert.Len(t, p.DataSources(context.Background()), 3)
}
