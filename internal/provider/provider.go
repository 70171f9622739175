package provider

import (
	"context"
	"os"
	"strings"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/backup"
	"terraform-provider-vestacp/internal/command"
	"terraform-provider-vestacp/internal/constants"
	"terraform-provider-vestacp/internal/helpers"
	"terraform-provider-vestacp/internal/models"
	"terraform-provider-vestacp/internal/schemas/sshconnection"
	"terraform-provider-vestacp/internal/telemetry"
	"terraform-provider-vestacp/internal/user"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure the implementation satisfies the expected interfaces.
var (
	_ provider.Provider = &VestaProvider{}
)

// New is a helper function to simplify provider server and testing implementation.
func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &VestaProvider{
			version: version,
		}
	}
}

// VestaProvider is the provider implementation.
type VestaProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// Metadata returns the provider type name.
func (p *VestaProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "vestacp"
	resp.Version = p.version
}

// Schema defines the provider-level schema for configuration data.
func (p *VestaProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Manages a VestaCP hosting panel through its command api",
		Blocks: map[string]schema.Block{
			sshconnection.SchemaName: sshconnection.SchemaBlockV0,
		},
		Attributes: map[string]schema.Attribute{
			"url": schema.StringAttribute{
				MarkdownDescription: "Panel api url or host, a bare host becomes `https://host:8083/api/`. Can be set with `" + constants.EnvUrl + "`",
				Optional:            true,
			},
			"username": schema.StringAttribute{
				MarkdownDescription: "Panel admin user. Can be set with `" + constants.EnvUsername + "`",
				Optional:            true,
			},
			"password": schema.StringAttribute{
				MarkdownDescription: "Panel admin password. Can be set with `" + constants.EnvPassword + "`",
				Optional:            true,
				Sensitive:           true,
			},
			"return_code": schema.BoolAttribute{
				MarkdownDescription: "Ask the panel for numeric return codes instead of text answers, defaults to true",
				Optional:            true,
			},
			"list_format": schema.StringAttribute{
				MarkdownDescription: "Output format of listing commands, defaults to json",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(apiclient.ListFormats...),
				},
			},
			"host_verification": schema.StringAttribute{
				MarkdownDescription: "Host name verification for https urls, `strict` or `none`, defaults to strict",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(string(helpers.HostVerificationStrict), string(helpers.HostVerificationNone)),
				},
			},
			"timeout": schema.StringAttribute{
				MarkdownDescription: "Request timeout as a duration or a number of seconds, defaults to 15s",
				Optional:            true,
			},
			"transport": schema.StringAttribute{
				MarkdownDescription: "How commands reach the panel: `api`, `ssh` or `local`, defaults to api",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(string(apiclient.TransportApi), string(apiclient.TransportSsh), string(apiclient.TransportLocal)),
				},
			},
			"validate_commands": schema.BoolAttribute{
				MarkdownDescription: "Check command names and argument counts against the known command list before sending",
				Optional:            true,
			},
		},
	}
}

func (p *VestaProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var config models.VestaProviderModel
	diags := req.Config.Get(ctx, &config)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	if config.Url.IsUnknown() {
		resp.Diagnostics.AddAttributeError(
			path.Root("url"),
			"Unknown VestaCP url",
			"The provider cannot connect to the panel while the url is unknown. Set it statically or use the "+constants.EnvUrl+" environment variable",
		)
	}
	if config.Username.IsUnknown() {
		resp.Diagnostics.AddAttributeError(path.Root("username"), "Unknown VestaCP username", "Set the username statically or use the "+constants.EnvUsername+" environment variable")
	}
	if config.Password.IsUnknown() {
		resp.Diagnostics.AddAttributeError(path.Root("password"), "Unknown VestaCP password", "Set the password statically or use the "+constants.EnvPassword+" environment variable")
	}
	if resp.Diagnostics.HasError() {
		return
	}

	hostConfig, diags := BuildHostConfig(config, os.LookupEnv)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx = tflog.SetField(ctx, "vestacp_url", hostConfig.Url())
	ctx = tflog.SetField(ctx, "vestacp_transport", string(hostConfig.GetTransport()))
	tflog.Debug(ctx, "Configured VestaCP provider")

	telemetry.VERSION = p.version

	resp.DataSourceData = &hostConfig
	resp.ResourceData = &hostConfig
}

// BuildHostConfig resolves the provider configuration, falling back to the
// environment for the connection settings.
func BuildHostConfig(config models.VestaProviderModel, lookupEnv func(string) (string, bool)) (apiclient.HostConfig, diag.Diagnostics) {
	var diags diag.Diagnostics

	hostConfig := apiclient.NewHostConfig(
		valueOrEnv(config.Url.ValueString(), constants.EnvUrl, lookupEnv),
		valueOrEnv(config.Username.ValueString(), constants.EnvUsername, lookupEnv),
		valueOrEnv(config.Password.ValueString(), constants.EnvPassword, lookupEnv),
	)

	if !config.ReturnCode.IsNull() && !config.ReturnCode.IsUnknown() {
		hostConfig.ReturnCode = config.ReturnCode.ValueBool()
	}
	if config.ListFormat.ValueString() != "" {
		hostConfig.ListFormat = config.ListFormat.ValueString()
	}
	if config.HostVerification.ValueString() != "" {
		hostConfig.HostVerification = helpers.HostVerification(config.HostVerification.ValueString())
	}
	if config.Transport.ValueString() != "" {
		hostConfig.Transport = apiclient.Transport(config.Transport.ValueString())
	}
	hostConfig.ValidateCommands = config.ValidateCommands.ValueBool()

	if config.Timeout.ValueString() != "" {
		timeout, err := helpers.ParseTimeout(config.Timeout.ValueString())
		if err != nil {
			diags.AddAttributeError(path.Root("timeout"), "Invalid timeout", err.Error())
		} else {
			hostConfig.Timeout = timeout
		}
	}

	if config.SshConnection != nil {
		hostConfig.Ssh = &apiclient.SshConfig{
			Host:          config.SshConnection.Host.ValueString(),
			Port:          config.SshConnection.HostPort.ValueString(),
			Authorization: config.SshConnection.Authorization(),
		}
	}

	if diags.HasError() {
		return hostConfig, diags
	}

	if err := hostConfig.Validate(); err != nil {
		diags.AddError("Invalid VestaCP provider configuration", err.Error())
	}

	return hostConfig, diags
}

func valueOrEnv(value, key string, lookupEnv func(string) (string, bool)) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	if lookupEnv == nil {
		return ""
	}
	if env, ok := lookupEnv(key); ok {
		return env
	}
	return ""
}

// DataSources defines the data sources implemented in the provider.
func (p *VestaProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		user.NewUserDataSource,
		user.NewUsersDataSource,
		command.NewCommandDataSource,
	}
}

// Resources defines the resources implemented in the provider.
func (p *VestaProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		user.NewUserResource,
		command.NewCommandResource,
		backup.NewUserBackupRestoreResource,
	}
}
