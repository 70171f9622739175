package command

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/catalog"
	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/common"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
)

var (
	_ datasource.DataSource              = &CommandDataSource{}
	_ datasource.DataSourceWithConfigure = &CommandDataSource{}
)

func NewCommandDataSource() datasource.DataSource {
	return &CommandDataSource{}
}

type CommandDataSource struct {
	provider *apiclient.HostConfig
}

func (d *CommandDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	data, diags := common.ProviderHostConfig(req.ProviderData)
	resp.Diagnostics.Append(diags...)
	if data == nil {
		return
	}

	d.provider = data
}

func (d *CommandDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_command"
}

func (d *CommandDataSource) Schema(_ context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = commandDataSourceSchema
}

func (d *CommandDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data CommandDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	command := data.Command.ValueString()
	telemetry.Track(ctx, d.provider.Username, telemetry.EventCommand, telemetry.ModeRead, map[string]interface{}{
		"command": command,
	})

	arguments, diags := listToStrings(ctx, data.Arguments)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	if entry, known := catalog.Default().Lookup(command); known && entry.IsListing() {
		withFormat, err := apiclient.WithListFormat(*d.provider, command, arguments)
		if err != nil {
			resp.Diagnostics.AddAttributeError(path.Root("arguments"), "Invalid arguments", err.Error())
			return
		}
		arguments = withFormat
	}

	// the answer is the output, so no return code is requested
	response, err := apiclient.ExecuteRequest(ctx, *d.provider, clientmodels.NewCommandRequest(command, arguments...))
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error running "+command, err)...)
		return
	}
	data.ApplyResponse(response)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
