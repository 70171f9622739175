package command

import (
	"context"
	"time"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/common"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &CommandResource{}

const defaultTimeout = 5 * time.Minute

func NewCommandResource() resource.Resource {
	return &CommandResource{}
}

// CommandResource defines the resource implementation.
type CommandResource struct {
	provider *apiclient.HostConfig
}

func (r *CommandResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_command"
}

func (r *CommandResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = getSchema(ctx)
}

func (r *CommandResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	data, diags := common.ProviderHostConfig(req.ProviderData)
	resp.Diagnostics.Append(diags...)
	if data == nil {
		return
	}

	r.provider = data
}

func (r *CommandResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data CommandResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventCommand, telemetry.ModeCreate, map[string]interface{}{
		"command": data.Command.ValueString(),
	})

	createTimeout, diags := data.Timeouts.Create(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	request, diags := data.Request(ctx)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	request.ReturnCode = r.provider.ReturnCode

	response, err := apiclient.ExecuteRequest(ctx, *r.provider, request)
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error running "+request.Command, err)...)
		return
	}

	data.ID = types.StringValue(uuid.NewString())
	data.ApplyResponse(response)
	tflog.Info(ctx, "Ran "+request.Command+" as "+data.ID.ValueString())

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// Read keeps the state, a command run cannot be observed afterwards.
func (r *CommandResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data CommandResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// Update only sees changes to attributes that do not rerun the command.
func (r *CommandResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data CommandResourceModel
	var currentData CommandResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &currentData)...)
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	data.ID = currentData.ID
	data.Output = currentData.Output
	data.ReturnCode = currentData.ReturnCode

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *CommandResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data CommandResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	request, diags := data.DestroyRequest(ctx)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() || request == nil {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventCommand, telemetry.ModeDestroy, map[string]interface{}{
		"command": request.Command,
	})

	deleteTimeout, diags := data.Timeouts.Delete(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	request.ReturnCode = r.provider.ReturnCode
	if _, err := apiclient.ExecuteRequest(ctx, *r.provider, *request); err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error running "+request.Command, err)...)
		return
	}

	tflog.Info(ctx, "Ran destroy command "+request.Command)
}
