package user

import (
	"context"
	"time"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/common"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ resource.Resource                = &UserResource{}
	_ resource.ResourceWithImportState = &UserResource{}
)

const defaultTimeout = 5 * time.Minute

func NewUserResource() resource.Resource {
	return &UserResource{}
}

// UserResource defines the resource implementation.
type UserResource struct {
	provider *apiclient.HostConfig
}

func (r *UserResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_user"
}

func (r *UserResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = getSchema(ctx)
}

func (r *UserResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	data, diags := common.ProviderHostConfig(req.ProviderData)
	resp.Diagnostics.Append(diags...)
	if data == nil {
		return
	}

	r.provider = data
}

func (r *UserResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data UserResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventUser, telemetry.ModeCreate, nil)

	createTimeout, diags := data.Timeouts.Create(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	hostConfig := *r.provider
	request := data.Request()

	existing, err := apiclient.GetUser(ctx, hostConfig, request.Username)
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error checking user", err)...)
		return
	}
	if existing != nil {
		resp.Diagnostics.AddError("User already exists", "The user "+request.Username+" already exists, import it instead")
		return
	}

	if err := apiclient.CreateUser(ctx, hostConfig, request); err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error creating user", err)...)
		return
	}

	if data.Suspended.ValueBool() {
		if err := apiclient.SuspendUser(ctx, hostConfig, request.Username); err != nil {
			resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error suspending user", err)...)
			// If we have created the user we need to remove it
			_ = apiclient.DeleteUser(ctx, hostConfig, request.Username)
			return
		}
	}

	created, err := apiclient.GetUser(ctx, hostConfig, request.Username)
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error reading user", err)...)
		return
	}
	if created == nil {
		resp.Diagnostics.AddError("user was not found", "The user "+request.Username+" was not found after creation")
		return
	}

	resp.Diagnostics.Append(data.ApplyRecord(ctx, request.Username, created)...)
	tflog.Info(ctx, "Created user "+request.Username)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *UserResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data UserResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventUser, telemetry.ModeRead, nil)

	readTimeout, diags := data.Timeouts.Read(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	username := data.ID.ValueString()
	if username == "" {
		username = data.Username.ValueString()
	}

	record, err := apiclient.GetUser(ctx, *r.provider, username)
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error reading user", err)...)
		return
	}
	if record == nil {
		tflog.Info(ctx, "User "+username+" no longer exists, removing it from state")
		resp.State.RemoveResource(ctx)
		return
	}

	resp.Diagnostics.Append(data.ApplyRecord(ctx, username, record)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *UserResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data UserResourceModel
	var currentData UserResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &currentData)...)
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventUser, telemetry.ModeUpdate, nil)

	updateTimeout, diags := data.Timeouts.Update(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, updateTimeout)
	defer cancel()

	hostConfig := *r.provider
	username := currentData.Username.ValueString()

	if err := apiclient.UpdateUser(ctx, hostConfig, currentData.Request(), data.Request()); err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error updating user", err)...)
		return
	}

	if data.Suspended.ValueBool() != currentData.Suspended.ValueBool() {
		var err error
		if data.Suspended.ValueBool() {
			err = apiclient.SuspendUser(ctx, hostConfig, username)
		} else {
			err = apiclient.UnsuspendUser(ctx, hostConfig, username)
		}
		if err != nil {
			resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error changing user suspension", err)...)
			return
		}
	}

	record, err := apiclient.GetUser(ctx, hostConfig, username)
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error reading user", err)...)
		return
	}
	if record == nil {
		resp.State.RemoveResource(ctx)
		return
	}

	resp.Diagnostics.Append(data.ApplyRecord(ctx, username, record)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *UserResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data UserResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventUser, telemetry.ModeDestroy, nil)

	deleteTimeout, diags := data.Timeouts.Delete(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := apiclient.DeleteUser(ctx, *r.provider, data.Username.ValueString()); err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error deleting user", err)...)
		return
	}

	resp.State.RemoveResource(ctx)
}

func (r *UserResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	telemetry.Track(ctx, "", telemetry.EventUser, telemetry.ModeImport, nil)

	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("username"), types.StringValue(req.ID))...)
}
