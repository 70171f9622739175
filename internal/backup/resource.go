package backup

import (
	"context"
	"path/filepath"
	"time"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/common"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &UserBackupRestoreResource{}

const defaultTimeout = 60 * time.Minute

func NewUserBackupRestoreResource() resource.Resource {
	return &UserBackupRestoreResource{}
}

// UserBackupRestoreResource defines the resource implementation.
type UserBackupRestoreResource struct {
	provider *apiclient.HostConfig
}

func (r *UserBackupRestoreResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_user_backup_restore"
}

func (r *UserBackupRestoreResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = getSchema(ctx)
}

func (r *UserBackupRestoreResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	data, diags := common.ProviderHostConfig(req.ProviderData)
	resp.Diagnostics.Append(diags...)
	if data == nil {
		return
	}

	r.provider = data
}

func (r *UserBackupRestoreResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data UserBackupRestoreResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetry.Track(ctx, r.provider.Username, telemetry.EventBackupRestore, telemetry.ModeCreate, nil)

	createTimeout, diags := data.Timeouts.Create(ctx, defaultTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	if r.provider.Ssh == nil {
		resp.Diagnostics.AddError("ssh connection is required", "Restoring a backup uploads the archive over sftp, set the provider ssh_connection block")
		return
	}

	username := data.Username.ValueString()
	remoteFile, err := apiclient.RestoreUserBackup(ctx, *r.provider, username, data.BackupFile.ValueString(), data.Options())
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error restoring backup", err)...)
		return
	}

	data.ID = types.StringValue(username + ":" + filepath.Base(remoteFile))
	data.RemoteFile = types.StringValue(remoteFile)
	tflog.Info(ctx, "Restored backup "+remoteFile)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// Read keeps the state, a restore is a one off action.
func (r *UserBackupRestoreResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data UserBackupRestoreResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *UserBackupRestoreResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data UserBackupRestoreResourceModel
	var currentData UserBackupRestoreResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &currentData)...)
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	data.ID = currentData.ID
	data.RemoteFile = currentData.RemoteFile

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// Delete forgets the restore, the restored data stays on the panel.
func (r *UserBackupRestoreResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	telemetry.Track(ctx, r.provider.Username, telemetry.EventBackupRestore, telemetry.ModeDestroy, nil)
	resp.State.RemoveResource(ctx)
}
