package backup

import (
	"terraform-provider-vestacp/internal/apiclient"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// UserBackupRestoreResourceModel describes the resource data model.
type UserBackupRestoreResourceModel struct {
	ID         types.String   `tfsdk:"id"`
	Username   types.String   `tfsdk:"username"`
	BackupFile types.String   `tfsdk:"backup_file"`
	Web        types.String   `tfsdk:"web"`
	Dns        types.String   `tfsdk:"dns"`
	Mail       types.String   `tfsdk:"mail"`
	Db         types.String   `tfsdk:"db"`
	Cron       types.String   `tfsdk:"cron"`
	Udir       types.String   `tfsdk:"udir"`
	Notify     types.Bool     `tfsdk:"notify"`
	RemoteFile types.String   `tfsdk:"remote_file"`
	Timeouts   timeouts.Value `tfsdk:"timeouts"`
}

func (m *UserBackupRestoreResourceModel) Options() apiclient.RestoreOptions {
	return apiclient.RestoreOptions{
		Web:    m.Web.ValueString(),
		Dns:    m.Dns.ValueString(),
		Mail:   m.Mail.ValueString(),
		Db:     m.Db.ValueString(),
		Cron:   m.Cron.ValueString(),
		Udir:   m.Udir.ValueString(),
		Notify: m.Notify.ValueBool(),
	}
}
