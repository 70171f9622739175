package models

import (
	"terraform-provider-vestacp/internal/schemas/sshconnection"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

type VestaProviderModel struct {
	Url              types.String                 `tfsdk:"url"`
	Username         types.String                 `tfsdk:"username"`
	Password         types.String                 `tfsdk:"password"`
	ReturnCode       types.Bool                   `tfsdk:"return_code"`
	ListFormat       types.String                 `tfsdk:"list_format"`
	HostVerification types.String                 `tfsdk:"host_verification"`
	Timeout          types.String                 `tfsdk:"timeout"`
	Transport        types.String                 `tfsdk:"transport"`
	ValidateCommands types.Bool                   `tfsdk:"validate_commands"`
	SshConnection    *sshconnection.SshConnection `tfsdk:"ssh_connection"`
}
