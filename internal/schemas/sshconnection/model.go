package sshconnection

import (
	"terraform-provider-vestacp/internal/ssh"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

type SshConnection struct {
	Host       types.String `tfsdk:"host"`
	HostPort   types.String `tfsdk:"host_port"`
	User       types.String `tfsdk:"user"`
	Password   types.String `tfsdk:"password"`
	PrivateKey types.String `tfsdk:"private_key"`
	KeyFile    types.String `tfsdk:"key_file"`
}

func (s *SshConnection) Authorization() ssh.SshAuthorization {
	if s == nil {
		return ssh.SshAuthorization{}
	}

	return ssh.SshAuthorization{
		User:       s.User.ValueString(),
		Password:   s.Password.ValueString(),
		PrivateKey: s.PrivateKey.ValueString(),
		KeyFile:    s.KeyFile.ValueString(),
	}
}
