package sshconnection

import (
	"regexp"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

var portRegex = regexp.MustCompile(`^[0-9]{1,5}$`)

var (
	SchemaName    = "ssh_connection"
	SchemaBlockV0 = schema.SingleNestedBlock{
		MarkdownDescription: "SSH connection to the panel host, used by the ssh transport and for backup uploads",
		Attributes: map[string]schema.Attribute{
			"host": schema.StringAttribute{
				MarkdownDescription: "Panel host address",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"host_port": schema.StringAttribute{
				MarkdownDescription: "Panel host ssh port, defaults to 22",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.RegexMatches(portRegex, "must be a port number"),
				},
			},
			"user": schema.StringAttribute{
				MarkdownDescription: "SSH user, commands run through sudo when it is not root",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"password": schema.StringAttribute{
				MarkdownDescription: "SSH password",
				Optional:            true,
				Sensitive:           true,
			},
			"private_key": schema.StringAttribute{
				MarkdownDescription: "SSH private key in PEM format",
				Optional:            true,
				Sensitive:           true,
				Validators: []validator.String{
					stringvalidator.ConflictsWith(path.MatchRelative().AtParent().AtName("key_file")),
				},
			},
			"key_file": schema.StringAttribute{
				MarkdownDescription: "Path to a SSH private key file",
				Optional:            true,
			},
		},
	}
)
