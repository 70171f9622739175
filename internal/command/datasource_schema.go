package command

import (
	"terraform-provider-vestacp/internal/catalog"

	"github.com/hashicorp/terraform-plugin-framework-validators/listvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var commandDataSourceSchema = schema.Schema{
	MarkdownDescription: "Runs a read only panel command, listings get the provider list format",
	Attributes: map[string]schema.Attribute{
		"command": schema.StringAttribute{
			MarkdownDescription: "Panel command name, for example `v-list-web-domains`",
			Required:            true,
			Validators: []validator.String{
				catalog.KnownCommand(),
			},
		},
		"arguments": schema.ListAttribute{
			MarkdownDescription: "Positional arguments, the list format is added for listing commands",
			Optional:            true,
			ElementType:         types.StringType,
			Validators: []validator.List{
				listvalidator.SizeAtMost(maxArguments),
			},
		},
		"output": schema.StringAttribute{
			MarkdownDescription: "Text the panel answered with",
			Computed:            true,
		},
		"json": schema.StringAttribute{
			MarkdownDescription: "Normalized json of the answer when it is json, use with jsondecode",
			Computed:            true,
		},
		"return_code": schema.Int64Attribute{
			MarkdownDescription: "Numeric return code when the panel reported one",
			Computed:            true,
		},
	},
}
