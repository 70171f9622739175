package command

import (
	"context"

	"terraform-provider-vestacp/internal/catalog"
	"terraform-provider-vestacp/internal/helpers"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework-validators/listvalidator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/listplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/mapplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// maxArguments is the largest positional argument count of any panel command.
const maxArguments = 16

func getSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		// This description is used by the documentation generator and the language server.
		MarkdownDescription: "Runs a panel command once on create and optionally another one on destroy",
		Attributes: map[string]schema.Attribute{
			"timeouts": timeouts.Attributes(ctx, timeouts.Opts{
				Create: true,
				Delete: true,
			}),
			"id": schema.StringAttribute{
				MarkdownDescription: "Invocation id",
				Computed:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"command": schema.StringAttribute{
				MarkdownDescription: "Panel command name, for example `v-add-dns-record`",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
				Validators: []validator.String{
					catalog.KnownCommand(),
				},
			},
			"arguments": schema.ListAttribute{
				MarkdownDescription: "Positional arguments sent as arg1..argN",
				Optional:            true,
				ElementType:         types.StringType,
				PlanModifiers: []planmodifier.List{
					listplanmodifier.RequiresReplace(),
				},
				Validators: []validator.List{
					listvalidator.SizeAtMost(maxArguments),
				},
			},
			"parameters": schema.MapAttribute{
				MarkdownDescription: "Extra form fields, they never replace the credentials, the command or the return code",
				Optional:            true,
				ElementType:         types.StringType,
				PlanModifiers: []planmodifier.Map{
					mapplanmodifier.RequiresReplace(),
				},
			},
			"method": schema.StringAttribute{
				MarkdownDescription: "HTTP method, defaults to POST",
				Optional:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
				Validators: []validator.String{
					stringvalidator.OneOf(
						string(helpers.HttpCallerVerbGet),
						string(helpers.HttpCallerVerbPost),
						string(helpers.HttpCallerVerbPut),
						string(helpers.HttpCallerVerbDelete),
					),
				},
			},
			"destroy_command": schema.StringAttribute{
				MarkdownDescription: "Panel command run when the resource is destroyed",
				Optional:            true,
				Validators: []validator.String{
					catalog.KnownCommand(),
				},
			},
			"destroy_arguments": schema.ListAttribute{
				MarkdownDescription: "Positional arguments of the destroy command",
				Optional:            true,
				ElementType:         types.StringType,
				Validators: []validator.List{
					listvalidator.SizeAtMost(maxArguments),
					listvalidator.AlsoRequires(path.MatchRoot("destroy_command")),
				},
			},
			"triggers": schema.MapAttribute{
				MarkdownDescription: "Arbitrary values that run the command again when they change",
				Optional:            true,
				ElementType:         types.StringType,
				PlanModifiers: []planmodifier.Map{
					mapplanmodifier.RequiresReplace(),
				},
			},
			"output": schema.StringAttribute{
				MarkdownDescription: "Text the panel answered with",
				Computed:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"return_code": schema.Int64Attribute{
				MarkdownDescription: "Numeric return code when the panel reported one",
				Computed:            true,
			},
		},
	}
}
