package backup

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/boolplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

func selectionAttribute(description string) schema.StringAttribute {
	return schema.StringAttribute{
		MarkdownDescription: description + ", a comma separated list of objects or empty for all",
		Optional:            true,
		PlanModifiers: []planmodifier.String{
			stringplanmodifier.RequiresReplace(),
		},
	}
}

func getSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		// This description is used by the documentation generator and the language server.
		MarkdownDescription: "Uploads a user backup archive over sftp and restores it with v-restore-user. Needs the ssh_connection provider block",
		Attributes: map[string]schema.Attribute{
			"timeouts": timeouts.Attributes(ctx, timeouts.Opts{
				Create: true,
			}),
			"id": schema.StringAttribute{
				MarkdownDescription: "Restore id, the user and archive names",
				Computed:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"username": schema.StringAttribute{
				MarkdownDescription: "User the backup belongs to",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
				Validators: []validator.String{
					stringvalidator.RegexMatches(apimodels.UsernameRegex, "must be a valid user name"),
				},
			},
			"backup_file": schema.StringAttribute{
				MarkdownDescription: "Local path of the backup archive",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"web":  selectionAttribute("Web domains to restore"),
			"dns":  selectionAttribute("DNS domains to restore"),
			"mail": selectionAttribute("Mail domains to restore"),
			"db":   selectionAttribute("Databases to restore"),
			"cron": selectionAttribute("Cron jobs to restore"),
			"udir": selectionAttribute("User directories to restore"),
			"notify": schema.BoolAttribute{
				MarkdownDescription: "Notify the user once the restore is done",
				Optional:            true,
				PlanModifiers: []planmodifier.Bool{
					boolplanmodifier.RequiresReplace(),
				},
			},
			"remote_file": schema.StringAttribute{
				MarkdownDescription: "Path of the archive on the panel host",
				Computed:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
		},
	}
}
