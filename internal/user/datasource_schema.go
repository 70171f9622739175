package user

import (
	"terraform-provider-vestacp/internal/apiclient/apimodels"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var userDataSourceSchema = schema.Schema{
	MarkdownDescription: "Reads a panel user with v-list-user",
	Attributes: map[string]schema.Attribute{
		"username": schema.StringAttribute{
			MarkdownDescription: "User name",
			Required:            true,
			Validators: []validator.String{
				stringvalidator.RegexMatches(apimodels.UsernameRegex, "must be a valid user name"),
			},
		},
		"exists": schema.BoolAttribute{
			MarkdownDescription: "Whether the panel knows the user",
			Computed:            true,
		},
		"attributes": schema.MapAttribute{
			MarkdownDescription: "Every field the panel reports for the user, null when the user does not exist",
			Computed:            true,
			ElementType:         types.StringType,
		},
	},
}

var usersDataSourceSchema = schema.Schema{
	MarkdownDescription: "Reads every panel user with v-list-users",
	Attributes: map[string]schema.Attribute{
		"names": schema.ListAttribute{
			MarkdownDescription: "Sorted user names",
			Computed:            true,
			ElementType:         types.StringType,
		},
		"users": schema.MapAttribute{
			MarkdownDescription: "Fields of every user keyed by user name",
			Computed:            true,
			ElementType: types.MapType{
				ElemType: types.StringType,
			},
		},
	},
}
