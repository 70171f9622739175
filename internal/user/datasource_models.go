package user

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type UserDataSourceModel struct {
	Username   types.String `tfsdk:"username"`
	Exists     types.Bool   `tfsdk:"exists"`
	Attributes types.Map    `tfsdk:"attributes"`
}

type UsersDataSourceModel struct {
	Names types.List `tfsdk:"names"`
	Users types.Map  `tfsdk:"users"`
}
