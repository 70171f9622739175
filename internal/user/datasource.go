package user

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/common"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var (
	_ datasource.DataSource              = &UserDataSource{}
	_ datasource.DataSourceWithConfigure = &UserDataSource{}
	_ datasource.DataSource              = &UsersDataSource{}
	_ datasource.DataSourceWithConfigure = &UsersDataSource{}
)

func NewUserDataSource() datasource.DataSource {
	return &UserDataSource{}
}

type UserDataSource struct {
	provider *apiclient.HostConfig
}

func (d *UserDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	data, diags := common.ProviderHostConfig(req.ProviderData)
	resp.Diagnostics.Append(diags...)
	if data == nil {
		return
	}

	d.provider = data
}

func (d *UserDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_user"
}

func (d *UserDataSource) Schema(_ context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = userDataSourceSchema
}

func (d *UserDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data UserDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	record, err := apiclient.GetUser(ctx, *d.provider, data.Username.ValueString())
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error reading user", err)...)
		return
	}

	resp.Diagnostics.Append(data.apply(ctx, record)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (m *UserDataSourceModel) apply(ctx context.Context, record apimodels.Record) diag.Diagnostics {
	if record == nil {
		m.Exists = types.BoolValue(false)
		m.Attributes = types.MapNull(types.StringType)
		return nil
	}

	attributes, diags := types.MapValueFrom(ctx, types.StringType, map[string]string(record))
	m.Exists = types.BoolValue(true)
	m.Attributes = attributes
	return diags
}

func NewUsersDataSource() datasource.DataSource {
	return &UsersDataSource{}
}

type UsersDataSource struct {
	provider *apiclient.HostConfig
}

func (d *UsersDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	data, diags := common.ProviderHostConfig(req.ProviderData)
	resp.Diagnostics.Append(diags...)
	if data == nil {
		return
	}

	d.provider = data
}

func (d *UsersDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_users"
}

func (d *UsersDataSource) Schema(_ context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = usersDataSourceSchema
}

func (d *UsersDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data UsersDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	users, err := apiclient.GetUsers(ctx, *d.provider)
	if err != nil {
		resp.Diagnostics.Append(common.CommandErrorDiagnostics("Error listing users", err)...)
		return
	}

	resp.Diagnostics.Append(data.apply(ctx, users)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (m *UsersDataSourceModel) apply(ctx context.Context, users apimodels.RecordSet) diag.Diagnostics {
	var diagnostics diag.Diagnostics

	names, diags := types.ListValueFrom(ctx, types.StringType, users.Keys())
	diagnostics.Append(diags...)

	values := make(map[string]map[string]string, len(users))
	for name, record := range users {
		values[name] = map[string]string(record)
	}

	usersValue, diags := types.MapValueFrom(ctx, types.MapType{ElemType: types.StringType}, values)
	diagnostics.Append(diags...)

	m.Names = names
	m.Users = usersValue
	return diagnostics
}
