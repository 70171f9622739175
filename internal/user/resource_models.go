package user

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Keys of the v-list-user record the resource maps back into its attributes.
const (
	recordKeyContact   = "CONTACT"
	recordKeyPackage   = "PACKAGE"
	recordKeyFirstName = "FNAME"
	recordKeyLastName  = "LNAME"
	recordKeySuspended = "SUSPENDED"
)

// UserResourceModel describes the resource data model.
type UserResourceModel struct {
	ID         types.String   `tfsdk:"id"`
	Username   types.String   `tfsdk:"username"`
	Password   types.String   `tfsdk:"password"`
	Email      types.String   `tfsdk:"email"`
	Package    types.String   `tfsdk:"package"`
	FirstName  types.String   `tfsdk:"first_name"`
	LastName   types.String   `tfsdk:"last_name"`
	Suspended  types.Bool     `tfsdk:"suspended"`
	Attributes types.Map      `tfsdk:"attributes"`
	Timeouts   timeouts.Value `tfsdk:"timeouts"`
}

func (m *UserResourceModel) Request() apimodels.UserRequest {
	return apimodels.UserRequest{
		Username:  m.Username.ValueString(),
		Password:  m.Password.ValueString(),
		Email:     m.Email.ValueString(),
		Package:   m.Package.ValueString(),
		FirstName: m.FirstName.ValueString(),
		LastName:  m.LastName.ValueString(),
	}
}

// ApplyRecord copies what the panel reports about the user into the model.
// The password is never reported and keeps its current value.
func (m *UserResourceModel) ApplyRecord(ctx context.Context, username string, record apimodels.Record) diag.Diagnostics {
	m.ID = types.StringValue(username)
	m.Username = types.StringValue(username)
	m.Email = types.StringValue(record.Get(recordKeyContact))
	m.Package = types.StringValue(record.Get(recordKeyPackage))
	m.FirstName = types.StringValue(record.Get(recordKeyFirstName))
	m.LastName = types.StringValue(record.Get(recordKeyLastName))
	m.Suspended = types.BoolValue(record.Get(recordKeySuspended) == "yes")

	attributes, diags := types.MapValueFrom(ctx, types.StringType, map[string]string(record))
	m.Attributes = attributes
	return diags
}
