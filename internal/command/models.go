package command

import (
	"context"
	"encoding/json"

	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// CommandResourceModel describes the resource data model.
type CommandResourceModel struct {
	ID               types.String   `tfsdk:"id"`
	Command          types.String   `tfsdk:"command"`
	Arguments        types.List     `tfsdk:"arguments"`
	Parameters       types.Map      `tfsdk:"parameters"`
	Method           types.String   `tfsdk:"method"`
	DestroyCommand   types.String   `tfsdk:"destroy_command"`
	DestroyArguments types.List     `tfsdk:"destroy_arguments"`
	Triggers         types.Map      `tfsdk:"triggers"`
	Output           types.String   `tfsdk:"output"`
	ReturnCode       types.Int64    `tfsdk:"return_code"`
	Timeouts         timeouts.Value `tfsdk:"timeouts"`
}

type CommandDataSourceModel struct {
	Command    types.String `tfsdk:"command"`
	Arguments  types.List   `tfsdk:"arguments"`
	Output     types.String `tfsdk:"output"`
	Json       types.String `tfsdk:"json"`
	ReturnCode types.Int64  `tfsdk:"return_code"`
}

func (m *CommandResourceModel) Request(ctx context.Context) (clientmodels.CommandRequest, diag.Diagnostics) {
	var diagnostics diag.Diagnostics

	arguments, diags := listToStrings(ctx, m.Arguments)
	diagnostics.Append(diags...)

	parameters := map[string]string{}
	if !m.Parameters.IsNull() && !m.Parameters.IsUnknown() {
		diagnostics.Append(m.Parameters.ElementsAs(ctx, &parameters, false)...)
	}

	request := clientmodels.NewCommandRequest(m.Command.ValueString(), arguments...)
	request.Parameters = parameters
	request.Method = m.Method.ValueString()
	return request, diagnostics
}

func (m *CommandResourceModel) DestroyRequest(ctx context.Context) (*clientmodels.CommandRequest, diag.Diagnostics) {
	if m.DestroyCommand.ValueString() == "" {
		return nil, nil
	}

	arguments, diags := listToStrings(ctx, m.DestroyArguments)
	request := clientmodels.NewCommandRequest(m.DestroyCommand.ValueString(), arguments...)
	request.Method = m.Method.ValueString()
	return &request, diags
}

// ApplyResponse stores what the panel answered. A response without a return
// code leaves return_code null.
func (m *CommandResourceModel) ApplyResponse(response *clientmodels.CommandResponse) {
	m.Output = types.StringValue(response.Text())
	m.ReturnCode = returnCodeValue(response)
}

func (m *CommandDataSourceModel) ApplyResponse(response *clientmodels.CommandResponse) {
	m.Output = types.StringValue(response.Text())
	m.ReturnCode = returnCodeValue(response)
	m.Json = types.StringNull()

	if response.HasReturnCode && response.Body == "" {
		return
	}

	var decoded interface{}
	if err := response.DecodeJSON(&decoded); err != nil {
		return
	}
	if normalized, err := json.Marshal(decoded); err == nil {
		m.Json = types.StringValue(string(normalized))
	}
}

func returnCodeValue(response *clientmodels.CommandResponse) types.Int64 {
	if response == nil || !response.HasReturnCode {
		return types.Int64Null()
	}
	return types.Int64Value(int64(response.ReturnCode))
}

func listToStrings(ctx context.Context, list types.List) ([]string, diag.Diagnostics) {
	values := make([]string, 0)
	if list.IsNull() || list.IsUnknown() {
		return values, nil
	}

	diags := list.ElementsAs(ctx, &values, false)
	return values, diags
}
