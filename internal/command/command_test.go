package command

import (
	"context"
	"testing"

	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringList(values ...string) types.List {
	elements := make([]attr.Value, 0, len(values))
	for _, value := range values {
		elements = append(elements, types.StringValue(value))
	}
	return types.ListValueMust(types.StringType, elements)
}

func TestCommandResourceModelRequest(t *testing.T) {
	model := CommandResourceModel{
		Command:   types.StringValue("v-add-dns-record"),
		Arguments: stringList("admin", "example.com", "www", "A", "10.0.0.1"),
		Parameters: types.MapValueMust(types.StringType, map[string]attr.Value{
			"lang": types.StringValue("en"),
		}),
		Method: types.StringValue("PUT"),
	}

	request, diags := model.Request(context.Background())
	require.False(t, diags.HasError())

	assert.Equal(t, "v-add-dns-record", request.Command)
	assert.Equal(t, []string{"admin", "example.com", "www", "A", "10.0.0.1"}, request.Arguments)
	assert.Equal(t, map[string]string{"lang": "en"}, request.Parameters)
	assert.Equal(t, "PUT", request.Method)
}

func TestCommandResourceModelRequestWithoutArguments(t *testing.T) {
	model := CommandResourceModel{
		Command:    types.StringValue("v-update-sys-queue"),
		Arguments:  types.ListNull(types.StringType),
		Parameters: types.MapNull(types.StringType),
	}

	request, diags := model.Request(context.Background())
	require.False(t, diags.HasError())
	assert.Empty(t, request.Arguments)
	assert.Empty(t, request.Parameters)
}

func TestCommandResourceModelDestroyRequest(t *testing.T) {
	model := CommandResourceModel{
		Command:          types.StringValue("v-add-dns-record"),
		DestroyCommand:   types.StringNull(),
		DestroyArguments: types.ListNull(types.StringType),
	}

	request, diags := model.DestroyRequest(context.Background())
	assert.False(t, diags.HasError())
	assert.Nil(t, request)

	model.DestroyCommand = types.StringValue("v-delete-dns-record")
	model.DestroyArguments = stringList("admin", "example.com", "12")

	request, diags = model.DestroyRequest(context.Background())
	require.False(t, diags.HasError())
	require.NotNil(t, request)
	assert.Equal(t, "v-delete-dns-record", request.Command)
	assert.Equal(t, []string{"admin", "example.com", "12"}, request.Arguments)
}

func TestCommandResourceModelApplyResponse(t *testing.T) {
	var model CommandResourceModel

	model.ApplyResponse(&clientmodels.CommandResponse{Body: "0\n", ReturnCode: clientmodels.ReturnCodeOK, HasReturnCode: true})
	assert.Equal(t, "0", model.Output.ValueString())
	assert.Equal(t, int64(0), model.ReturnCode.ValueInt64())

	model.ApplyResponse(&clientmodels.CommandResponse{Body: "OK\n"})
	assert.Equal(t, "OK", model.Output.ValueString())
	assert.True(t, model.ReturnCode.IsNull())
}

func TestCommandDataSourceModelApplyResponse(t *testing.T) {
	var model CommandDataSourceModel

	model.ApplyResponse(&clientmodels.CommandResponse{Command: "v-list-users", Body: `{"alice": {"PACKAGE": "default"}}`})
	assert.Equal(t, `{"alice":{"PACKAGE":"default"}}`, model.Json.ValueString())
	assert.True(t, model.ReturnCode.IsNull())

	model.ApplyResponse(&clientmodels.CommandResponse{Command: "v-list-users", Body: "USER   PACKAGE\nalice  default\n"})
	assert.True(t, model.Json.IsNull())
	assert.Equal(t, "USER   PACKAGE\nalice  default", model.Output.ValueString())
}
