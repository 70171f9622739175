package catalog

import (
	"context"
	"fmt"

	"terraform-provider-vestacp/internal/helpers"

	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

var _ validator.String = knownCommandValidator{}

type knownCommandValidator struct{}

// KnownCommand rejects values that cannot be a panel command name and warns
// about names missing from the default catalog, which custom scripts may use.
func KnownCommand() validator.String {
	return knownCommandValidator{}
}

func (v knownCommandValidator) Description(_ context.Context) string {
	return "value must be a panel command name"
}

func (v knownCommandValidator) MarkdownDescription(ctx context.Context) string {
	return v.Description(ctx)
}

func (v knownCommandValidator) ValidateString(ctx context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}

	name := req.ConfigValue.ValueString()
	if !helpers.IsValidCommandName(name) {
		resp.Diagnostics.AddAttributeError(
			req.Path,
			"Invalid command name",
			fmt.Sprintf("%q is not a panel command name, names look like v-list-users", name),
		)
		return
	}

	if _, ok := Default().Lookup(name); !ok {
		resp.Diagnostics.AddAttributeWarning(
			req.Path,
			"Unknown command",
			fmt.Sprintf("%q is not a known panel command, it must exist on the panel host", name),
		)
	}
}
