package common

import (
	"fmt"

	"terraform-provider-vestacp/internal/apiclient"

	"github.com/hashicorp/terraform-plugin-framework/diag"
)

// ProviderHostConfig extracts the host configuration the provider hands to
// its resources and data sources.
func ProviderHostConfig(providerData any) (*apiclient.HostConfig, diag.Diagnostics) {
	diagnostics := diag.Diagnostics{}
	if providerData == nil {
		return nil, diagnostics
	}

	data, ok := providerData.(*apiclient.HostConfig)
	if !ok {
		diagnostics.AddError(
			"Unexpected Provider Configure Type",
			fmt.Sprintf("Expected *apiclient.HostConfig, got: %T. Please report this issue to the provider developers.", providerData),
		)
		return nil, diagnostics
	}

	return data, diagnostics
}
