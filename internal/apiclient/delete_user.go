package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// DeleteUser treats an already missing user as deleted.
func DeleteUser(ctx context.Context, config HostConfig, username string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}

	if err := runWriteCommand(ctx, config, "v-delete-user", username); err != nil {
		if clientmodels.IsNotExist(err) {
			tflog.Info(ctx, "User "+username+" not found")
			return nil
		}
		return err
	}

	tflog.Info(ctx, "Deleted user "+username)
	return nil
}
