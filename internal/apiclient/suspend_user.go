package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/clientmodels"
)

// SuspendUser is a no-op for a user that is already suspended.
func SuspendUser(ctx context.Context, config HostConfig, username string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}

	err := runWriteCommand(ctx, config, "v-suspend-user", username)
	if code, ok := clientmodels.ReturnCodeOf(err); ok && code == clientmodels.ReturnCodeSuspended {
		return nil
	}

	return err
}

// UnsuspendUser is a no-op for a user that is not suspended.
func UnsuspendUser(ctx context.Context, config HostConfig, username string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}

	err := runWriteCommand(ctx, config, "v-unsuspend-user", username)
	if code, ok := clientmodels.ReturnCodeOf(err); ok && code == clientmodels.ReturnCodeUnsuspended {
		return nil
	}

	return err
}
