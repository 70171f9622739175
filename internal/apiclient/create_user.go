package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

func CreateUser(ctx context.Context, config HostConfig, request apimodels.UserRequest) error {
	if err := request.Validate(); err != nil {
		return errors.Wrap(err, "error validating the user request")
	}

	tflog.Info(ctx, "Creating User "+request.Username)
	if err := runWriteCommand(ctx, config, "v-add-user", request.Arguments()...); err != nil {
		return err
	}

	tflog.Info(ctx, "Created User "+request.Username)
	return nil
}
