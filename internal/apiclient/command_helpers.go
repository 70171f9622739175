package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/pkg/errors"
)

// runWriteCommand executes a command that changes state and only reports
// whether it worked.
func runWriteCommand(ctx context.Context, config HostConfig, command string, args ...string) error {
	response, err := Execute(ctx, config, command, args...)
	if err != nil {
		return err
	}

	if response.HasReturnCode || clientmodels.IsOkMessage(response.Body) {
		return nil
	}

	if clientmodels.IsNotExistMessage(response.Body) {
		cmdErr := clientmodels.NewCommandError(clientmodels.FailureCommand, command, errors.New(response.Text()))
		cmdErr.ReturnCode = clientmodels.ReturnCodeNotExist
		return cmdErr
	}

	cmdErr := clientmodels.NewCommandError(clientmodels.FailureCommand, command, errors.New(response.Text()))
	cmdErr.ReturnCode = clientmodels.ReturnCodeUnknown
	return cmdErr
}
