package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

// CheckUserPassword returns false without error when the panel rejects the
// credentials, whether it answers with a return code or with text.
func CheckUserPassword(ctx context.Context, config HostConfig, username, password string) (bool, error) {
	ctx = tflog.MaskFieldValuesWithFieldKeys(ctx, "password")
	err := runWriteCommand(ctx, config, "v-check-user-password", username, password)
	if err == nil {
		return true, nil
	}

	if code, ok := clientmodels.ReturnCodeOf(err); ok {
		switch code {
		case clientmodels.ReturnCodePassword, clientmodels.ReturnCodeNotExist:
			tflog.Info(ctx, "Credentials rejected for "+username)
			return false, nil
		}
	}

	var cmdErr *clientmodels.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Kind == clientmodels.FailureCommand &&
		cmdErr.ReturnCode == clientmodels.ReturnCodeUnknown && cmdErr.Err != nil &&
		clientmodels.IsWrongPasswordMessage(cmdErr.Err.Error()) {
		tflog.Info(ctx, "Credentials rejected for "+username)
		return false, nil
	}

	return false, err
}
