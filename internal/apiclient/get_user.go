package apiclient

import (
	"context"
	"fmt"

	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

// ListUser returns the raw v-list-user answer in the configured list format.
func ListUser(ctx context.Context, config HostConfig, username string) (*clientmodels.CommandResponse, error) {
	if err := apimodels.ValidateUsername(username); err != nil {
		return nil, err
	}

	return ExecuteList(ctx, config, "v-list-user", username)
}

// GetUser returns the record of username, or nil when the user does not
// exist or the panel answered with nothing.
func GetUser(ctx context.Context, config HostConfig, username string) (apimodels.Record, error) {
	if !config.IsStructured() {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "v-list-user", errors.Errorf("list format %q cannot be decoded, use json", config.GetListFormat()))
	}

	response, err := ListUser(ctx, config, username)
	if err != nil {
		if clientmodels.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if clientmodels.IsNotExistMessage(response.Body) {
		return nil, nil
	}

	records, err := apimodels.DecodeRecordSet([]byte(response.Body))
	if err != nil {
		tflog.Error(ctx, fmt.Sprintf("Error decoding user %s: %v", username, err))
		return nil, clientmodels.NewCommandError(clientmodels.FailureCommand, "v-list-user", err)
	}

	record, ok := records[username]
	if !ok {
		return nil, nil
	}

	tflog.Info(ctx, "Got User "+username)
	return record, nil
}
