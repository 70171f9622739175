package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/pkg/errors"
)

func GetUsers(ctx context.Context, config HostConfig) (apimodels.RecordSet, error) {
	if !config.IsStructured() {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "v-list-users", errors.Errorf("list format %q cannot be decoded, use json", config.GetListFormat()))
	}

	response, err := ExecuteList(ctx, config, "v-list-users")
	if err != nil {
		return nil, err
	}

	records, err := apimodels.DecodeRecordSet([]byte(response.Body))
	if err != nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureCommand, "v-list-users", err)
	}

	return records, nil
}
