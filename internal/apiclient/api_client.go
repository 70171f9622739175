package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/helpers"
	"terraform-provider-vestacp/internal/interfaces"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

var _ interfaces.CommandClient = &ApiClient{}

const (
	fieldUser       = "user"
	fieldPassword   = "password"
	fieldCommand    = "cmd"
	fieldReturnCode = "returncode"
)

// ApiClient sends commands to the panel api dispatcher.
type ApiClient struct {
	config HostConfig
}

func NewApiClient(config HostConfig) (*ApiClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &ApiClient{
		config: config,
	}, nil
}

// BuildCommandForm flattens a request into the form the dispatcher expects.
// Credentials, command and return code are written last so caller supplied
// fields can never replace them.
func BuildCommandForm(config HostConfig, request clientmodels.CommandRequest) url.Values {
	form := url.Values{}
	for key, value := range request.Parameters {
		form.Set(key, value)
	}

	for i, argument := range request.Arguments {
		form.Set("arg"+strconv.Itoa(i+1), argument)
	}

	form.Set(fieldUser, config.Username)
	form.Set(fieldPassword, config.Password)
	form.Set(fieldCommand, request.Command)
	if request.ReturnCode {
		form.Set(fieldReturnCode, config.returnCodeValue())
	} else {
		form.Del(fieldReturnCode)
	}

	return form
}

func (c *ApiClient) RunCommand(ctx context.Context, request clientmodels.CommandRequest) (*clientmodels.CommandResponse, error) {
	if request.Command == "" {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.New("command cannot be empty"))
	}

	verb := helpers.HttpCallerVerb(strings.ToUpper(request.Method))
	if verb == "" {
		verb = helpers.HttpCallerVerbPost
	}

	ctx = tflog.SetField(ctx, "command", request.Command)
	ctx = tflog.MaskFieldValuesWithFieldKeys(ctx, fieldPassword)

	caller := helpers.NewHttpCaller(ctx, c.config.HostVerification, c.config.Timeout)
	clientResponse, err := caller.RequestFormToClient(verb, c.config.Url(), BuildCommandForm(c.config, request))
	if err != nil {
		var cmdErr *clientmodels.CommandError
		if errors.As(err, &cmdErr) {
			cmdErr.Command = request.Command
		}
		return nil, err
	}

	response := &clientmodels.CommandResponse{
		Command:    request.Command,
		Body:       string(clientResponse.Body),
		StatusCode: clientResponse.StatusCode,
	}

	if request.ReturnCode && c.config.ReturnCode {
		if code, ok := clientmodels.ParseReturnCode(response.Body); ok {
			response.ReturnCode = code
			response.HasReturnCode = true
		}
	}

	tflog.Debug(ctx, fmt.Sprintf("%s answered with %d bytes", request.Command, len(clientResponse.Body)))
	return response, nil
}

func (c *ApiClient) Username() string {
	return c.config.Username
}

func (c *ApiClient) Password() string {
	return c.config.Password
}
