package apiclient

import (
	"context"
	"fmt"

	"terraform-provider-vestacp/internal/catalog"
	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/interfaces"
	"terraform-provider-vestacp/internal/localclient"
	"terraform-provider-vestacp/internal/ssh"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

// NewCommandClient returns the client for the configured transport.
func NewCommandClient(config HostConfig) (interfaces.CommandClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.GetTransport() {
	case TransportApi:
		return NewApiClient(config)
	case TransportSsh:
		return NewSshClient(config)
	case TransportLocal:
		return localclient.NewLocalClient(), nil
	default:
		return nil, clientmodels.NewCommandError(clientmodels.FailureClientUnavailable, "", fmt.Errorf("unknown transport %q", config.Transport))
	}
}

func NewSshClient(config HostConfig) (*ssh.SshClient, error) {
	if config.Ssh == nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.New("ssh connection is not configured"))
	}

	client, err := ssh.NewSshClient(config.Ssh.Host, config.Ssh.Port, config.Ssh.Authorization)
	if err != nil {
		return nil, err
	}
	if config.Timeout > 0 {
		client.Timeout = config.Timeout
	}

	return client, nil
}

// Execute runs a single command with positional arguments and returns the
// raw answer.
func Execute(ctx context.Context, config HostConfig, command string, args ...string) (*clientmodels.CommandResponse, error) {
	request := clientmodels.NewCommandRequest(command, args...)
	request.ReturnCode = config.ReturnCode
	return ExecuteRequest(ctx, config, request)
}

// ExecuteList runs a listing command, placing the configured list format in
// the command's FORMAT slot.
func ExecuteList(ctx context.Context, config HostConfig, command string, args ...string) (*clientmodels.CommandResponse, error) {
	arguments, err := WithListFormat(config, command, args)
	if err != nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, command, err)
	}

	return ExecuteRequest(ctx, config, clientmodels.NewCommandRequest(command, arguments...))
}

// WithListFormat places the configured list format in the FORMAT slot.
// Only optional arguments before it are padded with empty strings; a missing
// required argument is an error.
func WithListFormat(config HostConfig, command string, args []string) ([]string, error) {
	format := config.GetListFormat()
	arguments := append([]string{}, args...)

	index := len(arguments)
	entry, known := catalog.Default().Lookup(command)
	if known && entry.IsListing() {
		index = entry.FormatIndex()
	}

	if index < len(arguments) {
		if arguments[index] == "" {
			arguments[index] = format
		}
		return arguments, nil
	}

	for len(arguments) < index {
		if !entry.Arguments[len(arguments)].Optional {
			return nil, errors.Wrapf(catalog.ErrTooFewArguments, "%s is missing %s (%s)", command, entry.Arguments[len(arguments)].Name, entry.Usage())
		}
		arguments = append(arguments, "")
	}

	return append(arguments, format), nil
}

func ExecuteRequest(ctx context.Context, config HostConfig, request clientmodels.CommandRequest) (*clientmodels.CommandResponse, error) {
	if config.ValidateCommands {
		if err := catalog.Default().Validate(request.Command, request.Arguments); err != nil {
			return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, request.Command, err)
		}
	}

	client, err := NewCommandClient(config)
	if err != nil {
		tflog.Error(ctx, fmt.Sprintf("Error creating command client: %v", err))
		return nil, setCommand(err, request.Command)
	}

	response, err := client.RunCommand(ctx, request)
	if err != nil {
		tflog.Error(ctx, fmt.Sprintf("Error running %s: %v", request.Command, err))
		return nil, setCommand(err, request.Command)
	}

	return response, CheckResponse(response)
}

// CheckResponse turns an empty answer or a non zero return code into a
// typed error. The response is returned alongside so callers can inspect it.
func CheckResponse(response *clientmodels.CommandResponse) error {
	if response == nil {
		return clientmodels.NewCommandError(clientmodels.FailureEmptyResponse, "", nil)
	}

	if response.IsEmpty() {
		return clientmodels.NewCommandError(clientmodels.FailureEmptyResponse, response.Command, nil)
	}

	if response.HasReturnCode && !response.ReturnCode.IsSuccess() {
		cmdErr := clientmodels.NewCommandError(clientmodels.FailureCommand, response.Command, nil)
		cmdErr.ReturnCode = response.ReturnCode
		return cmdErr
	}

	return nil
}

func setCommand(err error, command string) error {
	var cmdErr *clientmodels.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Command == "" {
		cmdErr.Command = command
	}
	return err
}
