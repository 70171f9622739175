package interfaces

import (
	"context"

	"terraform-provider-vestacp/internal/clientmodels"
)

// CommandClient runs panel commands over one transport: the http api,
// ssh or the local shell.
type CommandClient interface {
	RunCommand(ctx context.Context, request clientmodels.CommandRequest) (*clientmodels.CommandResponse, error)
	Username() string
	Password() string
}
