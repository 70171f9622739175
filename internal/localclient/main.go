package localclient

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/constants"
	"terraform-provider-vestacp/internal/helpers"

	"github.com/cjlapao/common-go/commands"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

type Command struct {
	Command          string
	WorkingDirectory string
	Args             []string
}

// LocalClient runs panel commands on the machine terraform runs on.
type LocalClient struct {
	BinPath string
}

func NewLocalClient() *LocalClient {
	return &LocalClient{
		BinPath: constants.VestaBinPath,
	}
}

func (l *LocalClient) RunCommand(ctx context.Context, request clientmodels.CommandRequest) (*clientmodels.CommandResponse, error) {
	if !helpers.IsValidCommandName(request.Command) {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, request.Command, errors.New("invalid command name"))
	}

	executable := l.findPath(ctx, request.Command)
	if executable == "" {
		return nil, clientmodels.NewCommandError(clientmodels.FailureClientUnavailable, request.Command, fmt.Errorf("%s not found in %s or PATH", request.Command, l.BinPath))
	}

	cmd := Command{
		Command: executable,
		Args:    request.Arguments,
	}

	stdout, stderr, exitCode, err := executeWithOutput(ctx, cmd)
	if err != nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureClientUnavailable, request.Command, err)
	}
	if exitCode < 0 {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConnection, request.Command, errors.New("command was terminated"))
	}
	if stderr != "" {
		tflog.Debug(ctx, fmt.Sprintf("%s stderr: %s", request.Command, stderr))
	}

	return &clientmodels.CommandResponse{
		Command:       request.Command,
		Body:          stdout,
		ReturnCode:    clientmodels.ReturnCode(exitCode),
		HasReturnCode: true,
	}, nil
}

func (l *LocalClient) findPath(ctx context.Context, command string) string {
	candidate := filepath.Join(l.BinPath, command)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	tflog.Info(ctx, command+" not found in "+l.BinPath+", looking in PATH")
	out, err := commands.ExecuteWithNoOutput("which", command)
	path := strings.ReplaceAll(strings.TrimSpace(out), "\n", "")
	if err != nil {
		return ""
	}

	return path
}

func executeWithOutput(ctx context.Context, command Command) (stdout string, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, command.Command, command.Args...)
	if command.WorkingDirectory != "" {
		cmd.Dir = command.WorkingDirectory
	}

	var stdOut, stdErr bytes.Buffer

	cmd.Stdout = &stdOut
	cmd.Stderr = &stdErr

	err = cmd.Run()
	stdout = stdOut.String()
	stderr = strings.TrimSuffix(stdErr.String(), "\n")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout, stderr, exitErr.ExitCode(), nil
		}
		return stdout, stderr, -1, err
	}

	return stdout, stderr, cmd.ProcessState.ExitCode(), nil
}

func (l *LocalClient) Username() string {
	return ""
}

func (l *LocalClient) Password() string {
	return ""
}
