package ssh

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"time"

	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/constants"
	"terraform-provider-vestacp/internal/helpers"

	"github.com/cjlapao/common-go/helper"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type SshAuthorization struct {
	User       string
	Password   string
	PrivateKey string
	KeyFile    string
}

type SshClient struct {
	config  *ssh.ClientConfig
	Host    string
	Port    string
	Auth    SshAuthorization
	UseSudo bool
	Timeout time.Duration
}

func NewSshClient(host, port string, auth SshAuthorization) (*SshClient, error) {
	if host == "" {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.New("ssh host cannot be empty"))
	}
	if auth.User == "" {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.New("ssh user cannot be empty"))
	}

	sshClient := &SshClient{
		Host:    host,
		Port:    port,
		Auth:    auth,
		UseSudo: auth.User != "root",
		Timeout: constants.DefaultRequestTimeout,
	}
	if sshClient.Port == "" {
		sshClient.Port = constants.DefaultSshPort
	}

	var config *ssh.ClientConfig
	switch {
	case sshClient.Auth.KeyFile != "":
		key, err := helper.ReadFromFile(sshClient.Auth.KeyFile)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading key file %s", sshClient.Auth.KeyFile)
		}

		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing key file")
		}
		config = &ssh.ClientConfig{
			User: sshClient.Auth.User,
			Auth: []ssh.AuthMethod{
				ssh.PublicKeys(signer),
			},
		}
	case sshClient.Auth.PrivateKey != "":
		key, err := ssh.ParsePrivateKey([]byte(sshClient.Auth.PrivateKey))
		if err != nil {
			return nil, errors.Wrap(err, "error parsing private key")
		}
		config = &ssh.ClientConfig{
			User: sshClient.Auth.User,
			Auth: []ssh.AuthMethod{
				ssh.PublicKeys(key),
			},
		}
	default:
		config = &ssh.ClientConfig{
			User: sshClient.Auth.User,
			Auth: []ssh.AuthMethod{
				ssh.Password(sshClient.Auth.Password),
			},
		}
	}

	// #nosec G106 -- panel hosts are addressed by the operator, no known_hosts is shipped
	config.HostKeyCallback = ssh.InsecureIgnoreHostKey()

	sshClient.config = config

	return sshClient, nil
}

func (c *SshClient) BaseAddress() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *SshClient) dial(ctx context.Context) (*ssh.Client, error) {
	if c.config == nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureClientUnavailable, "", errors.New("ssh client not configured"))
	}

	c.config.Timeout = c.Timeout
	dialer := net.Dialer{Timeout: c.Timeout}
	netConn, err := dialer.DialContext(ctx, "tcp", c.BaseAddress())
	if err != nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConnection, "", errors.Wrapf(err, "error connecting to %s", c.BaseAddress()))
	}

	sshConn, channels, requests, err := ssh.NewClientConn(netConn, c.BaseAddress(), c.config)
	if err != nil {
		netConn.Close()
		return nil, clientmodels.NewCommandError(clientmodels.FailureConnection, "", errors.Wrapf(err, "error opening ssh session on %s", c.BaseAddress()))
	}

	return ssh.NewClient(sshConn, channels, requests), nil
}

func (c *SshClient) Connect(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}

	return conn.Close()
}

// CommandLine is the shell line executed on the panel host for request.
func (c *SshClient) CommandLine(request clientmodels.CommandRequest) (string, error) {
	if !helpers.IsValidCommandName(request.Command) {
		return "", clientmodels.NewCommandError(clientmodels.FailureConfiguration, request.Command, errors.New("invalid command name"))
	}

	cmd := path.Join(constants.VestaBinPath, request.Command)
	if c.UseSudo {
		cmd = "sudo -n " + cmd
	}
	if len(request.Arguments) > 0 {
		cmd = cmd + " " + helpers.ShellQuote(request.Arguments)
	}

	return cmd, nil
}

func (c *SshClient) RunCommand(ctx context.Context, request clientmodels.CommandRequest) (*clientmodels.CommandResponse, error) {
	cmd, err := c.CommandLine(request)
	if err != nil {
		return nil, err
	}

	tflog.Info(ctx, fmt.Sprintf("Running %s on %s", request.Command, c.BaseAddress()))
	conn, err := c.dial(ctx)
	if err != nil {
		return nil, withCommand(err, request.Command)
	}
	defer conn.Close()

	session, err := conn.NewSession()
	if err != nil {
		return nil, clientmodels.NewCommandError(clientmodels.FailureConnection, request.Command, errors.Wrap(err, "error creating ssh session"))
	}
	defer session.Close()

	response := &clientmodels.CommandResponse{
		Command:       request.Command,
		HasReturnCode: true,
	}

	output, err := session.Output(cmd)
	response.Body = string(output)
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			response.ReturnCode = clientmodels.ReturnCode(exitErr.ExitStatus())
			return response, nil
		}
		return nil, clientmodels.NewCommandError(clientmodels.FailureConnection, request.Command, err)
	}

	return response, nil
}

func (c *SshClient) TransferFile(ctx context.Context, localFile, remoteFile string) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	sftpClient, err := sftp.NewClient(conn)
	if err != nil {
		return errors.Wrap(err, "error opening sftp session")
	}
	defer sftpClient.Close()

	// Clean the file path to prevent path traversal
	cleanLocalFile := filepath.Clean(localFile)
	f, err := os.Open(cleanLocalFile)
	if err != nil {
		return err
	}
	defer f.Close()

	remoteF, err := sftpClient.Create(remoteFile)
	if err != nil {
		return errors.Wrapf(err, "error creating remote file %s", remoteFile)
	}
	defer remoteF.Close()

	written, err := io.Copy(remoteF, f)
	if err != nil {
		return errors.Wrapf(err, "error writing remote file %s", remoteFile)
	}

	tflog.Info(ctx, fmt.Sprintf("Transferred %d bytes to %s:%s", written, c.Host, remoteFile))
	return nil
}

func (c *SshClient) Username() string {
	return c.Auth.User
}

func (c *SshClient) Password() string {
	return c.Auth.Password
}

func withCommand(err error, command string) error {
	var cmdErr *clientmodels.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Command == "" {
		cmdErr.Command = command
	}
	return err
}
