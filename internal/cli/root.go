package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/constants"
	"terraform-provider-vestacp/internal/helpers"
	"terraform-provider-vestacp/internal/ssh"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	url              string
	username         string
	password         string
	returnCode       bool
	listFormat       string
	hostVerification string
	timeout          time.Duration
	transport        string
	validateCommands bool
	sshHost          string
	sshPort          string
	sshUser          string
	sshPassword      string
	sshKeyFile       string
	jsonOutput       bool
}

// HostConfig builds the invoker configuration from the flags.
func (o *options) HostConfig() (apiclient.HostConfig, error) {
	config := apiclient.NewHostConfig(o.url, o.username, o.password)
	config.ReturnCode = o.returnCode
	config.ListFormat = o.listFormat
	config.HostVerification = helpers.HostVerification(o.hostVerification)
	config.Timeout = o.timeout
	config.Transport = apiclient.Transport(o.transport)
	config.ValidateCommands = o.validateCommands

	if o.sshHost != "" {
		config.Ssh = &apiclient.SshConfig{
			Host: o.sshHost,
			Port: o.sshPort,
			Authorization: ssh.SshAuthorization{
				User:     o.sshUser,
				Password: o.sshPassword,
				KeyFile:  o.sshKeyFile,
			},
		}
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// NewRootCommand builds the vestactl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "vestactl",
		Short: "vestactl runs VestaCP panel commands",
		Long: `vestactl sends commands to a VestaCP panel through its api dispatcher,
over ssh or on the local host.

Connection settings can be provided via flags or the ` + constants.EnvUrl + `,
` + constants.EnvUsername + ` and ` + constants.EnvPassword + ` environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.url, "url", os.Getenv(constants.EnvUrl), "Panel api url or host")
	flags.StringVar(&opts.username, "username", os.Getenv(constants.EnvUsername), "Panel admin user")
	flags.StringVar(&opts.password, "password", os.Getenv(constants.EnvPassword), "Panel admin password")
	flags.BoolVar(&opts.returnCode, "return-code", true, "Ask the panel for numeric return codes")
	flags.StringVar(&opts.listFormat, "list-format", constants.DefaultListFormat, "Output format of listing commands")
	flags.StringVar(&opts.hostVerification, "host-verification", string(helpers.HostVerificationStrict), "Host name verification for https urls, strict or none")
	flags.DurationVar(&opts.timeout, "timeout", constants.DefaultRequestTimeout, "Request timeout")
	flags.StringVar(&opts.transport, "transport", string(apiclient.TransportApi), "Transport: api, ssh or local")
	flags.BoolVar(&opts.validateCommands, "validate", false, "Check commands against the known command list before sending")
	flags.StringVar(&opts.sshHost, "ssh-host", "", "Panel host for the ssh transport")
	flags.StringVar(&opts.sshPort, "ssh-port", constants.DefaultSshPort, "Panel host ssh port")
	flags.StringVar(&opts.sshUser, "ssh-user", "root", "SSH user")
	flags.StringVar(&opts.sshPassword, "ssh-password", "", "SSH password")
	flags.StringVar(&opts.sshKeyFile, "ssh-key-file", "", "SSH private key file")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output command results in JSON format")

	rootCmd.AddCommand(
		newInvokeCommand(opts),
		newListCommand(opts),
		newCommandsCommand(opts),
		newUserCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

// flushTelemetry sends events queued by the subcommand before the process
// exits.
var flushTelemetry = func(ctx context.Context) {
	telemetry.Get(ctx).Flush()
}

// Execute runs vestactl and exits with status 1 on error.
func Execute() {
	os.Exit(execute(context.Background(), NewRootCommand(), os.Stderr))
}

func execute(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	defer flushTelemetry(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func printText(w io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(w, text)
}
