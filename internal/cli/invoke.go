package cli

import (
	"strings"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/telemetry"

	"github.com/spf13/cobra"
)

func newInvokeCommand(opts *options) *cobra.Command {
	var (
		parameters map[string]string
		method     string
	)

	cmd := &cobra.Command{
		Use:   "invoke COMMAND [ARG...]",
		Short: "Run a panel command with positional arguments",
		Example: `  vestactl invoke v-add-dns-record admin example.com www A 10.0.0.1
  vestactl invoke v-change-user-package alice gold --return-code=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			request := clientmodels.NewCommandRequest(args[0], args[1:]...)
			request.Parameters = parameters
			request.Method = strings.ToUpper(method)
			request.ReturnCode = config.ReturnCode

			telemetry.Track(cmd.Context(), config.Username, telemetry.EventCli, telemetry.ModeCreate, map[string]interface{}{
				"command": request.Command,
			})

			response, err := apiclient.ExecuteRequest(cmd.Context(), config, request)
			if response != nil {
				if writeErr := writeResponse(cmd.OutOrStdout(), response, opts.jsonOutput); writeErr != nil {
					return writeErr
				}
			}

			return err
		},
	}

	cmd.Flags().StringToStringVar(&parameters, "param", nil, "Extra form field as key=value, can be repeated")
	cmd.Flags().StringVar(&method, "method", "POST", "HTTP method for the api transport")

	return cmd
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list COMMAND [ARG...]",
		Short:   "Run a listing command, the list format is added as its FORMAT argument",
		Example: `  vestactl list v-list-users
  vestactl list v-list-web-domains admin --list-format shell`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			response, err := apiclient.ExecuteList(cmd.Context(), config, args[0], args[1:]...)
			if err != nil {
				return err
			}

			return writeResponse(cmd.OutOrStdout(), response, opts.jsonOutput)
		},
	}
}
