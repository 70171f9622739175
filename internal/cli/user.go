package cli

import (
	"fmt"

	"terraform-provider-vestacp/internal/apiclient"
	"terraform-provider-vestacp/internal/apiclient/apimodels"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newUserCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage panel users",
	}

	cmd.AddCommand(
		newUserGetCommand(opts),
		newUserListCommand(opts),
		newUserCheckCommand(opts),
		newUserCreateCommand(opts),
		newUserDeleteCommand(opts),
	)

	return cmd
}

func newUserGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get USER",
		Short: "Show the fields of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			record, err := apiclient.GetUser(cmd.Context(), config, args[0])
			if err != nil {
				return err
			}
			if record == nil {
				return errors.Errorf("user %s not found", args[0])
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, record)
			}
			for _, key := range record.Keys() {
				fmt.Fprintf(out, "%s=%s\n", key, record[key])
			}
			return nil
		},
	}
}

func newUserListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			users, err := apiclient.GetUsers(cmd.Context(), config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, users)
			}
			for _, name := range users.Keys() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newUserCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check USER PASSWORD",
		Short: "Check a user password, exits with an error when it is rejected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			ok, err := apiclient.CheckUserPassword(cmd.Context(), config, args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("password rejected")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "password accepted")
			return nil
		},
	}
}

func newUserCreateCommand(opts *options) *cobra.Command {
	request := apimodels.UserRequest{}

	cmd := &cobra.Command{
		Use:   "create USER PASSWORD EMAIL",
		Short: "Create a user",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			request.Username = args[0]
			request.Password = args[1]
			request.Email = args[2]
			if err := apiclient.CreateUser(cmd.Context(), config, request); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s created\n", request.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Package, "package", "", "Hosting package")
	cmd.Flags().StringVar(&request.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&request.LastName, "last-name", "", "Last name")

	return cmd
}

func newUserDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.HostConfig()
			if err != nil {
				return err
			}

			if err := apiclient.DeleteUser(cmd.Context(), config, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s deleted\n", args[0])
			return nil
		},
	}
}
