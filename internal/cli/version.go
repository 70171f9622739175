package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the vestactl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": Version,
					"commit":  Commit,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vestactl %s (%s)\n", Version, Commit)
			return nil
		},
	}
}
