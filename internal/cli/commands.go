package cli

import (
	"fmt"

	"terraform-provider-vestacp/internal/catalog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCommandsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [NAME]",
		Short: "List known panel commands or show the arguments of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			known := catalog.Default()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				entry, ok := known.Lookup(args[0])
				if !ok {
					return errors.Wrap(catalog.ErrUnknownCommand, args[0])
				}
				if opts.jsonOutput {
					return writeJSON(out, map[string]interface{}{
						"name":      entry.Name,
						"usage":     entry.Usage(),
						"required":  entry.Required(),
						"variadic":  entry.Variadic(),
						"isListing": entry.IsListing(),
					})
				}
				fmt.Fprintln(out, entry.Usage())
				return nil
			}

			if opts.jsonOutput {
				return writeJSON(out, known.Names())
			}
			for _, name := range known.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
