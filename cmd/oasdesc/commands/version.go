package commands

import (
	"fmt"

	"github.com/erraggy/oasdesc"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the oasdesc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), oasdesc.BuildInfo())
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "oasdesc %s\n", oasdesc.Version())
			return err
		},
	}
}
