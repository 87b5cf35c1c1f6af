// Package commands provides the cobra commands of the oasdesc CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// Execute runs the oasdesc CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "oasdesc",
		Short:         "Build OpenAPI 3.1 descriptions from Go types",
		Long:          "oasdesc assembles OpenAPI 3.1 description documents from Go payload types and emits them as JSON or YAML.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (TOML)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging output")

	cmd.AddCommand(newExampleCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
