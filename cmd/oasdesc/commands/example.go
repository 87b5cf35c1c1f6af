package commands

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdesc/builder"
	"github.com/erraggy/oasdesc/config"
	"github.com/erraggy/oasdesc/emitter"
	"github.com/erraggy/oasdesc/internal/blogapi"
	"github.com/erraggy/oasdesc/internal/fileutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Emit the sample blog comments API",
		Long: "Emit the sample blog comments API. Document metadata (title, version, " +
			"servers, tags, security) can be supplied with --config.",
		Example: strings.TrimSpace(`  oasdesc example
  oasdesc example --format json --output openapi.json
  oasdesc --config oasdesc.toml example`),
		Args: cobra.NoArgs,
		RunE: runExample,
	}

	cmd.Flags().StringP("format", "f", "", "Output format: json or yaml (default from config, else yaml)")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	return cmd
}

func runExample(cmd *cobra.Command, _ []string) error {
	meta, err := loadMetadata(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	zl, err := newLogger(verbose, meta.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = meta.Output.Path
	}
	format, err := resolveFormat(cmd, meta, output)
	if err != nil {
		return err
	}

	opts := append(meta.Options(), builder.WithLogger(newZapAdapter(zl).With("command", "example")))
	desc, err := blogapi.New(opts...)
	if err != nil {
		return fmt.Errorf("building example: %w", err)
	}

	data, err := desc.Emit(format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := fileutil.WriteOwnerOnly(output, data); err != nil {
		return err
	}
	zl.Info("wrote document", zap.String("path", output), zap.String("format", format.String()))
	return nil
}

// loadMetadata reads --config, or returns defaults when it is not set.
func loadMetadata(cmd *cobra.Command) (*config.Metadata, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Defaults(), nil
	}
	meta, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return meta, nil
}

// resolveFormat picks the output format: --format, then the output file
// extension, then the config file.
func resolveFormat(cmd *cobra.Command, meta *config.Metadata, output string) (emitter.Format, error) {
	if cmd.Flags().Changed("format") {
		name, _ := cmd.Flags().GetString("format")
		return emitter.ParseFormat(name)
	}
	if output != "" {
		return emitter.FormatFromPath(output), nil
	}
	return emitter.ParseFormat(meta.Output.Format)
}
