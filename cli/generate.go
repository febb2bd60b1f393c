package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/compozy/enumgen/engine/codegen"
	"github.com/compozy/enumgen/pkg/logger"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Expand enum manifests into Go source files",
		RunE:  handleGenerateCmd,
	}
	addGenerateFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Print generated source to stdout instead of writing files")
	return cmd
}

// addGenerateFlags registers the flags shared by generate and watch.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("input", "i", nil, "Manifest files or glob patterns (env: ENUMGEN_GENERATE_INPUTS)")
	cmd.Flags().StringP("output", "o", "", "Directory generated files are written to (env: ENUMGEN_GENERATE_OUTPUT)")
	cmd.Flags().String("header", "", "Extra comment line for every generated file header")
}

func handleGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd, cfg.Runtime.LogLevel, cfg.Runtime.LogJSON, cfg.Runtime.LogSource); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	fs := afero.NewOsFs()
	manifests, err := loadManifests(fs, cfg.Generate.Inputs)
	if err != nil {
		return err
	}
	log.Debug("Loaded manifests", "count", len(manifests))
	generator := codegen.NewGenerator(&codegen.Options{Fs: fs, Header: cfg.Generate.Header})
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	if dryRun {
		for _, manifest := range manifests {
			source, err := generator.Render(manifest)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "// ---- %s ----\n%s", generator.FileName(manifest), source)
		}
		return nil
	}
	return generator.Generate(ctx, manifests, cfg.Generate.Output)
}
