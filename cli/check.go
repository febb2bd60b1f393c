package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/compozy/enumgen/pkg/logger"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate enum manifests without generating code",
		Long: "Parses every manifest and runs the full structural validation: identifier\n" +
			"shape and uniqueness, pair-list form, element limits, type resolution and\n" +
			"value ranges. Exits non-zero on the first violation.",
		RunE: handleCheckCmd,
	}
	cmd.Flags().StringSliceP("input", "i", nil, "Manifest files or glob patterns (env: ENUMGEN_GENERATE_INPUTS)")
	return cmd
}

func handleCheckCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd, cfg.Runtime.LogLevel, cfg.Runtime.LogJSON, cfg.Runtime.LogSource); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	manifests, err := loadManifests(afero.NewOsFs(), cfg.Generate.Inputs)
	if err != nil {
		return err
	}
	total := 0
	for _, manifest := range manifests {
		total += len(manifest.Enums)
		log.Info("Manifest valid", "file", manifest.Source, "enums", len(manifest.Enums))
	}
	log.Info("All manifests valid", "manifests", len(manifests), "enums", total)
	return nil
}
