package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compozy/enumgen/pkg/logger"
)

// defaultConfigFile is consulted when --config is not given; a missing file
// is not an error.
const defaultConfigFile = "enumgen.yaml"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "enumgen",
		Short:         "Generate enumeration types from declarative manifests",
		Long: "enumgen expands YAML manifests of (identifier, value) pairs into Go source\n" +
			"files defining enumeration types with positional access, reverse lookup and\n" +
			"ordered iteration.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("config", defaultConfigFile, "Path to the tool configuration file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")
	root.PersistentFlags().Bool("log-source", false, "Include source file and line in logs")
	root.PersistentFlags().Bool("debug", false, "Enable debug mode (sets log level to debug)")

	// Set debug flag to override log level
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("failed to get debug flag: %w", err)
		}
		if debug {
			if err := cmd.Flags().Set("log-level", "debug"); err != nil {
				return fmt.Errorf("failed to override log level: %w", err)
			}
		}
		return nil
	}

	root.AddCommand(
		GenerateCmd(),
		CheckCmd(),
		WatchCmd(),
		InitCmd(),
		VersionCmd(),
	)

	return root
}

// setupLogging initializes the process logger from the persistent flags and
// the resolved configuration, flags winning when set.
func setupLogging(cmd *cobra.Command, level string, json, source bool) error {
	flagLevel, flagJSON, flagSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	if flagLevel != "" {
		level = flagLevel
	}
	logger.SetupLogger(level, json || flagJSON, source || flagSource)
	return nil
}
