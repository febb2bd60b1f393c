package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compozy/enumgen/pkg/version"
)

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "enumgen %s (commit %s, built %s)\n",
				info.Version, info.CommitHash, info.BuildDate)
			return nil
		},
	}
}
