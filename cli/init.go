package cli

import (
	"fmt"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/compozy/enumgen/pkg/logger"
)

// starterManifest is the scaffold written by `enumgen init`.
const starterManifest = `# Enum manifest for {{ .Package }}. Created {{ now | date "2006-01-02" }}.
#
# Each enum is an ordered, flat list of identifier/value pairs. Identifiers
# must be unique within an enum; values may repeat (reverse lookup returns
# the first declaration). Run "enumgen generate" to expand this file.
package: {{ .Package }}

defaults:
  type: {{ .Type | default "uint64" }}
  access: qualified

enums:
  - name: Example
    pairs: [first, 1, second, 2]
`

// defaultManifestFile matches the default generate.inputs entry.
const defaultManifestFile = "enums.yaml"

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter enum manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handleInitCmd,
	}
	cmd.Flags().String("package", "enums", "Go package name for the generated file")
	cmd.Flags().String("type", "", "Default underlying value type")
	return cmd
}

func handleInitCmd(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cmd, "info", false, false); err != nil {
		return err
	}
	log := logger.FromContext(cmd.Context())
	path := defaultManifestFile
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("manifest already exists at %s - aborting to prevent overwrite", path)
	}
	pkg, err := cmd.Flags().GetString("package")
	if err != nil {
		return fmt.Errorf("failed to get package flag: %w", err)
	}
	valueType, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}
	tmpl, err := template.New("manifest").Funcs(sprig.TxtFuncMap()).Parse(starterManifest)
	if err != nil {
		return fmt.Errorf("failed to parse manifest template: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	executeErr := tmpl.Execute(f, map[string]any{"Package": pkg, "Type": valueType})
	closeErr := f.Close()
	if executeErr != nil {
		os.Remove(path)
		return fmt.Errorf("failed to render manifest template: %w", executeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close manifest: %w", closeErr)
	}
	log.Info("Created starter manifest", "file", path, "package", pkg)
	return nil
}
