package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/compozy/enumgen/engine/schema"
	"github.com/compozy/enumgen/pkg/config"
)

// flagPaths maps CLI flag names to configuration paths so explicitly set
// flags override every other configuration source.
var flagPaths = map[string]string{
	"input":      "generate.inputs",
	"output":     "generate.output",
	"header":     "generate.header",
	"debounce":   "watch.debounce",
	"max-wait":   "watch.max_wait",
	"log-level":  "runtime.log_level",
	"log-json":   "runtime.log_json",
	"log-source": "runtime.log_source",
}

// extractCLIFlags collects the values of explicitly set flags keyed by their
// configuration paths.
func extractCLIFlags(flags *pflag.FlagSet) map[string]any {
	values := make(map[string]any)
	for name, path := range flagPaths {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "stringSlice":
			if v, err := flags.GetStringSlice(name); err == nil {
				values[path] = v
			}
		case "bool":
			if v, err := flags.GetBool(name); err == nil {
				values[path] = v
			}
		default:
			values[path] = flag.Value.String()
		}
	}
	return values
}

// loadConfig resolves the tool configuration for a command: defaults, then
// the config file, then ENUMGEN_* environment variables, then flags.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	service := config.NewService()
	sources := []config.Source{config.NewYAMLProvider(configFile)}
	if cliFlags := extractCLIFlags(cmd.Flags()); len(cliFlags) > 0 {
		sources = append(sources, config.NewCLIProvider(cliFlags))
	}
	cfg, err := service.Load(ctx, sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolveManifestPaths expands the configured input patterns into a sorted,
// de-duplicated list of manifest files. At least one file must match.
func resolveManifestPaths(fs afero.Fs, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no manifest files match %v", patterns)
	}
	sort.Strings(paths)
	return paths, nil
}

// loadManifests parses and validates every matched manifest file.
func loadManifests(fs afero.Fs, patterns []string) ([]*schema.Manifest, error) {
	paths, err := resolveManifestPaths(fs, patterns)
	if err != nil {
		return nil, err
	}
	manifests := make([]*schema.Manifest, 0, len(paths))
	for _, path := range paths {
		manifest, err := schema.Load(fs, path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}
