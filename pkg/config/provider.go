package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// SourceType identifies where a configuration value came from.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

// Source is a provider of configuration data. Sources are applied in the
// order given to Service.Load; later sources take precedence.
type Source interface {
	// Load returns the configuration data as a nested map.
	Load() (map[string]any, error)
	// Type returns the source type identifier.
	Type() SourceType
}

// yamlProvider loads configuration from a YAML file.
type yamlProvider struct {
	path string
}

// NewYAMLProvider creates a configuration source backed by a YAML file.
func NewYAMLProvider(path string) Source {
	return &yamlProvider{path: path}
}

func (y *yamlProvider) Load() (map[string]any, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", y.path, err)
	}
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", y.path, err)
	}
	if out == nil {
		out = make(map[string]any)
	}
	return out, nil
}

func (y *yamlProvider) Type() SourceType {
	return SourceYAML
}

// cliProvider adapts a flat map of dot-notation keys (built from cobra flags)
// into a configuration source.
type cliProvider struct {
	flags map[string]any
}

// NewCLIProvider creates a configuration source from CLI flag values keyed by
// dot-notation config paths (e.g. "generate.output").
func NewCLIProvider(flags map[string]any) Source {
	return &cliProvider{flags: flags}
}

func (c *cliProvider) Load() (map[string]any, error) {
	config := make(map[string]any)
	for path, value := range c.flags {
		if err := setNested(config, path, value); err != nil {
			return nil, fmt.Errorf("failed to set CLI flag %s: %w", path, err)
		}
	}
	return config, nil
}

func (c *cliProvider) Type() SourceType {
	return SourceCLI
}

// setNested sets a value in a nested map structure using dot notation.
// It returns an error if a path conflict is encountered.
func setNested(m map[string]any, path string, value any) error {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	current := m
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if _, exists := current[part]; !exists {
			current[part] = make(map[string]any)
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return fmt.Errorf("path conflict at %s", strings.Join(parts[:i+1], "."))
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
	return nil
}
