package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Run("Should load default configuration when no sources provided", func(t *testing.T) {
		service := NewService()

		cfg, err := service.Load(t.Context())

		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, []string{"enums.yaml"}, cfg.Generate.Inputs)
		assert.Equal(t, ".", cfg.Generate.Output)
		assert.Equal(t, "info", cfg.Runtime.LogLevel)
		assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	})

	t.Run("Should apply YAML file over defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "enumgen.yaml")
		content := "generate:\n  output: ./gen\nruntime:\n  log_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		service := NewService()

		cfg, err := service.Load(t.Context(), NewYAMLProvider(path))

		require.NoError(t, err)
		assert.Equal(t, "./gen", cfg.Generate.Output)
		assert.Equal(t, "debug", cfg.Runtime.LogLevel)
		// Untouched keys keep their defaults
		assert.Equal(t, []string{"enums.yaml"}, cfg.Generate.Inputs)
	})

	t.Run("Should ignore a missing YAML file", func(t *testing.T) {
		service := NewService()

		cfg, err := service.Load(t.Context(), NewYAMLProvider("does-not-exist.yaml"))

		require.NoError(t, err)
		assert.Equal(t, ".", cfg.Generate.Output)
	})

	t.Run("Should apply environment variables over YAML", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "enumgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("generate:\n  output: ./from-yaml\n"), 0o600))
		t.Setenv("ENUMGEN_GENERATE_OUTPUT", "./from-env")
		service := NewService()

		cfg, err := service.Load(t.Context(), NewYAMLProvider(path))

		require.NoError(t, err)
		assert.Equal(t, "./from-env", cfg.Generate.Output)
	})

	t.Run("Should give CLI flags highest precedence", func(t *testing.T) {
		t.Setenv("ENUMGEN_GENERATE_OUTPUT", "./from-env")
		service := NewService()
		cli := NewCLIProvider(map[string]any{
			"generate.output":   "./from-cli",
			"runtime.log_level": "warn",
		})

		cfg, err := service.Load(t.Context(), cli)

		require.NoError(t, err)
		assert.Equal(t, "./from-cli", cfg.Generate.Output)
		assert.Equal(t, "warn", cfg.Runtime.LogLevel)
	})

	t.Run("Should reject invalid log level", func(t *testing.T) {
		service := NewService()
		cli := NewCLIProvider(map[string]any{"runtime.log_level": "loud"})

		_, err := service.Load(t.Context(), cli)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("Should reject max_wait below debounce", func(t *testing.T) {
		service := NewService()
		cli := NewCLIProvider(map[string]any{
			"watch.debounce": "5s",
			"watch.max_wait": "1s",
		})

		_, err := service.Load(t.Context(), cli)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_wait")
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should map section and field correctly", func(t *testing.T) {
		assert.Equal(t, "generate.output", transformEnvKey("GENERATE_OUTPUT"))
		assert.Equal(t, "runtime.log_level", transformEnvKey("RUNTIME_LOG_LEVEL"))
		assert.Equal(t, "watch.max_wait", transformEnvKey("WATCH_MAX_WAIT"))
	})

	t.Run("Should handle degenerate keys", func(t *testing.T) {
		assert.Equal(t, "", transformEnvKey(""))
		assert.Equal(t, "generate", transformEnvKey("GENERATE"))
		assert.Equal(t, "generate.output", transformEnvKey("GENERATE__OUTPUT"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("Should reject nil configuration", func(t *testing.T) {
		service := NewService()

		err := service.Validate(nil)

		require.Error(t, err)
	})

	t.Run("Should accept the default configuration", func(t *testing.T) {
		service := NewService()

		require.NoError(t, service.Validate(Default()))
	})

	t.Run("Should require at least one input", func(t *testing.T) {
		service := NewService()
		cfg := Default()
		cfg.Generate.Inputs = nil

		require.Error(t, service.Validate(cfg))
	})
}
