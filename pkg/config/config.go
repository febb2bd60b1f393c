package config

import "time"

// Config is the full configuration for the enumgen tool. Values are resolved
// from defaults, an optional YAML config file, ENUMGEN_* environment variables
// and CLI flags, in that precedence order.
type Config struct {
	Generate GenerateConfig `koanf:"generate" json:"generate"`
	Watch    WatchConfig    `koanf:"watch"    json:"watch"`
	Runtime  RuntimeConfig  `koanf:"runtime"  json:"runtime"`
}

// GenerateConfig controls manifest discovery and output placement.
type GenerateConfig struct {
	// Inputs lists the enum manifest files (or glob patterns) to process.
	Inputs []string `koanf:"inputs" json:"inputs" validate:"min=1,dive,required"`
	// Output is the directory generated files are written to.
	Output string `koanf:"output" json:"output" validate:"required"`
	// Header is an optional extra comment line placed under the generated-code
	// marker in every emitted file.
	Header string `koanf:"header" json:"header"`
}

// WatchConfig controls the file watcher used by `enumgen watch`.
type WatchConfig struct {
	// Debounce is the quiet period after a filesystem event before the
	// generator runs again.
	Debounce time.Duration `koanf:"debounce" json:"debounce" validate:"gt=0"`
	// MaxWait bounds how long successive events can keep postponing a run.
	MaxWait time.Duration `koanf:"max_wait" json:"max_wait" validate:"gt=0"`
}

// RuntimeConfig carries process-level settings.
type RuntimeConfig struct {
	LogLevel  string `koanf:"log_level"  json:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogJSON   bool   `koanf:"log_json"   json:"log_json"`
	LogSource bool   `koanf:"log_source" json:"log_source"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Inputs: []string{"enums.yaml"},
			Output: ".",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
			MaxWait:  2 * time.Second,
		},
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
	}
}
