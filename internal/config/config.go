package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the archiscope configuration.
type Config struct {
	Snapping SnappingConfig `yaml:"snapping"`
	Export   ExportConfig   `yaml:"export"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SnappingConfig holds snap search settings.
type SnappingConfig struct {
	Threshold float64 `yaml:"threshold"` // snap radius in world units (default: 0.5)
	Epsilon   float64 `yaml:"epsilon"`   // ceiling comparison tolerance (default: 1e-6)
}

// ExportConfig holds DXF export settings.
type ExportConfig struct {
	Layer string `yaml:"layer"` // target layer name (default: MEASUREMENTS)
}

// ViewerConfig holds window and reload settings.
type ViewerConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Watch  bool `yaml:"watch"` // reload the model when the file changes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads configuration from a YAML file. An empty path returns the
// defaults without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Snapping.Threshold <= 0 {
		c.Snapping.Threshold = 0.5
	}
	if c.Snapping.Epsilon <= 0 {
		c.Snapping.Epsilon = 1e-6
	}
	if c.Export.Layer == "" {
		c.Export.Layer = "MEASUREMENTS"
	}
	if c.Viewer.Width <= 0 {
		c.Viewer.Width = 1280
	}
	if c.Viewer.Height <= 0 {
		c.Viewer.Height = 720
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Snapping.Threshold > 100 {
		return fmt.Errorf("snapping.threshold must be at most 100, got %g", c.Snapping.Threshold)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
