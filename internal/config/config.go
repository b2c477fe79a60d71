package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and generation settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Generation settings
	Spacing     float64 `json:"spacing"`
	Preview     bool    `json:"preview"`
	PreviewSize int     `json:"preview_size"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Spacing   float64
	Workers   int
	Preview   bool
	LogLevel  string
}

// Resolve fills in any empty fields with defaults. CLI flags take priority
// when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Spacing > 0 {
		c.Spacing = flags.Spacing
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Preview {
		c.Preview = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Spacing == 0 {
		c.Spacing = 0.005
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 1024
	}
	if c.Supersample <= 0 {
		c.Supersample = 4
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects settings the generator cannot work with.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("config: input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir is required")
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("config: spacing must be positive, got %g", c.Spacing)
	}
	return nil
}
