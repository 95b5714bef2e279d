// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config represents the application configuration. It can be loaded from a
// JSON file; environment variables override file values, and CLI flags
// override both.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DataDir string `json:"data_dir,omitempty"` // Directory holding the local document store

	// Export
	ChromePath    string  `json:"chrome_path,omitempty"`    // Browser binary override for rasterization
	ExportScale   float64 `json:"export_scale,omitempty"`   // Supersampling factor (>= 1)
	RenderTimeout int     `json:"render_timeout,omitempty"` // Rasterization timeout in seconds

	// Scoring
	JitterSeed    int64 `json:"jitter_seed,omitempty"`   // Seed for the score jitter source (0 = time-seeded)
	Deterministic bool  `json:"deterministic,omitempty"` // Disable score jitter entirely

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Port:          8080,
		DataDir:       ".resume-studio",
		ExportScale:   2.0,
		RenderTimeout: 60,
	}
}

// Load reads configuration from a JSON file, returning Defaults when path is
// empty.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		cfg.applyEnv()
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values from the environment. godotenv has already
// populated the environment from .env by the time this runs.
func (c *Config) applyEnv() {
	if v := os.Getenv("RESUME_STUDIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUME_STUDIO_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.ExportScale != 0 && c.ExportScale < 1 {
		return fmt.Errorf("config error: 'export_scale' must be at least 1")
	}
	if c.RenderTimeout < 0 {
		return fmt.Errorf("config error: 'render_timeout' must be non-negative")
	}
	return nil
}
