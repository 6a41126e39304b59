// Package engine orchestrates document loading and style resolution.
package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the document environment used during style resolution.
type Config struct {
	ViewportWidth   float64  `yaml:"viewport-width"`
	ViewportHeight  float64  `yaml:"viewport-height"`
	DefaultFontSize float64  `yaml:"default-font-size"`
	ExtraCSS        []string `yaml:"extra-css"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:   1280,
		ViewportHeight:  720,
		DefaultFontSize: 16,
	}
}

// LoadConfig reads a YAML configuration file, filling unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse configuration: %w", err)
	}

	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = 1280
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = 720
	}
	if cfg.DefaultFontSize <= 0 {
		cfg.DefaultFontSize = 16
	}
	return cfg, nil
}
