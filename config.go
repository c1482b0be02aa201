package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that may come from a YAML file. Flags given
// on the command line win over the file.
type Config struct {
	// Listen is the API address; empty means don't serve.
	Listen string `yaml:"listen"`
	// Input is the puzzle input file.
	Input string `yaml:"input"`
	// LogLevel is one of zap's level names (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// FrameLimit caps the frames streamed to a single websocket client.
	FrameLimit int `yaml:"frame_limit"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Input:      "data.txt",
		LogLevel:   "info",
		FrameLimit: 10000,
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.FrameLimit < 0 {
		return cfg, fmt.Errorf("config %s: frame_limit must not be negative", path)
	}
	return cfg, nil
}
