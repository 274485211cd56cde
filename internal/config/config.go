// Package config handles global gramps2gource configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the optional global configuration file.
type Config struct {
	// OutputDir is prepended to relative output paths. Empty means the
	// current directory.
	OutputDir string `toml:"output_dir"`

	// LogLevel is the default log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogPretty forces human-oriented console logging even when stderr is
	// not a terminal.
	LogPretty bool `toml:"log_pretty"`
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/gramps2gource/config.toml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "gramps2gource", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields an empty config; a present but invalid file is.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
